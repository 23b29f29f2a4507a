package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/qpost/go-qpost-server/metrics"
	"github.com/qpost/go-qpost-server/services"
	"github.com/qpost/go-qpost-server/types"
	"github.com/qpost/go-qpost-server/util"
)

type MailApi struct {
	mailService *services.MailService
	validate    *validator.Validate
}

func NewMailApi(mailService *services.MailService) *MailApi {
	validate := validator.New()

	return &MailApi{
		mailService: mailService,
		validate:    validate,
	}
}

// maps service errors to HTTP responses; the generic 500 never leaks
// internal detail
func (ma *MailApi) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrBadRequest):
		ApiErrorf(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, types.ErrInvalidUser):
		ApiErrorf(c, http.StatusBadRequest, "Invalid user")
	case errors.Is(err, types.ErrNotFound):
		ApiErrorf(c, http.StatusNotFound, "Mail not found or unauthorized")
	default:
		ApiErrorf(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Sends a mail from one directory user to another
func (ma *MailApi) SendMail(c *gin.Context) {
	var input types.InputSendMail
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid format")
		return
	}
	if err := ma.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, util.ValidationErrorToMessage(err))
		return
	}

	mail, err := ma.mailService.SendMail(c.Request.Context(), &input)
	if err != nil {
		ma.serviceError(c, err)
		return
	}
	metrics.MailsSentMetricsCount.Inc()
	c.JSON(http.StatusOK, types.OutputSendMail{
		Message: "Mail sent successfully",
		Mail:    mail,
	})
}

// Lists all mails addressed to the user in the path
func (ma *MailApi) GetMails(c *gin.Context) {
	username := c.Param("username")
	mails, err := ma.mailService.ListMails(c.Request.Context(), username)
	if err != nil {
		ma.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.OutputMails{Mails: mails})
}

// Returns the number of unread mails for the user in the path
func (ma *MailApi) GetUnreadCount(c *gin.Context) {
	username := c.Param("username")
	count, err := ma.mailService.UnreadCount(c.Request.Context(), username)
	if err != nil {
		ma.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.OutputUnreadCount{UnreadCount: count})
}

// Marks the mail in the path as read on behalf of the user in the body.
// The path segment here is a mail id, not a username.
func (ma *MailApi) MarkAsRead(c *gin.Context) {
	mailID := c.Param("mailId")
	var input types.InputMailOwner
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid format")
		return
	}
	if err := ma.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, util.ValidationErrorToMessage(err))
		return
	}

	if err := ma.mailService.MarkAsRead(c.Request.Context(), mailID, input.UserID); err != nil {
		ma.serviceError(c, err)
		return
	}
	metrics.MailsReadMetricsCount.Inc()
	c.JSON(http.StatusOK, types.OutputMessage{Message: "Mail marked as read"})
}

// Deletes the mail in the path on behalf of the user in the body
func (ma *MailApi) DeleteMail(c *gin.Context) {
	mailID := c.Param("mailId")
	var input types.InputMailOwner
	if err := c.ShouldBindJSON(&input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, "invalid format")
		return
	}
	if err := ma.validate.Struct(input); err != nil {
		ApiErrorf(c, http.StatusBadRequest, util.ValidationErrorToMessage(err))
		return
	}

	if err := ma.mailService.DeleteMail(c.Request.Context(), mailID, input.UserID); err != nil {
		ma.serviceError(c, err)
		return
	}
	metrics.MailsDeletedMetricsCount.Inc()
	c.JSON(http.StatusOK, types.OutputMessage{Message: "Mail deleted successfully"})
}
