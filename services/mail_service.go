package services

import (
	"context"
	"time"

	"github.com/go-kit/log/level"

	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/repository"
	"github.com/qpost/go-qpost-server/types"
	"github.com/qpost/go-qpost-server/util"
)

// MailService implements the mail operations over the collection blob.
// Every mutation is an unsynchronized read-modify-write: two concurrent
// mutations race and the later save silently wins.
type MailService struct {
	directory *types.Directory
	mailRepo  repository.MailRepository
}

func NewMailService(directory *types.Directory, mailRepo repository.MailRepository) *MailService {
	if directory == nil {
		panic("directory cannot be nil")
	}
	if mailRepo == nil {
		panic("mailRepo cannot be nil")
	}
	return &MailService{
		directory: directory,
		mailRepo:  mailRepo,
	}
}

// SendMail validates the input, appends a new mail to the collection and
// returns it. Validation happens before any store access.
// Errors:
// - ErrBadRequest: a required field is missing
// - ErrInvalidUser: sender or recipient is not in the directory
func (ms *MailService) SendMail(ctx context.Context, input *types.InputSendMail) (*types.Mail, error) {
	if input.From == "" || input.To == "" || input.Subject == "" || input.Message == "" {
		return nil, types.ErrBadRequest
	}
	if !ms.directory.Contains(input.From) || !ms.directory.Contains(input.To) {
		return nil, types.ErrInvalidUser
	}

	mail := &types.Mail{
		ID:        util.GenerateMailID(),
		From:      input.From,
		To:        input.To,
		Subject:   input.Subject,
		Message:   input.Message,
		Priority:  types.NormalizePriority(input.Priority),
		Timestamp: time.Now().UTC(),
		IsRead:    false,
	}

	mails, err := ms.mailRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	mails = append(mails, mail)
	if err := ms.mailRepo.SaveAll(ctx, mails); err != nil {
		return nil, err
	}
	level.Info(global.Logger).Log("msg", "mail sent", "id", mail.ID, "from", mail.From, "to", mail.To)
	return mail, nil
}

// ListMails returns the mails addressed to username, in insertion order.
// An empty mailbox is an empty slice, never an error.
func (ms *MailService) ListMails(ctx context.Context, username string) ([]*types.Mail, error) {
	if !ms.directory.Contains(username) {
		return nil, types.ErrInvalidUser
	}
	mails, err := ms.mailRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	userMails := []*types.Mail{}
	for _, m := range mails {
		if m.To == username {
			userMails = append(userMails, m)
		}
	}
	return userMails, nil
}

// UnreadCount returns the number of unread mails addressed to username.
func (ms *MailService) UnreadCount(ctx context.Context, username string) (int, error) {
	if !ms.directory.Contains(username) {
		return 0, types.ErrInvalidUser
	}
	mails, err := ms.mailRepo.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range mails {
		if m.To == username && !m.IsRead {
			count++
		}
	}
	return count, nil
}

// MarkAsRead marks the mail with mailID as read, provided it is addressed
// to username. Marking an already-read mail is idempotent.
// Errors:
// - ErrInvalidUser: username is not in the directory
// - ErrNotFound: no mail matches (id, to); absence and foreign ownership
//   are indistinguishable to the caller
func (ms *MailService) MarkAsRead(ctx context.Context, mailID string, username string) error {
	if !ms.directory.Contains(username) {
		return types.ErrInvalidUser
	}
	mails, err := ms.mailRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, m := range mails {
		if m.ID == mailID && m.To == username {
			m.IsRead = true
			found = true
		}
	}
	if !found {
		return types.ErrNotFound
	}
	return ms.mailRepo.SaveAll(ctx, mails)
}

// DeleteMail removes the mail with mailID from the collection, provided it
// is addressed to username.
// Errors: same as MarkAsRead.
func (ms *MailService) DeleteMail(ctx context.Context, mailID string, username string) error {
	if !ms.directory.Contains(username) {
		return types.ErrInvalidUser
	}
	mails, err := ms.mailRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]*types.Mail, 0, len(mails))
	for _, m := range mails {
		if m.ID == mailID && m.To == username {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == len(mails) {
		return types.ErrNotFound
	}
	if err := ms.mailRepo.SaveAll(ctx, kept); err != nil {
		return err
	}
	level.Info(global.Logger).Log("msg", "mail deleted", "id", mailID, "user", username)
	return nil
}
