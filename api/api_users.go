package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qpost/go-qpost-server/types"
)

type UsersApi struct {
	directory *types.Directory
}

func NewUsersApi(directory *types.Directory) *UsersApi {
	return &UsersApi{directory: directory}
}

// Lists the static user directory
func (ua *UsersApi) GetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, types.OutputUsers{Users: ua.directory.Users()})
}
