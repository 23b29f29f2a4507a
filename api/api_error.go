package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type ApiError struct {
	// Code is the HTTP status code (not part of the response body)
	Code int `json:"-"`
	// Message is the error message
	Message string `json:"error"`
}

func ApiErrorf(c *gin.Context, code int, format string, args ...interface{}) ApiError {
	ar := ApiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
	c.AbortWithStatusJSON(code, ar)
	return ar
}
