package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/domain"
	"farmgate/internal/password"
	accountsvc "farmgate/internal/service/account"
	catalogsvc "farmgate/internal/service/catalog"
)

// writeError maps service errors to status codes: not-found 404,
// conflicts 409, validation 400, bad credentials 401, anything else 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "resource not found"})
	case errors.Is(err, accountsvc.ErrDuplicateUsername),
		errors.Is(err, catalogsvc.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, password.ErrWeakPassword),
		errors.Is(err, accountsvc.ErrInvalidEmail),
		errors.Is(err, accountsvc.ErrInvalidUsername),
		errors.Is(err, accountsvc.ErrInvalidRole),
		errors.Is(err, catalogsvc.ErrInvalidPrice),
		errors.Is(err, catalogsvc.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, accountsvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "an internal error occurred"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
