package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/domain"
	accountsvc "farmgate/internal/service/account"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	FarmName string `json:"farmName"`
	Location string `json:"location"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func registerHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		account, err := svc.Register(c.Request.Context(), accountsvc.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     domain.Role(req.Role),
			Address:  req.Address,
			FarmName: req.FarmName,
			Location: req.Location,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

func loginHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		account, access, err := svc.Login(c.Request.Context(), req.Username, req.Password, domain.Role(req.Role))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token": access,
			"expires_in":   svc.TokenTTLSeconds(),
			"id":           account.ID,
			"username":     account.Username,
			"role":         account.Role,
		})
	}
}
