package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func farmerOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		orders, err := svc.ListForFarmer(c.Request.Context(), claims.AccountID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
