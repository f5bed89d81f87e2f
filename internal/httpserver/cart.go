package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		cart, err := svc.GetActive(c.Request.Context(), claims.AccountID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 0 {
			badRequest(c, "quantity must be positive")
			return
		}
		claims := claimsFrom(c)
		cart, err := svc.AddItem(c.Request.Context(), claims.AccountID, req.ListingID, req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		cart, err := svc.RemoveItem(c.Request.Context(), claims.AccountID, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func checkoutHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		cart, err := svc.Checkout(c.Request.Context(), claims.AccountID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
