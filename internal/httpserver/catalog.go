package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogsvc "farmgate/internal/service/catalog"
)

type createAnimalRequest struct {
	Type        string  `json:"type" binding:"required"`
	Breed       string  `json:"breed" binding:"required"`
	PriceCents  *int64  `json:"priceCents" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  *string `json:"categoryId"`
}

type updateAnimalRequest struct {
	Type        *string `json:"type"`
	Breed       *string `json:"breed"`
	PriceCents  *int64  `json:"priceCents"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  *string `json:"categoryId"`
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func listAnimalsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := svc.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func listByCategoryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("category")
		if name == "" {
			badRequest(c, "category query parameter required")
			return
		}
		listings, err := svc.ListByCategory(c.Request.Context(), name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func createAnimalHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAnimalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		claims := claimsFrom(c)
		listing, err := svc.CreateListing(c.Request.Context(), claims.AccountID, catalogsvc.CreateListingInput{
			Type:        req.Type,
			Breed:       req.Breed,
			PriceCents:  *req.PriceCents,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, listing)
	}
}

func updateAnimalHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateAnimalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		claims := claimsFrom(c)
		listing, err := svc.UpdateListing(c.Request.Context(), claims.AccountID, c.Param("id"), catalogsvc.UpdateListingInput{
			Type:        req.Type,
			Breed:       req.Breed,
			PriceCents:  req.PriceCents,
			Status:      req.Status,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			CategoryID:  req.CategoryID,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}

func createCategoryHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		category, err := svc.CreateCategory(c.Request.Context(), req.Name)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListCategories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
