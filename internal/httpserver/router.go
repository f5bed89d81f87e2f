package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmgate/internal/domain"
	accountsvc "farmgate/internal/service/account"
	catalogsvc "farmgate/internal/service/catalog"
	"farmgate/internal/token"
)

type accountService interface {
	Register(ctx context.Context, in accountsvc.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, username, password string, role domain.Role) (*domain.Account, string, error)
	TokenTTLSeconds() int
}

type catalogService interface {
	CreateListing(ctx context.Context, farmerID string, in catalogsvc.CreateListingInput) (*domain.Listing, error)
	UpdateListing(ctx context.Context, farmerID, listingID string, in catalogsvc.UpdateListingInput) (*domain.Listing, error)
	ListAll(ctx context.Context) ([]domain.Listing, error)
	ListByCategory(ctx context.Context, categoryName string) ([]domain.Listing, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type cartService interface {
	GetActive(ctx context.Context, buyerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, buyerID, listingID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, buyerID, lineID string) (*domain.Cart, error)
	Checkout(ctx context.Context, buyerID string) (*domain.Cart, error)
}

type orderService interface {
	ListForFarmer(ctx context.Context, farmerID string) ([]domain.FarmerOrder, error)
}

// Deps carries the services the routes are built from.
type Deps struct {
	AccountSvc accountService
	CatalogSvc catalogService
	CartSvc    cartService
	OrderSvc   orderService
	Tokens     *token.Manager
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/register", registerHandler(deps.AccountSvc))
	router.POST("/login", loginHandler(deps.AccountSvc))

	router.GET("/animals", listAnimalsHandler(deps.CatalogSvc))
	router.GET("/animals/by_category", listByCategoryHandler(deps.CatalogSvc))
	router.GET("/categories", listCategoriesHandler(deps.CatalogSvc))

	authed := router.Group("/", authMiddleware(deps.Tokens))

	farmer := authed.Group("/", requireRole(domain.RoleFarmer))
	farmer.POST("/farmer/animals", createAnimalHandler(deps.CatalogSvc))
	farmer.PUT("/farmer/animals/:id", updateAnimalHandler(deps.CatalogSvc))
	farmer.GET("/farmer/orders", farmerOrdersHandler(deps.OrderSvc))
	farmer.POST("/categories", createCategoryHandler(deps.CatalogSvc))

	buyer := authed.Group("/", requireRole(domain.RoleBuyer))
	buyer.GET("/cart", getCartHandler(deps.CartSvc))
	buyer.POST("/cart/items", addCartItemHandler(deps.CartSvc))
	buyer.DELETE("/cart/items/:id", removeCartItemHandler(deps.CartSvc))
	buyer.POST("/cart/checkout", checkoutHandler(deps.CartSvc))

	return router
}
