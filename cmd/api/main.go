package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"farmgate/internal/config"
	"farmgate/internal/db"
	"farmgate/internal/httpserver"
	"farmgate/internal/password"
	acctrepo "farmgate/internal/repository/account"
	cartrepo "farmgate/internal/repository/cart"
	categoryrepo "farmgate/internal/repository/category"
	listingrepo "farmgate/internal/repository/listing"
	orderrepo "farmgate/internal/repository/order"
	accountsvc "farmgate/internal/service/account"
	cartsvc "farmgate/internal/service/cart"
	catalogsvc "farmgate/internal/service/catalog"
	ordersvc "farmgate/internal/service/order"
	"farmgate/internal/token"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	hasher := password.New(password.DefaultPolicy())
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	accountRepo := acctrepo.NewPostgres(dbpool, logger)
	listingRepo := listingrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)

	accountService := accountsvc.New(accountRepo, hasher, tokens)
	catalogService := catalogsvc.New(listingRepo, categoryRepo)
	cartService := cartsvc.New(cartRepo, listingRepo)
	orderService := ordersvc.New(orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AccountSvc: accountService,
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
		Tokens:     tokens,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
