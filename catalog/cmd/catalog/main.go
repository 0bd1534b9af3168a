package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sole_and_ankle/catalog/internal/auth"
	"sole_and_ankle/catalog/internal/card"
	"sole_and_ankle/catalog/internal/config"
	"sole_and_ankle/catalog/internal/handler"
	"sole_and_ankle/catalog/internal/logic"
	"sole_and_ankle/catalog/internal/mq"
	"sole_and_ankle/catalog/internal/refresher"
	"sole_and_ankle/catalog/internal/rpc"
	"sole_and_ankle/catalog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"google.golang.org/grpc"
)

func main() {
	// 1. Configuration
	if err := godotenv.Load("catalog/.env"); err != nil {
		log.Println("Note: No catalog/.env file found, using system environment variables")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	formatter, err := logic.NewPriceFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Fatalf("❌ Invalid price format settings: %v", err)
	}
	builder := card.NewBuilder(cfg.NewReleaseWindow, formatter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database connection (Postgres)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to open database connection: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to Postgres: %v", err)
	}
	catalogStore := store.NewCatalogStore(db)
	adminStore := store.NewAdminStore(db)
	fmt.Println("✅ Connected to Catalog Database (Postgres)")

	if err := seedAdmin(ctx, adminStore, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}

	// 3. Redis card cache
	cardCache := store.NewCardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CardCacheTTL)
	defer cardCache.Close()
	if err := cardCache.Ping(ctx); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	fmt.Println("✅ Connected to Redis Card Cache")

	// 4. ZeroMQ publisher for catalog events
	publisher, err := mq.NewPublisher(cfg.ZMQPort)
	if err != nil {
		log.Fatalf("❌ Failed to start ZMQ Publisher: %v", err)
	}
	defer publisher.Close()
	fmt.Printf("✅ ZMQ Publisher active on port %s\n", cfg.ZMQPort)

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, 15*time.Minute)
	if err != nil {
		log.Fatalf("❌ Failed to init tokens: %v", err)
	}

	catalog := handler.NewCatalog(catalogStore, cardCache, builder, publisher)

	// 5. Background card refresher (non-blocking)
	go refresher.New(catalogStore, cardCache, builder, publisher).Run(ctx, cfg.RefreshInterval)

	// 6. gRPC server
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("❌ Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}
	grpcServer := grpc.NewServer()
	rpc.RegisterCatalogServiceServer(grpcServer, handler.NewCatalogServer(catalog))
	go func() {
		fmt.Printf("🚀 Catalog gRPC running on %s\n", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("❌ gRPC Server stopped: %v", err)
		}
	}()

	// 7. HTTP storefront API
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewHTTPHandler(catalog, adminStore, tokens).Router(),
	}
	go func() {
		fmt.Printf("🚀 Catalog HTTP running on http://localhost%s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server crashed: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("🛑 Shutting down catalog service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[catalog] http shutdown err=%v", err)
	}
	grpcServer.GracefulStop()
}

// seedAdmin creates the bootstrap admin account when credentials are configured and it does not exist yet.
func seedAdmin(ctx context.Context, admins *store.AdminStore, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	_, err := admins.GetAdmin(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := admins.CreateAdmin(ctx, username, hash); err != nil {
		return err
	}
	log.Printf("[catalog] seeded admin user=%s", username)
	return nil
}
