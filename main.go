package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/neofinance/expense-tracker/api"
	"github.com/neofinance/expense-tracker/internal/config"
	"github.com/neofinance/expense-tracker/internal/transaction"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	client, err := connectDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	storage := transaction.NewMongoStorage(collection)
	service := transaction.NewService(storage, logger)

	r := gin.Default()
	api.InitRoutes(r, service, logger, api.Config{
		CORSOrigin:     cfg.CORSOrigin,
		StorageTimeout: cfg.StorageTimeout,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h2c.NewHandler(r, &http2.Server{}),
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// connectDB establishes and verifies the MongoDB connection.
func connectDB(cfg *config.Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI)
	if cfg.InsecureTLS {
		clientOptions.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}
