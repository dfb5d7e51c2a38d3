/*
Copyright © 2025 doclibhq
*/
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/doclibhq/doclib-be/cache"
	"github.com/doclibhq/doclib-be/config"
	"github.com/doclibhq/doclib-be/database"
	"github.com/doclibhq/doclib-be/handler"
	"github.com/doclibhq/doclib-be/middleware"
	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/service"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the document library server",
	Long:  `Starts the HTTP server for the shared document library and synthesis API`,
	Run: func(cmd *cobra.Command, args []string) {

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("mongo disconnect error: %v", err)
			}
		}()
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		redisClient, err := database.ConnectRedis(ctx, cfg.RedisConfig.Addr, cfg.RedisConfig.Password, cfg.RedisConfig.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		// init repos
		docRepo := repository.NewDocumentRepo(mongoDb.Collection(database.DocumentsCollection))
		synthRepo := repository.NewSynthesizedRepo(mongoDb.Collection(database.SynthesizedCollection))
		userRepo := repository.NewUserRepo(mongoDb.Collection(database.UsersCollection))

		var libCache cache.LibraryCache
		if redisClient != nil {
			libCache = cache.NewRedisCache(redisClient)
		} else {
			log.Println("Redis not configured, using in-memory fallback cache")
			libCache = cache.NewMemoryCache()
		}

		// init services
		libraryService := service.NewLibraryService(docRepo, synthRepo, libCache)
		synthesisService := service.NewSynthesisService()
		authService := service.NewAuthService(userRepo, redisClient, cfg.SessionEventCap)
		defer authService.Close()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		authHandler := handler.NewAuthHandler(authService)
		documentHandler := handler.NewDocumentHandler(libraryService, cfg.MaxUploadBytes)
		synthesisHandler := handler.NewSynthesisHandler(libraryService, synthesisService)
		libraryHandler := handler.NewLibraryHandler(libraryService)
		sessionHandler := handler.NewSessionEventHandler(authService)

		// Warm the in-memory collections before serving.
		if _, origin, err := libraryService.LoadDocuments(context.Background()); err != nil {
			log.Printf("initial document load failed: %v", err)
		} else {
			log.Printf("documents loaded from %s store", origin)
		}
		if _, origin, err := libraryService.LoadSynthesized(context.Background()); err != nil {
			log.Printf("initial synthesized load failed: %v", err)
		} else {
			log.Printf("synthesized documents loaded from %s store", origin)
		}

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/auth/signup", authHandler.HandleSignUp)
		apiV1.POST("/auth/signin", authHandler.HandleSignIn)

		protected := apiV1.Group("/")
		protected.Use(middleware.AuthMiddleware(authService))
		{
			protected.POST("/auth/signout", authHandler.HandleSignOut)

			protected.GET("/documents", documentHandler.HandleList)
			protected.GET("/documents/search", documentHandler.HandleSearch)
			protected.POST("/documents/upload", documentHandler.HandleUpload)
			protected.DELETE("/documents/:id", documentHandler.HandleDelete)

			protected.GET("/synthesized", synthesisHandler.HandleList)
			protected.POST("/synthesize", synthesisHandler.HandleSynthesize)
			protected.DELETE("/synthesized/:id", synthesisHandler.HandleDelete)

			protected.GET("/library/export", libraryHandler.HandleExport)
			protected.POST("/library/import", libraryHandler.HandleImport)
		}

		router.GET("/ws/session", sessionHandler.HandleSessionEvents)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
