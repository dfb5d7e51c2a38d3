package cmd

import (
	"context"
	"log"
	"time"

	"github.com/doclibhq/doclib-be/cache"
	"github.com/doclibhq/doclib-be/config"
	"github.com/doclibhq/doclib-be/database"
	"github.com/doclibhq/doclib-be/repository"
	"github.com/doclibhq/doclib-be/service"
)

// buildLibrary wires a LibraryService for the one-shot CLI commands. The
// returned cleanup disconnects the Mongo client.
func buildLibrary(configPath string) (service.LibraryService, func(), error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect error: %v", err)
		}
	}
	mongoDb := mongoClient.Database(cfg.MongoDatabase)

	var libCache cache.LibraryCache
	redisClient, err := database.ConnectRedis(ctx, cfg.RedisConfig.Addr, cfg.RedisConfig.Password, cfg.RedisConfig.DB)
	if err != nil {
		log.Printf("Redis unavailable, using in-memory fallback cache: %v", err)
	}
	if redisClient != nil {
		libCache = cache.NewRedisCache(redisClient)
	} else {
		libCache = cache.NewMemoryCache()
	}

	library := service.NewLibraryService(
		repository.NewDocumentRepo(mongoDb.Collection(database.DocumentsCollection)),
		repository.NewSynthesizedRepo(mongoDb.Collection(database.SynthesizedCollection)),
		libCache,
	)
	return library, cleanup, nil
}
