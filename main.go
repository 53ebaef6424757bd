package main

import (
	"log"
	"net/http"
	"os"

	"github.com/vastra-store/vastra/app/cache"
	"github.com/vastra-store/vastra/app/cmd"
	"github.com/vastra-store/vastra/app/configs"
	"github.com/vastra-store/vastra/app/routes"
	"github.com/vastra-store/vastra/app/services"
	"github.com/vastra-store/vastra/app/utils/logger"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if err := logger.Init(env.AppEnv); err != nil {
		log.Fatal("logger init failed:", err)
	}

	db, err := configs.OpenConnection()
	if err != nil {
		logger.Get().Fatalf("DB connection failed: %v", err)
	}
	logger.Get().Info("✅ Database connected.")

	var storage services.Storage
	uploadsDir := ""
	if env.CloudinaryCloudName != "" {
		storage, err = services.NewCloudinaryStorage(env.CloudinaryCloudName, env.CloudinaryAPIKey, env.CloudinaryAPISecret)
		if err != nil {
			logger.Get().Fatalf("Cloudinary init failed: %v", err)
		}
		logger.Get().Info("✅ Cloudinary storage initialized.")
	} else {
		dir := env.UploadDir
		if dir == "" {
			dir = "uploads/products"
		}
		baseURL := env.UploadBaseURL
		if baseURL == "" {
			baseURL = "/uploads/products"
		}
		disk, err := services.NewDiskStorage(dir, baseURL)
		if err != nil {
			logger.Get().Fatalf("Disk storage init failed: %v", err)
		}
		storage = disk
		uploadsDir = disk.Dir()
		logger.Get().Infof("✅ Disk storage initialized at %s.", dir)
	}

	var productCache *cache.Cache
	if env.RedisAddr != "" {
		productCache, err = cache.New(env.RedisAddr, env.RedisPassword)
		if err != nil {
			logger.Get().Warnf("Redis unavailable, caching disabled: %v", err)
			productCache = nil
		} else {
			logger.Get().Info("✅ Redis cache connected.")
		}
	}

	router := routes.NewRouter(routes.Deps{
		DB:         db,
		Env:        env,
		Storage:    storage,
		Cache:      productCache,
		UploadsDir: uploadsDir,
	})

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	logger.Get().Infof("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Get().Errorf("server stopped: %v", err)
	}
}
