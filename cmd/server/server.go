package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/haveanidea/api/internal/cache"
	"github.com/haveanidea/api/internal/database"
	"github.com/haveanidea/api/internal/handlers"
	"github.com/haveanidea/api/internal/services"
	"github.com/haveanidea/api/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	AuthH      *handlers.AuthHandler
	IdeaH      *handlers.IdeaHandler
	UploadH    *handlers.UploadHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// The signing secret must be injected; there is no baked-in default.
		log.Fatal("JWT_SECRET is not set")
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := dbConn.SeedDemoData(); err != nil {
			log.Fatalf("demo data seed failed: %v", err)
		}
	}

	var rdb *redis.Client
	var ideaCache *cache.IdeaCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
		ideaCache = cache.NewIdeaCache(rdb, cache.DefaultTTL)
	}

	var storage services.ObjectStorage
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		minioStorage, err := services.NewMinioStorage(
			endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_BUCKET"),
			os.Getenv("MINIO_PUBLIC_URL"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			log.Fatalf("object storage init failed: %v", err)
		}
		storage = minioStorage
	}

	jwtMgr := auth.NewJWTManager(secret, auth.TokenLifetime)

	authH := handlers.NewAuthHandler(dbConn, jwtMgr)
	ideaH := handlers.NewIdeaHandler(dbConn, ideaCache)
	uploadH := handlers.NewUploadHandler(dbConn, storage)

	router := gin.Default()
	APIEndpoints(router, jwtMgr, authH, ideaH, uploadH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		AuthH:      authH,
		IdeaH:      ideaH,
		UploadH:    uploadH,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
