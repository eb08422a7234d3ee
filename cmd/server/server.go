package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/thereayou/twitter-lite/internal/cache"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/pkg/apikey"
)

const credentialCacheTTL = 5 * time.Minute

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Cipher *apikey.Cipher
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	cipher, err := apikey.NewCipher(os.Getenv("SECRET_KEY"))
	if err != nil {
		log.Fatalf("invalid SECRET_KEY: %v", err)
	}

	// Redis опционален: без REDIS_URL гейт ходит за ключами только в базу
	var rdb *redis.Client
	var creds *cache.CredentialCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
		creds = cache.NewCredentialCache(rdb, credentialCacheTTL)
	}

	router := gin.Default()
	APIEndpoints(router, dbConn, cipher, creds)

	return &Server{
		Router: router,
		DB:     dbConn,
		Redis:  rdb,
		Cipher: cipher,
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
