package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"graph_service/internal/database"
	"graph_service/internal/handlers"
	"graph_service/internal/kafka"
	"graph_service/internal/middleware"
	"graph_service/internal/redis"
	"graph_service/internal/router"
	"graph_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.InitLogger()

	// Initialize database
	db, err := database.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Kafka producer is optional; without brokers the handlers simply
	// skip event publishing.
	var kafkaProducer *kafka.Producer
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		kafkaProducer = kafka.NewProducer(strings.Split(kafkaBrokers, ","))
		defer kafkaProducer.Close()
	} else {
		log.Println("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Redis is optional as well; NewService returns nil when the ping
	// fails and the handlers fall through to the database.
	var redisService *redis.Service
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisService = redis.NewService(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	} else {
		log.Println("REDIS_ADDR not set, caching disabled")
	}

	// Setup Gin router
	r := gin.Default()

	middleware.SetupPrometheus(r)
	r.Use(middleware.LoggerMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept-Encoding")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	router.SetupRouter(r, router.Handlers{
		Project:    handlers.NewProjectHandler(db, kafkaProducer, redisService),
		Node:       handlers.NewNodeHandler(db, kafkaProducer, redisService),
		NodeLink:   handlers.NewNodeLinkHandler(db, kafkaProducer),
		Attachment: handlers.NewAttachmentHandler(db, kafkaProducer),
		Search:     handlers.NewSearchHandler(db),
		Import:     handlers.NewImportHandler(db),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
