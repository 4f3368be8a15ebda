package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MostafaKhidr/QCHAT/api"
	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/config"
	"github.com/MostafaKhidr/QCHAT/database"
	"github.com/MostafaKhidr/QCHAT/middleware"
	"github.com/MostafaKhidr/QCHAT/repository"
	"github.com/MostafaKhidr/QCHAT/services"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")

	// Initialize the question catalog and repositories
	questionCatalog := catalog.New()
	sessionRepo := repository.NewSessionRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	scoreService := services.NewScoreService(questionCatalog)
	sessionService := services.NewSessionService(sessionRepo, questionCatalog, scoreService)
	reportService := services.NewReportService(sessionRepo, questionCatalog, scoreService)
	log.Println("INFO: [Main] Services initialized.")

	// Sweep sessions left unfinished by previous runs.
	expiry := time.Duration(config.AppConfig.SessionExpiryHours) * time.Hour
	if abandoned, sweepErr := sessionService.AbandonStale(expiry); sweepErr != nil {
		log.Printf("WARN: [Main] Startup abandonment sweep failed: %v", sweepErr)
	} else if abandoned > 0 {
		log.Printf("INFO: [Main] Startup sweep abandoned %d stale session(s).", abandoned)
	}

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(questionCatalog, sessionService, reportService)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Cors(config.AppConfig.CORSOrigins))
	r.Use(middleware.RateLimit(config.AppConfig.RateLimitPerMinute))
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	r.GET("/", handler.RootHandler)
	r.GET("/health", handler.HealthHandler)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/questions", handler.ListQuestionsHandler)

		sessionGroup := apiGroup.Group("/sessions")
		{
			sessionGroup.POST("/create", handler.CreateSessionHandler)
			sessionGroup.GET("/:token", handler.GetSessionHandler)
			sessionGroup.GET("/:token/question/:number", handler.GetQuestionHandler)
			sessionGroup.POST("/:token/answer", handler.SubmitAnswerHandler)
			sessionGroup.GET("/:token/report", handler.GetReportHandler)
			sessionGroup.GET("/:token/report/draft", handler.GetDraftReportHandler)
		}
	}
}
