package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jobmatch/backend/agent"
	"github.com/jobmatch/backend/auth"
	"github.com/jobmatch/backend/config"
	_ "github.com/jobmatch/backend/docs"
	"github.com/jobmatch/backend/gemini"
	"github.com/jobmatch/backend/handlers"
	"github.com/jobmatch/backend/matching"
	"github.com/jobmatch/backend/mcp"
	"github.com/jobmatch/backend/nlp"
	"github.com/jobmatch/backend/scraper"
	"github.com/jobmatch/backend/storage"
	"github.com/jobmatch/backend/tools"
	"github.com/jobmatch/backend/utils"
)

// @title JobMatch API
// @version 1.0
// @description Job matching backend: scrapes current listings, extracts each description's requirements and scores them against a candidate's skills and education.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	log.Printf("Initializing %s user store...", cfg.StoreBackend)
	userStore, err := newUserStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize user store: %v", err)
	}
	defer userStore.Close()
	log.Println("User store initialized successfully")

	log.Printf("Initializing %s NLP engine...", cfg.NLPEngine)
	engine, closeEngine, err := newEngine(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize NLP engine: %v", err)
	}
	defer closeEngine()
	extractor := nlp.NewExtractor(engine)

	selectors, err := scraper.LoadSelectors(cfg.SelectorsFile)
	if err != nil {
		log.Fatalf("Failed to load selectors: %v", err)
	}

	httpClient := utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)
	jobAgent := agent.NewJobAgent(cfg, httpClient, selectors, extractor)
	log.Println("Job agent initialized successfully")

	jwtService := auth.NewJWTService(cfg)

	toolRegistry := tools.NewPipelineRegistry(jobAgent.Parser(), extractor, matching.NewScorer(), jobAgent)
	mcpServer := mcp.NewServer(toolRegistry, "jobmatch", handlers.Version)

	authHandler := handlers.NewAuthHandler(userStore, jwtService)
	matchHandler := handlers.NewMatchHandler(jobAgent)
	toolsHandler := handlers.NewToolsHandler(toolRegistry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
		}

		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.POST("/refresh", authHandler.Refresh)
			authProtected.GET("/me", authHandler.GetProfile)
			authProtected.DELETE("/delete", authHandler.Delete)
		}

		protected := api.Group("")
		protected.Use(auth.AuthMiddleware(jwtService))
		{
			protected.GET("/job-matching", matchHandler.MatchJobs)
			protected.POST("/job-matching", matchHandler.MatchJobs)
			protected.GET("/tools", toolsHandler.GetTools)

			// MCP endpoints for external AI agents
			mcpServer.RegisterRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

func newUserStore(ctx context.Context, cfg *config.Config) (storage.UserStore, error) {
	if cfg.StoreBackend == config.StoreFirestore {
		return storage.NewFirestoreStore(ctx, cfg.ProjectID)
	}
	return storage.NewSQLiteStore(ctx, cfg.SQLitePath)
}

// newEngine returns the configured analysis engine and its cleanup func
func newEngine(ctx context.Context, cfg *config.Config) (nlp.Engine, func(), error) {
	if cfg.NLPEngine == config.EngineVertex {
		client, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { client.Close() }, nil
	}
	return nlp.NewProseEngine(), func() {}, nil
}
