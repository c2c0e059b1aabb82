package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cbda-academy/exam-api/config"
	"github.com/cbda-academy/exam-api/database"
	_ "github.com/cbda-academy/exam-api/docs" // Swagger docs - auto-generated
	adminctrl "github.com/cbda-academy/exam-api/internal/controller/admin"
	userctrl "github.com/cbda-academy/exam-api/internal/controller/user"
	"github.com/cbda-academy/exam-api/internal/logger"
	"github.com/cbda-academy/exam-api/internal/model"
	"github.com/cbda-academy/exam-api/internal/repository"
	"github.com/cbda-academy/exam-api/internal/service"
	"github.com/cbda-academy/exam-api/internal/session"
	"github.com/cbda-academy/exam-api/internal/storage"
	"github.com/cbda-academy/exam-api/internal/verification"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CBDA Exam Practice API
// @version 1.0
// @description API for CBDA certification practice: question banks, timed test sessions, scoring and result reports.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewCodeStore,
			NewExportStore,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionSetRepository,
			repository.NewResultRepository,
		),

		// Services Layer
		fx.Provide(
			func(store verification.CodeStore) *verification.Service {
				return verification.NewService(store, verification.LogSender{})
			},
			service.NewAuthService,
			service.NewQuestionBankService,
			service.NewResultService,
			service.NewAdminService,
			func(bank service.QuestionBankService, results service.ResultService) *session.Manager {
				return session.NewManager(bank, results)
			},
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewSessionController,
			userctrl.NewTestController,
			adminctrl.NewAdminController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedUsers),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewCodeStore picks the backing store for verification codes. Redis when
// configured, otherwise an in-memory store good enough for a single node.
func NewCodeStore(cfg *config.Config) verification.CodeStore {
	if cfg.Redis.Host == "" {
		log.Warn().Msg("REDIS_HOST not set, verification codes held in memory")
		return verification.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return verification.NewRedisStore(client)
}

// NewExportStore provides the blob store that holds generated CSV reports.
func NewExportStore(cfg *config.Config) (storage.BlobStore, error) {
	return storage.NewFSStore(cfg.Export.Dir)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *userctrl.AuthController,
	sessionCtrl *userctrl.SessionController,
	testCtrl *userctrl.TestController,
	adminCtrl *adminctrl.AdminController,
) {
	router.GET("/api/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/questions/upload/:test_type/:test_id", adminCtrl.UploadQuestions)
		adminAPIGroup.GET("/users", adminCtrl.GetUsers)
		adminAPIGroup.GET("/stats", adminCtrl.GetStats)
		adminAPIGroup.GET("/results", adminCtrl.GetAllResults)
		adminAPIGroup.DELETE("/results/:result_id", adminCtrl.DeleteResult)
		adminAPIGroup.GET("/results/export/csv", adminCtrl.ExportCSV)
		adminAPIGroup.GET("/results/export/csv-cloud", adminCtrl.ExportCSVToCloud)
		adminAPIGroup.GET("/results/csv-files", adminCtrl.ListCSVFiles)
		adminAPIGroup.DELETE("/results/csv-files/:filename", adminCtrl.DeleteCSVFile)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		authGroup := userAPIGroup.Group("/auth")
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/request-code", authCtrl.RequestCode)
		authGroup.POST("/verify-code", authCtrl.VerifyCode)
		authGroup.POST("/change-email", authCtrl.ChangeEmail)

		userAPIGroup.GET("/questions/available", testCtrl.GetAvailableTests)
		userAPIGroup.GET("/questions/:test_type/:test_id", testCtrl.GetQuestions)
		userAPIGroup.GET("/results/user/:user_id", testCtrl.GetUserResults)

		sessionGroup := userAPIGroup.Group("/sessions")
		sessionGroup.POST("", sessionCtrl.StartSession)
		sessionGroup.GET("/:session_id", sessionCtrl.GetSession)
		sessionGroup.PUT("/:session_id/answers", sessionCtrl.RecordAnswer)
		sessionGroup.POST("/:session_id/navigate", sessionCtrl.Navigate)
		sessionGroup.POST("/:session_id/submit", sessionCtrl.SubmitSession)
		sessionGroup.DELETE("/:session_id", sessionCtrl.AbandonSession)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CBDA Exam API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.QuestionSet{},
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedUsers creates the default admin and demo student on an empty database.
func SeedUsers(authService service.AuthService) error {
	return authService.SeedDefaults()
}
