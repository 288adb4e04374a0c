package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/mvtien/studybuddy/config"
	"github.com/mvtien/studybuddy/database"
	_ "github.com/mvtien/studybuddy/docs" // Swagger docs - auto-generated
	progressctrl "github.com/mvtien/studybuddy/internal/controller/progress"
	studyctrl "github.com/mvtien/studybuddy/internal/controller/study"
	"github.com/mvtien/studybuddy/internal/logger"
	"github.com/mvtien/studybuddy/internal/model"
	"github.com/mvtien/studybuddy/internal/oracle"
	"github.com/mvtien/studybuddy/internal/repository"
	"github.com/mvtien/studybuddy/internal/service"
	"github.com/mvtien/studybuddy/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title AI Study Buddy API
// @version 1.0
// @description Backend for an AI study assistant: quiz generation from topics or lecture transcripts, resilient parsing of model output, grading with weak-topic remediation, and learner progress with badges.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewCookieStore,       // Provides sessions.Store
			session.NewStore,     // Per-session quiz state
			oracle.NewGeminiOracle,
		),

		// Repositories layer
		fx.Provide(
			repository.NewProgressRepository,
		),

		// Services layer
		fx.Provide(
			service.NewQuizService,
			service.NewGradingService,
			service.NewStudyService,
			service.NewProgressService,
		),

		// API controllers layer
		fx.Provide(
			studyctrl.NewStudyController,
			progressctrl.NewProgressController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewCookieStore builds the cookie-backed store that carries the opaque
// session ID across requests.
func NewCookieStore(cfg *config.Config) sessions.Store {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	studyCtrl *studyctrl.StudyController,
	progressCtrl *progressctrl.ProgressController,
) {
	api := router.Group("/api/v1")
	{
		quizGroup := api.Group("/quiz")
		quizGroup.POST("/generate", studyCtrl.GenerateQuiz)
		quizGroup.GET("", studyCtrl.GetQuiz)
		quizGroup.DELETE("", studyCtrl.ClearQuiz)
		quizGroup.POST("/answers", studyCtrl.RecordAnswer)
		quizGroup.POST("/submit", studyCtrl.SubmitQuiz)

		api.POST("/study/ask", studyCtrl.Ask)
		api.POST("/notes", studyCtrl.Notes)

		progressGroup := api.Group("/progress")
		progressGroup.GET("/:learner_id", progressCtrl.GetProgress)
		progressGroup.POST("/:learner_id/reset", progressCtrl.ResetProgress)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Study Buddy API server starting on port %s", cfg.Server.Port)
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
		&model.ScoreEntry{},
		&model.ProgressSummary{},
		&model.BadgeAward{},
		&model.QuizArchive{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
