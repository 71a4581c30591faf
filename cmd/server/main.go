package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/novahealth/riskengine/internal/advice"
	"github.com/novahealth/riskengine/internal/api"
	"github.com/novahealth/riskengine/internal/config"
	"github.com/novahealth/riskengine/internal/platform/logger"
	"github.com/novahealth/riskengine/internal/predict"
	"github.com/novahealth/riskengine/internal/symptoms"
)

func main() {
	envErr := config.LoadEnv()

	mode := config.Get("APP_MODE", "dev")
	log, err := logger.New(mode)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	if envErr != nil && !errors.Is(envErr, config.ErrEnvFileNotFound) {
		log.Warn("failed to load .env file", "error", envErr)
	}

	// Load model manifests; the service degrades to fallbacks when any are missing
	modelDir := config.Get("MODEL_DIR", "models")
	modelSet := predict.NewModelSet(modelDir, log)

	analyzer := symptoms.NewRuleBasedAnalyzer(symptoms.AnalyzerConfig{
		MaxConditions: config.GetInt("MAX_CONDITIONS", 3),
	})
	advisor := advice.NewGenerator(advice.GeneratorConfig{
		MaxRecommendations: config.GetInt("MAX_RECOMMENDATIONS", 6),
	})
	assessor := api.NewHealthAssessor(modelSet, analyzer, advisor, log, api.AssessorConfig{
		Timeout: time.Duration(config.GetInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	})
	handler := api.NewHealthHandler(assessor, modelSet, log)

	if mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	origins := config.Get("CORS_ORIGINS", "*")
	if origins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	handler.RegisterRoutes(router)

	port := config.GetInt("PORT", 8000)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", "port", port, "mode", mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	log.Info("server stopped")
}
