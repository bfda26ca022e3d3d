package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"intervu/internal/ai"
	"intervu/internal/api"
	"intervu/internal/audio"
	"intervu/internal/config"
	"intervu/internal/interview"
	"intervu/internal/store"
	"intervu/internal/stt"
	"intervu/internal/transcribe"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Completion collaborator. Absence of the key degrades question
	// generation and feedback to their fallbacks instead of failing.
	var completer ai.Completer
	if cfg.OpenAIKey != "" {
		completer = ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
		log.Printf("Completion collaborator ready (model: %s)", cfg.OpenAIModel)
	} else {
		log.Println("OPENAI_API_KEY not set, running in degraded mode (fallback question only)")
	}

	generator := interview.NewQuestionGenerator(completer, cfg.QuestionCount)
	evaluator := interview.NewFeedbackEvaluator(completer)

	// Speech backend. Voice-mode commands fail cleanly when unavailable;
	// text mode is unaffected.
	var transcriber interview.Transcriber
	if provider, err := stt.CreateProvider(); err != nil {
		log.Printf("Warning: no speech backend available: %v. Voice mode disabled.", err)
	} else {
		transcriber = transcribe.New(provider, audio.NewFFmpegNormalizer(cfg.FFmpegBinary))
	}

	handler := api.NewHandler(store.NewSessions(), generator, evaluator, transcriber)

	r := gin.Default()

	// Add CORS middleware for browser and mobile clients
	r.Use(corsMiddleware())

	// Register routes
	handler.RegisterRoutes(r)

	log.Printf("Intervu backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds permissive CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
