package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/certprep/backend/internal/auth"
	"github.com/certprep/backend/internal/config"
	"github.com/certprep/backend/internal/database"
	"github.com/certprep/backend/internal/middleware"
	"github.com/certprep/backend/internal/questionbank"
	"github.com/certprep/backend/internal/quiz"
)

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Auth.JWTSecret != "" {
		auth.JWTSecret = []byte(cfg.Auth.JWTSecret)
	}

	// Initialize database
	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load the question bank. A broken CSV falls back to the built-in
	// sample set so the server still comes up.
	bank := questionbank.NewRepository()
	if cfg.Questions.CSVPath != "" {
		if err := bank.LoadCSV(cfg.Questions.CSVPath); err != nil {
			log.Printf("WARN: failed to load questions from %s: %v; using built-in sample set", cfg.Questions.CSVPath, err)
			bank.LoadSample()
		}
	} else {
		log.Printf("WARN: no question file configured; using built-in sample set")
		bank.LoadSample()
	}
	log.Printf("[questionbank] loaded %d questions", bank.Count())

	// Initialize handlers
	authHandler := auth.NewHandler(db)
	bankHandler := questionbank.NewHandler(bank, cfg.Questions.CSVPath)

	quizStore := quiz.NewStore(db)
	quizService := quiz.NewService(quizStore, bank, cfg.SRS.IntervalDays, cfg.Quiz.ReviewRatio, cfg.Quiz.DefaultSize, cfg.Quiz.MaxSize)
	quizHandler := quiz.NewHandler(quizService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/quiz/start", quizHandler.StartQuiz).Methods("POST")
	protected.HandleFunc("/quiz/current", quizHandler.CurrentQuestion).Methods("GET")
	protected.HandleFunc("/quiz/answer", quizHandler.SubmitAnswer).Methods("POST")

	protected.HandleFunc("/review/due", quizHandler.DueReview).Methods("GET")
	protected.HandleFunc("/stats", quizHandler.Stats).Methods("GET")
	protected.HandleFunc("/history", quizHandler.History).Methods("GET")
	protected.HandleFunc("/history/mistakes", quizHandler.Mistakes).Methods("GET")

	protected.HandleFunc("/questions", bankHandler.ListQuestions).Methods("GET")
	protected.HandleFunc("/questions/{id:[0-9]+}", bankHandler.GetQuestion).Methods("GET")

	protected.HandleFunc("/admin/questions/reload", bankHandler.Reload).Methods("POST")
	protected.HandleFunc("/admin/questions/summary", bankHandler.Summary).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
