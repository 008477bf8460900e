package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// NewHTTPServer wires the API routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, handler *trivia.HTTPHandler) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/categories", handler.HandleCategories)
	mux.HandleFunc("GET /api/categories/{id}/questions", handler.HandleCategoryQuestions)
	mux.HandleFunc("GET /api/questions", handler.HandleListQuestions)
	mux.HandleFunc("POST /api/questions", handler.HandleCreateOrSearch)
	mux.HandleFunc("DELETE /api/questions/{id}", handler.HandleDeleteQuestion)
	mux.HandleFunc("GET /api/questions/{term}/questionTerm", handler.HandleSearchTerm)
	mux.HandleFunc("POST /api/quizzes", handler.HandleQuiz)

	root := RequestLogging(logger, CORS(cfg.CORS, mux))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: root,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}
