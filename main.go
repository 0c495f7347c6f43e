package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Server struct {
	roster     *Roster
	squadStats SquadStatistics
	sessions   *SessionStore
	queryCache *QueryCache
	limiter    *RateLimiter
	router     *mux.Router
	httpServer *http.Server
	config     *Config
}

type Config struct {
	Port            string
	AllowedOrigins  []string
	SessionTTL      time.Duration
	StatsCacheTTL   time.Duration
	RateLimitPerMin int
	RateLimitBurst  int
}

func NewConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		StatsCacheTTL:   time.Duration(getEnvInt("STATS_CACHE_TTL_MINUTES", 10)) * time.Minute,
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 60),
	}
}

func NewServer(config *Config) (*Server, error) {
	roster, err := NewRoster(squadPlayers, squadFines)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	s := &Server{
		roster:     roster,
		squadStats: computeSquadStatistics(roster.Players()),
		sessions:   NewSessionStore(config.SessionTTL),
		queryCache: NewQueryCache(),
		limiter:    NewRateLimiter(config.RateLimitPerMin, config.RateLimitBurst),
		config:     config,
		router:     mux.NewRouter(),
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// Root endpoint for API documentation
	s.router.HandleFunc("/", s.rootHandler).Methods("GET")

	// API version prefix
	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", s.healthHandler).Methods("GET")

	// Roster endpoints
	api.HandleFunc("/players", s.getPlayersHandler).Methods("GET")
	api.HandleFunc("/players/{name}", s.getPlayerHandler).Methods("GET")

	// Squad statistics
	api.HandleFunc("/squad/stats", s.getSquadStatsHandler).Methods("GET")

	// Viewing sessions
	api.HandleFunc("/sessions", s.createSessionHandler).Methods("POST")
	api.HandleFunc("/sessions/{id}", s.getSessionHandler).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.deleteSessionHandler).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/input", s.sessionInputHandler).Methods("POST")
	api.HandleFunc("/sessions/{id}/trivia/guess", s.triviaGuessHandler).Methods("POST")
	api.HandleFunc("/sessions/{id}/card", s.getCardHandler).Methods("GET")

	// Metrics endpoint
	api.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	// Apply middleware
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
	api.Use(s.rateLimitMiddleware)
}

func (s *Server) Start() error {
	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	})

	handler := c.Handler(handlers.CompressHandler(s.router))

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting wrapped API on port %s", s.config.Port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down wrapped API...")

	// Stop session eviction
	s.sessions.Stop()

	// Shutdown HTTP server
	return s.httpServer.Shutdown(ctx)
}

// Middleware
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a custom response writer to capture status code
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		appMetrics.IncrementRequests()
		appMetrics.AddResponseTime(duration)
		if lrw.statusCode >= http.StatusInternalServerError {
			appMetrics.IncrementErrors()
		}
		log.Printf("%s %s %d %v", r.Method, r.RequestURI, lrw.statusCode, duration)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			writeError(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handlers
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"service": "Duchy Wrapped API",
		"version": "1.0.0",
		"status":  "online",
		"time":    time.Now().UTC(),
		"endpoints": map[string]interface{}{
			"health":   "/api/v1/health",
			"players":  "/api/v1/players",
			"squad":    "/api/v1/squad/stats",
			"sessions": "/api/v1/sessions",
			"metrics":  "/api/v1/metrics",
		},
		"documentation": "Half-season slide review for the Duchy men's 1st XI",
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":          "healthy",
		"time":            time.Now().UTC(),
		"players":         s.roster.Len(),
		"active_sessions": s.sessions.Count(),
	})
}

// Roster handlers
func (s *Server) getPlayersHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	if query == "" {
		writeJSON(w, map[string]interface{}{
			"players": s.roster.Players(),
			"count":   s.roster.Len(),
		})
		return
	}

	results := s.roster.Search(query)
	if results == nil {
		results = []SearchResult{}
	}
	writeJSON(w, map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) getPlayerHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	player, ok := s.roster.ByName(name)
	if !ok {
		writeError(w, "Player not found", http.StatusNotFound)
		return
	}

	writeJSON(w, player)
}

// Squad statistics handler. The figures are fixed at startup; the
// cache wiring keeps the hit/miss counters honest for the metrics
// endpoint.
func (s *Server) getSquadStatsHandler(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "squad/stats"

	if cached, found := s.queryCache.Get(cacheKey); found {
		appMetrics.IncrementCacheHit()
		writeJSON(w, cached)
		return
	}
	appMetrics.IncrementCacheMiss()

	s.queryCache.Set(cacheKey, s.squadStats, s.config.StatsCacheTTL)
	writeJSON(w, s.squadStats)
}

// Session handlers
func (s *Server) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Player string `json:"player"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Player == "" {
		writeError(w, "Player name is required", http.StatusBadRequest)
		return
	}

	player, ok := s.roster.ByName(req.Player)
	if !ok {
		writeErrorWithDetails(w, "Player not found", "PLAYER_NOT_FOUND",
			map[string]interface{}{"player": req.Player}, http.StatusNotFound)
		return
	}

	slides := buildSlides(player, s.squadStats, s.roster)
	trivia := NewTriviaGame(s.squadStats.TopScorers)
	session := s.sessions.Create(player, slides, trivia)
	appMetrics.IncrementSessionsCreated()

	// Headers freeze at WriteHeader, so the content type goes first.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]interface{}{
		"session_id":  session.ID,
		"player":      player.Name,
		"music":       true,
		"slide_count": len(slides),
		"state":       session.Nav.State(),
		"slides":      slides,
	})
}

func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.Touch()

	state := session.Nav.State()
	writeJSON(w, map[string]interface{}{
		"session_id": session.ID,
		"player":     session.Player.Name,
		"state":      state,
		"closed":     session.Nav.Closed(),
		"slide":      session.Slides[state.Index],
		"trivia":     session.Trivia.State(),
	})
}

func (s *Server) deleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.sessions.Get(id); !ok {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	s.sessions.Delete(id)
	appMetrics.IncrementSessionsClosed()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sessionInputHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	var event InputEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	transition, err := mapInput(event)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session.mu.Lock()
	session.Touch()
	result := session.Nav.Apply(transition)
	state := result.State
	slide := session.Slides[state.Index]
	session.mu.Unlock()

	// Advancing past the last slide dismisses the deck entirely.
	if result.Closed {
		s.sessions.Delete(session.ID)
		appMetrics.IncrementSessionsClosed()
	}

	writeJSON(w, map[string]interface{}{
		"state":   state,
		"closed":  result.Closed,
		"effects": result.Effects,
		"slide":   slide,
	})
}

func (s *Server) triviaGuessHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	guessed, ok := s.roster.ByName(req.Name)
	if !ok {
		writeError(w, "Player not found", http.StatusNotFound)
		return
	}

	session.mu.Lock()
	session.Touch()
	result := session.Trivia.Guess(guessed)
	session.mu.Unlock()

	writeJSON(w, result)
}

func (s *Server) getCardHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.Touch()

	for _, slide := range session.Slides {
		if slide.Kind == SlideSummary {
			writeJSON(w, slide.Summary)
			return
		}
	}
	writeError(w, "Summary card not found", http.StatusInternalServerError)
}

// Helper types and functions
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	config := NewConfig()

	server, err := NewServer(config)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("Server shutdown failed:", err)
		}
		log.Println("Server shutdown complete")
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed to start:", err)
	}
}
