package runner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/phishcheck"
	"golang.org/x/time/rate"
)

const maxRequestBody = 64 * 1024

type analyzeRequest struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// server exposes the analyzer over http
type server struct {
	analyzer *phishcheck.Analyzer
	limiter  *rate.Limiter // nil means unlimited
}

func newServer(analyzer *phishcheck.Analyzer, rps int) *server {
	s := &server{analyzer: analyzer}
	if rps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return s
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.limiter != nil && !s.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		return
	}
	var url string
	switch r.Method {
	case http.MethodGet:
		url = r.URL.Query().Get("url")
	case http.MethodPost:
		var req analyzeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		url = req.URL
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	result, err := s.analyzer.AnalyzeInput(url)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	gologger.Verbose().Msgf("[%v] %v", result.Label, result.URL)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		gologger.Warning().Msgf("could not write response: %v", err)
	}
}

// serve runs the api until ctx is done
func (r *Runner) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.options.Serve,
		Handler:           newServer(r.analyzer, r.options.RateLimit).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		gologger.Info().Msgf("Listening on %v", r.options.Serve)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
