// Package server exposes the tool backend over HTTP: a single
// /run_tool dispatch endpoint plus a /schema document describing the
// available tools.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"shopbot/catalog"
	"shopbot/webtool"
)

// toolFunc executes one tool. Tool-level failures are reported inside
// the result payload, not as HTTP errors, so the model can read them.
type toolFunc func(ctx context.Context, params map[string]any) any

// Server is the tool backend.
type Server struct {
	catalog    *catalog.Store
	searcher   *webtool.Searcher
	rates      *webtool.RatesClient
	translator *webtool.Translator
	handlers   map[string]toolFunc
}

// New creates a server over the given catalog. The web-facing tools
// use their public endpoints.
func New(cat *catalog.Store) *Server {
	s := &Server{
		catalog:    cat,
		searcher:   webtool.NewSearcher(),
		rates:      webtool.NewRatesClient(),
		translator: webtool.NewTranslator(),
	}
	s.handlers = map[string]toolFunc{
		"list_products":      s.listProducts,
		"find_product":       s.findProduct,
		"add_product":        s.addProduct,
		"calculate":          s.calculate,
		"calculate_advanced": s.calculateAdvanced,
		"search_web":         s.searchWeb,
		"get_currency_rates": s.currencyRates,
		"translate_text":     s.translateText,
	}
	return s
}

// Handler returns the HTTP handler with CORS and request logging
// attached.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /run_tool", s.handleRunTool)
	mux.HandleFunc("GET /schema", s.handleSchema)

	return cors.AllowAll().Handler(s.logRequests(mux))
}

type runToolRequest struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

func (s *Server) handleRunTool(w http.ResponseWriter, r *http.Request) {
	var req runToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid JSON body"})
		return
	}
	if req.Params == nil {
		req.Params = map[string]any{}
	}

	fn, ok := s.handlers[req.Tool]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"detail": fmt.Sprintf("Tool '%s' not found", req.Tool),
		})
		return
	}

	result := fn(r.Context(), req.Params)
	writeJSON(w, http.StatusOK, map[string]any{
		"tool":     req.Tool,
		"response": result,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildSchema())
}

// logRequests tags each request with a short ID so concurrent tool
// calls can be told apart in the logs.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
