package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mercator-hq/abacus/pkg/pricing"
)

// ModelsHandler serves the merged pricing table as JSON.
type ModelsHandler struct {
	Resolver *pricing.Resolver
}

// NewModelsHandler creates a handler backed by resolver.
func NewModelsHandler(resolver *pricing.Resolver) *ModelsHandler {
	return &ModelsHandler{Resolver: resolver}
}

// ServeHTTP implements http.Handler. An optional "provider" query parameter
// filters the table to one provider's models.
func (h *ModelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	provider := r.URL.Query().Get("provider")
	models := h.Resolver.ListModels(provider)

	response := map[string]interface{}{
		"count":  len(models),
		"models": models,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// CostHandler computes the USD cost of a hypothetical call from query
// parameters, using the same resolution path as the accounting library.
type CostHandler struct {
	Resolver *pricing.Resolver
}

// NewCostHandler creates a handler backed by resolver.
func NewCostHandler(resolver *pricing.Resolver) *CostHandler {
	return &CostHandler{Resolver: resolver}
}

// ServeHTTP implements http.Handler. Required query parameters: "model",
// "prompt" (input token count), and "completion" (output token count).
func (h *CostHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()

	model := query.Get("model")
	if model == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: model")
		return
	}

	promptTokens, err := parseTokenParam(query.Get("prompt"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prompt token count")
		return
	}

	completionTokens, err := parseTokenParam(query.Get("completion"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid completion token count")
		return
	}

	cost, err := h.Resolver.CalculateCost(model, promptTokens, completionTokens)
	if err != nil {
		if errors.Is(err, pricing.ErrModelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]interface{}{
		"model":             model,
		"prompt_tokens":     promptTokens,
		"completion_tokens": completionTokens,
		"cost_usd":          cost,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// parseTokenParam parses a token-count query parameter. Absent means zero;
// present values must be non-negative integers.
func parseTokenParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative token count")
	}
	return n, nil
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
