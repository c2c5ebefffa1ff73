package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"promptpress/internal/ai"
	"promptpress/internal/cache"
	"promptpress/internal/classify"
	"promptpress/internal/fallback"
	"promptpress/internal/markdown"
	"promptpress/internal/middleware"
)

// offlineNotice is shown to the user when the remote provider failed and
// the deterministic offline generator produced the result instead.
const offlineNotice = "API is currently unavailable. Using offline mode."

// Generate handles prompt enhancement requests. It prefers the remote
// provider and falls back to the offline template engine on any remote
// failure, so a generation request never hard-fails on provider trouble.
type Generate struct {
	provider ai.Provider

	// results caches successful remote enhancements in Valkey so repeat
	// requests skip the LLM round-trip. Nil disables caching.
	results *cache.ResultCache

	// The connection self-test runs once, before the first real
	// generation, and its outcome is cached for the process lifetime.
	// TestAPI refreshes it on demand.
	mu        sync.Mutex
	apiTested bool
	apiStatus ai.Status
}

// NewGenerate creates a new Generate handler group.
func NewGenerate(provider ai.Provider, results *cache.ResultCache) *Generate {
	return &Generate{provider: provider, results: results}
}

// buildInstruction wraps the user's idea in the enhancement instruction
// sent to the remote model.
func buildInstruction(promptType fallback.PromptType, input string) string {
	return fmt.Sprintf(`As a prompt engineer, enhance and structure this %s idea: "%s".
Create a well-formatted, detailed prompt that includes specific requirements, context, and clear instructions.
Focus on making it comprehensive yet concise, ready to use with AI systems.`, promptType, input)
}

// connectionStatus returns the cached connection self-test result, running
// the test first if it has never run.
func (g *Generate) connectionStatus(r *http.Request) ai.Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.apiTested {
		g.apiStatus = g.provider.TestConnection(r.Context())
		g.apiTested = true
	}
	return g.apiStatus
}

// markFailed records a failed generation so later requests skip straight
// to the fallback until TestAPI reports the provider healthy again.
func (g *Generate) markFailed(msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.apiTested = true
	g.apiStatus = ai.Status{Success: false, Message: msg}
}

// generateResponse is the JSON shape for POST /api/generate.
type generateResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	HTML           string `json:"html"`
	Category       string `json:"category"`
	UsedFallback   bool   `json:"used_fallback"`
	Notice         string `json:"notice,omitempty"`
}

// Enhance handles POST /api/generate.
func (g *Generate) Enhance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input      string `json:"input"`
		PromptType string `json:"prompt_type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if msg := validateGenerateInput(req.Input); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	promptType := fallback.Normalize(req.PromptType)
	category := classify.Classify(req.Input)

	// A cached remote result needs no provider round-trip at all.
	if g.results != nil {
		if cached, ok := g.results.Get(r.Context(), string(promptType), req.Input); ok {
			respondJSON(w, http.StatusOK, generateResponse{
				EnhancedPrompt: cached,
				HTML:           markdown.ToHTML(cached),
				Category:       string(category),
			})
			return
		}
	}

	var (
		enhanced     string
		usedFallback bool
		notice       string
	)

	status := g.connectionStatus(r)
	if !status.Success {
		usedFallback = true
		notice = offlineNotice
		enhanced = fallback.Generate(req.Input, promptType)
	} else {
		instruction := buildInstruction(promptType, req.Input)
		result, err := g.provider.Generate(r.Context(), instruction, string(promptType))
		if err != nil {
			var userID string
			if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
				userID = sess.UserID.String()
			}
			slog.Warn("remote generation failed, using offline generator",
				"error", err,
				"provider", g.provider.Name(),
				"user", userID,
			)
			g.markFailed("API request failed")

			usedFallback = true
			notice = offlineNotice
			enhanced = fallback.Generate(req.Input, promptType)
		} else {
			enhanced = result
			if g.results != nil {
				g.results.Set(r.Context(), string(promptType), req.Input, enhanced)
			}
		}
	}

	respondJSON(w, http.StatusOK, generateResponse{
		EnhancedPrompt: enhanced,
		HTML:           markdown.ToHTML(enhanced),
		Category:       string(category),
		UsedFallback:   usedFallback,
		Notice:         notice,
	})
}

// TestAPI handles POST /api/generate/test — an explicit connection
// diagnostic. The result also refreshes the cached self-test status.
func (g *Generate) TestAPI(w http.ResponseWriter, r *http.Request) {
	status := g.provider.TestConnection(r.Context())

	g.mu.Lock()
	g.apiTested = true
	g.apiStatus = status
	g.mu.Unlock()

	respondJSON(w, http.StatusOK, status)
}
