package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptpress/internal/markdown"
	"promptpress/internal/middleware"
	"promptpress/internal/models"
	"promptpress/internal/session"
	"promptpress/internal/store"
)

// Prompts handles the saved-prompt library endpoints. Every operation is
// scoped to the authenticated user.
type Prompts struct {
	promptStore *store.PromptStore
}

// NewPrompts creates a new Prompts handler group.
func NewPrompts(promptStore *store.PromptStore) *Prompts {
	return &Prompts{promptStore: promptStore}
}

// promptResponse is the JSON shape for a saved prompt. HTML is the
// sanitized rendering of the enhanced text.
type promptResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	OriginalText   string  `json:"original_text"`
	EnhancedPrompt string  `json:"enhanced_prompt"`
	HTML           string  `json:"html"`
	PromptType     *string `json:"prompt_type"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func toPromptResponse(p *models.Prompt) promptResponse {
	return promptResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		OriginalText:   p.OriginalText,
		EnhancedPrompt: p.EnhancedPrompt,
		HTML:           markdown.ToHTML(p.EnhancedPrompt),
		PromptType:     p.PromptType,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

// promptID parses the {id} URL parameter.
func promptID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// requireSession fetches the session from the context, writing a 401 when
// it is missing. The router mounts these handlers behind RequireAuth, so
// a nil session here means a wiring mistake rather than a user error.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Data, bool) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return sess, true
}

// List handles GET /api/prompts.
func (p *Prompts) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	prompts, err := p.promptStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list prompts failed", "error", err, "user", sess.UserID)
		respondError(w, http.StatusInternalServerError, "could not load prompts")
		return
	}

	out := make([]promptResponse, 0, len(prompts))
	for _, item := range prompts {
		out = append(out, toPromptResponse(item))
	}
	respondJSON(w, http.StatusOK, map[string]any{"prompts": out})
}

// Create handles POST /api/prompts. The title is derived server-side from
// the original text.
func (p *Prompts) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req struct {
		OriginalText   string  `json:"original_text"`
		EnhancedPrompt string  `json:"enhanced_prompt"`
		PromptType     *string `json:"prompt_type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.OriginalText) == "" {
		respondError(w, http.StatusBadRequest, "original text is required")
		return
	}
	if msg := validateEnhanced(req.EnhancedPrompt); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	title := models.DeriveTitle(req.OriginalText)
	prompt, err := p.promptStore.Create(sess.UserID, title, req.OriginalText, req.EnhancedPrompt, req.PromptType)
	if err != nil {
		slog.Error("create prompt failed", "error", err, "user", sess.UserID)
		respondError(w, http.StatusInternalServerError, "could not save prompt")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"prompt": toPromptResponse(prompt)})
}

// Get handles GET /api/prompts/{id}.
func (p *Prompts) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	id, ok := promptID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid prompt id")
		return
	}

	prompt, err := p.promptStore.FindByID(id, sess.UserID)
	if err != nil {
		slog.Error("get prompt failed", "error", err, "user", sess.UserID)
		respondError(w, http.StatusInternalServerError, "could not load prompt")
		return
	}
	if prompt == nil {
		respondError(w, http.StatusNotFound, "prompt not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"prompt": toPromptResponse(prompt)})
}

// Update handles PUT /api/prompts/{id}. Only the enhanced text is
// replaceable; the original input and derived title are immutable.
func (p *Prompts) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	id, ok := promptID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid prompt id")
		return
	}

	var req struct {
		EnhancedPrompt string `json:"enhanced_prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateEnhanced(req.EnhancedPrompt); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	prompt, err := p.promptStore.UpdateEnhanced(id, sess.UserID, req.EnhancedPrompt)
	if err != nil {
		slog.Error("update prompt failed", "error", err, "user", sess.UserID)
		respondError(w, http.StatusInternalServerError, "could not update prompt")
		return
	}
	if prompt == nil {
		respondError(w, http.StatusNotFound, "prompt not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"prompt": toPromptResponse(prompt)})
}

// Delete handles DELETE /api/prompts/{id}.
func (p *Prompts) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	id, ok := promptID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid prompt id")
		return
	}

	deleted, err := p.promptStore.Delete(id, sess.UserID)
	if err != nil {
		slog.Error("delete prompt failed", "error", err, "user", sess.UserID)
		respondError(w, http.StatusInternalServerError, "could not delete prompt")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "prompt not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
