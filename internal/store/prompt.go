package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

// PromptStore handles all saved-prompt database operations. Every query is
// scoped to the owning user so one account can never read or modify
// another account's prompts.
type PromptStore struct {
	db *sql.DB
}

// NewPromptStore creates a new PromptStore with the given database connection.
func NewPromptStore(db *sql.DB) *PromptStore {
	return &PromptStore{db: db}
}

// Create saves a new prompt for a user. The title is derived from the
// original text by the caller via models.DeriveTitle.
func (s *PromptStore) Create(userID uuid.UUID, title, originalText, enhancedPrompt string, promptType *string) (*models.Prompt, error) {
	p := &models.Prompt{}
	err := s.db.QueryRow(`
		INSERT INTO prompts (user_id, title, original_text, enhanced_prompt, prompt_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, original_text, enhanced_prompt, prompt_type, created_at, updated_at
	`, userID, title, originalText, enhancedPrompt, promptType).Scan(
		&p.ID, &p.UserID, &p.Title, &p.OriginalText, &p.EnhancedPrompt,
		&p.PromptType, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	return p, nil
}

// ListByUser returns all prompts owned by a user, newest first.
func (s *PromptStore) ListByUser(userID uuid.UUID) ([]*models.Prompt, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, original_text, enhanced_prompt, prompt_type, created_at, updated_at
		FROM prompts WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*models.Prompt
	for rows.Next() {
		p := &models.Prompt{}
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.OriginalText, &p.EnhancedPrompt,
			&p.PromptType, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

// FindByID retrieves a single prompt owned by the given user. Returns nil
// if it does not exist or belongs to someone else.
func (s *PromptStore) FindByID(id, userID uuid.UUID) (*models.Prompt, error) {
	p := &models.Prompt{}
	err := s.db.QueryRow(`
		SELECT id, user_id, title, original_text, enhanced_prompt, prompt_type, created_at, updated_at
		FROM prompts WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.OriginalText, &p.EnhancedPrompt,
		&p.PromptType, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find prompt by id: %w", err)
	}
	return p, nil
}

// UpdateEnhanced replaces the enhanced text of a prompt. The original input
// and derived title are immutable once saved.
func (s *PromptStore) UpdateEnhanced(id, userID uuid.UUID, enhancedPrompt string) (*models.Prompt, error) {
	p := &models.Prompt{}
	err := s.db.QueryRow(`
		UPDATE prompts SET enhanced_prompt = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, title, original_text, enhanced_prompt, prompt_type, created_at, updated_at
	`, enhancedPrompt, id, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.OriginalText, &p.EnhancedPrompt,
		&p.PromptType, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update prompt: %w", err)
	}
	return p, nil
}

// Delete removes a prompt owned by the given user. Returns true when a row
// was actually deleted.
func (s *PromptStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM prompts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete prompt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete prompt: %w", err)
	}
	return n > 0, nil
}
