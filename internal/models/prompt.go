// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// titleLimit is the number of leading input characters used for the
// derived library title.
const titleLimit = 50

// Prompt is a saved library entry: the user's original idea together with
// the enhanced prompt produced for it. Rows are owned exclusively by the
// user who saved them.
type Prompt struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	OriginalText   string    `json:"original_text"`
	EnhancedPrompt string    `json:"enhanced_prompt"`
	PromptType     *string   `json:"prompt_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DeriveTitle builds a library title from the original input: the first
// 50 characters, ellipsis-truncated when the input is longer. Truncation
// counts runes, never splitting a multibyte character.
func DeriveTitle(originalText string) string {
	runes := []rune(originalText)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit]) + "..."
	}
	return originalText
}
