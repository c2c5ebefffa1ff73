package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for user and prompt fields.
const (
	maxEmailLen       = 320
	minPasswordLen    = 8
	maxPasswordLen    = 200
	maxDisplayNameLen = 100
	maxInputLen       = 10_000
	maxEnhancedLen    = 100_000
)

// validateRegistration checks registration inputs and returns the first
// error found, or "" when everything is valid.
func validateRegistration(email, password, displayName string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return "Email is too long."
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "Email is not valid."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password must be at least 8 characters."
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return "Password is too long."
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "Display name is too long (max 100 characters)."
	}
	return ""
}

// validateGenerateInput checks the raw idea text submitted for enhancement.
func validateGenerateInput(input string) string {
	if strings.TrimSpace(input) == "" {
		return "Please enter some text to generate a prompt"
	}
	if utf8.RuneCountInString(input) > maxInputLen {
		return "Input is too long (max 10,000 characters)."
	}
	return ""
}

// validateEnhanced checks the replacement enhanced text on prompt updates.
func validateEnhanced(enhanced string) string {
	if strings.TrimSpace(enhanced) == "" {
		return "Enhanced prompt must not be empty."
	}
	if utf8.RuneCountInString(enhanced) > maxEnhancedLen {
		return "Enhanced prompt is too long (max 100,000 characters)."
	}
	return ""
}
