// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the remote LLM that elaborates user ideas into
// structured prompts. The provider performs exactly one attempt per call;
// falling back to the offline generator on failure is the caller's job.
package ai

import "context"

// Provider is the remote generation client consumed by the handlers.
type Provider interface {
	// Generate sends the enhancement instruction to the LLM and returns the
	// first completion's text. The promptType is accepted for interface
	// stability; the system instruction is derived from the prompt text.
	Generate(ctx context.Context, prompt, promptType string) (string, error)

	// TestConnection performs a cheap round-trip to verify the endpoint and
	// credentials. It never returns an error; failures are reported in the
	// Status so callers can surface the message directly.
	TestConnection(ctx context.Context) Status

	// Name returns the provider identifier (e.g., "openrouter").
	Name() string
}

// Status is the outcome of a connection test.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Config holds the credentials and settings for the remote provider.
// SiteURL and SiteName are forwarded as attribution headers.
type Config struct {
	APIKey   string
	Model    string
	BaseURL  string
	SiteURL  string
	SiteName string
}
