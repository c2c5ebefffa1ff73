// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package classify buckets free-form user input into a fixed set of topic
// categories using case-insensitive keyword matching. It drives both the
// offline fallback templates and the remote system-prompt specialisation.
package classify

import "strings"

// Category is the topic bucket assigned to a piece of user input.
type Category string

const (
	CategoryUIUX   Category = "ui_ux"
	CategoryAppDev Category = "app_dev"
	CategoryWebDev Category = "web_dev"
	CategoryNone   Category = "none"
)

// Keyword lists per category. Matching is plain substring membership over
// the lower-cased input, so "design" also matches "redesign".
var (
	uiuxKeywords   = []string{"ui", "ux", "user interface", "design"}
	appDevKeywords = []string{"app", "application", "mobile", "development"}
	webDevKeywords = []string{"web", "website", "frontend", "backend"}
)

// Classify assigns a category to the given text. When keywords from several
// categories are present the first match in the fixed priority order
// ui_ux > app_dev > web_dev wins. Returns CategoryNone when nothing matches.
// Total over all strings, including the empty string.
func Classify(text string) Category {
	lower := strings.ToLower(text)

	if containsAny(lower, uiuxKeywords) {
		return CategoryUIUX
	}
	if containsAny(lower, appDevKeywords) {
		return CategoryAppDev
	}
	if containsAny(lower, webDevKeywords) {
		return CategoryWebDev
	}
	return CategoryNone
}

// containsAny reports whether any of the keywords is a substring of s.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
