// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fallback implements the offline prompt generator used whenever the
// remote LLM is unreachable or misbehaves. It classifies the user's idea and
// renders a fixed structured template with the idea interpolated verbatim.
// Generation is deterministic: identical inputs always produce byte-identical
// output.
package fallback

import (
	"fmt"
	"strings"

	"promptpress/internal/classify"
)

// PromptType selects the instructional suffix and extra requirement bullets
// the generic template adds.
type PromptType string

const (
	TypeGeneral     PromptType = "general"
	TypeCreative    PromptType = "creative"
	TypeTechnical   PromptType = "technical"
	TypeMarketing   PromptType = "marketing"
	TypeEducational PromptType = "educational"
)

// Normalize maps unknown prompt type values to TypeGeneral.
func Normalize(t string) PromptType {
	switch PromptType(t) {
	case TypeCreative, TypeTechnical, TypeMarketing, TypeEducational:
		return PromptType(t)
	default:
		return TypeGeneral
	}
}

// typeInstructions holds the canned instruction sentence per prompt type.
var typeInstructions = map[PromptType]string{
	TypeGeneral:     "Please provide a detailed response with clear explanations and examples where relevant.",
	TypeCreative:    "Create a vivid, imaginative response with rich details, engaging narrative, and unique elements.",
	TypeTechnical:   "Provide a precise, structured response with technical accuracy, clear steps, and relevant specifications.",
	TypeMarketing:   "Craft a persuasive, engaging response that highlights benefits, appeals to the target audience, and includes a clear call-to-action.",
	TypeEducational: "Deliver a clear, informative explanation suitable for learning, with concepts broken down step-by-step and examples to aid understanding.",
}

// typeBullets holds the two extra requirement bullets per prompt type.
// TypeGeneral adds none.
var typeBullets = map[PromptType][]string{
	TypeCreative: {
		"Use vivid descriptive language and imagery",
		"Develop interesting characters or concepts",
	},
	TypeTechnical: {
		"Include precise technical specifications or parameters",
		"Provide step-by-step instructions where applicable",
	},
	TypeMarketing: {
		"Highlight unique value propositions and benefits",
		"Include persuasive language and emotional appeals",
	},
	TypeEducational: {
		"Explain concepts in a way appropriate for the target learning level",
		"Build from foundational to more complex ideas",
	},
}

// baseBullets are the five requirement bullets present in every generic prompt.
var baseBullets = []string{
	"Be comprehensive and detailed in addressing all aspects of the topic",
	"Maintain a clear, logical structure throughout the response",
	"Use appropriate tone and language for the intended purpose",
	"Include specific examples or illustrations where helpful",
	"Avoid vague statements; be specific and actionable",
}

// Generate produces an enhanced prompt for the given user input without any
// remote call. Specialised templates are used for UI/UX, app development,
// and web development requests; everything else gets the generic document.
// Empty or whitespace-only input is accepted and echoed into the template.
func Generate(input string, promptType PromptType) string {
	clean := strings.TrimSpace(input)

	switch classify.Classify(clean) {
	case classify.CategoryUIUX:
		return fmt.Sprintf(uiuxTemplate, clean)
	case classify.CategoryAppDev:
		return fmt.Sprintf(appDevTemplate, clean)
	case classify.CategoryWebDev:
		return fmt.Sprintf(webDevTemplate, clean)
	}

	return generic(clean, promptType)
}

// generic builds the five-part generic document: context, task, requirements,
// type-specific instructions, and closing line.
func generic(input string, promptType PromptType) string {
	instruction, ok := typeInstructions[promptType]
	if !ok {
		instruction = typeInstructions[TypeGeneral]
	}

	bullets := make([]string, 0, len(baseBullets)+2)
	bullets = append(bullets, baseBullets...)
	bullets = append(bullets, typeBullets[promptType]...)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Context: Based on the request for %s content about \"%s\".\n\n", promptType, input)
	fmt.Fprintf(&sb, "Task: Generate %s content that thoroughly addresses this topic.\n\n", promptType)
	sb.WriteString("Requirements:\n")
	for _, b := range bullets {
		sb.WriteString("• " + b + "\n")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Specific instructions: %s\n\n", instruction)
	fmt.Fprintf(&sb, "Topic: \"%s\"\n\n", input)
	sb.WriteString("Please produce a high-quality, comprehensive response that fully satisfies these requirements.")

	return strings.TrimSpace(sb.String())
}
