// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts a constrained Markdown dialect into sanitized
// HTML fragments: headers 1-3, bold, italic, unordered lists, fenced code
// blocks, inline code, links, blockquotes, and paragraphs. The entire input
// is HTML-escaped before any structural pass, so user-controlled text can
// never inject tags; every tag in the output is generated by this package.
// The pass order is load-bearing and must not be rearranged.
package markdown

import (
	"regexp"
	"strings"
)

var (
	h1Re = regexp.MustCompile(`(?m)^# (.*)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.*)$`)
	h3Re = regexp.MustCompile(`(?m)^### (.*)$`)

	boldStarRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscoreRe = regexp.MustCompile(`__(.*?)__`)
	italicStarRe     = regexp.MustCompile(`\*(.*?)\*`)
	italicUnderRe    = regexp.MustCompile(`_(.*?)_`)

	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	linkRe       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	blockquoteRe = regexp.MustCompile(`(?m)^&gt; (.*)$`)
)

// ToHTML renders the Markdown source as an HTML fragment. It never fails:
// every input produces output, the empty string included. Unterminated
// lists and code fences are closed implicitly at end of input.
func ToHTML(source string) string {
	// Escape first. Everything after this point operates on HTML-safe text;
	// the order of the five replacements matters (& before the entities).
	out := escapeHTML(source)

	// The most specific header prefix runs first so # lines are not
	// consumed by the wrong level.
	out = h3Re.ReplaceAllString(out, `<h3 class="md-h3">$1</h3>`)
	out = h2Re.ReplaceAllString(out, `<h2 class="md-h2">$1</h2>`)
	out = h1Re.ReplaceAllString(out, `<h1 class="md-h1">$1</h1>`)

	// Bold before italic so ** is never half-eaten by the single-* rule.
	out = boldStarRe.ReplaceAllString(out, `<strong class="md-strong">$1</strong>`)
	out = boldUnderscoreRe.ReplaceAllString(out, `<strong class="md-strong">$1</strong>`)
	out = italicStarRe.ReplaceAllString(out, `<em class="md-em">$1</em>`)
	out = italicUnderRe.ReplaceAllString(out, `<em class="md-em">$1</em>`)

	out = groupLists(out)
	out = wrapParagraphs(out)

	// Inline rules run once, globally, after the structural passes.
	out = inlineCodeRe.ReplaceAllString(out, `<code class="md-code-inline">$1</code>`)
	out = linkRe.ReplaceAllString(out, `<a href="$2" class="md-link">$1</a>`)
	out = blockquoteRe.ReplaceAllString(out, `<blockquote class="md-quote">$1</blockquote>`)

	return out
}

// escapeHTML replaces the five HTML metacharacters. This is the sole
// injection boundary for the whole renderer.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}

// groupLists wraps runs of consecutive "- " lines in a single <ul>. The
// list closes on the first non-list line, or implicitly at end of input.
func groupLists(s string) string {
	var result []string
	inList := false

	for _, line := range strings.Split(s, "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			if !inList {
				result = append(result, `<ul class="md-list">`)
				inList = true
			}
			result = append(result, `<li class="md-list-item">`+strings.TrimPrefix(line, "- ")+`</li>`)
		case inList:
			result = append(result, "</ul>", line)
			inList = false
		default:
			result = append(result, line)
		}
	}
	if inList {
		result = append(result, "</ul>")
	}

	return strings.Join(result, "\n")
}

// wrapParagraphs walks the text line by line, toggling fenced code blocks
// and wrapping plain non-empty lines in <p>. Lines that are already a
// complete generated tag pass through untouched, as do lines inside a
// fence (they were escaped up front). Empty lines are kept verbatim so
// they keep acting as separators.
func wrapParagraphs(s string) string {
	var result []string
	inPre := false

	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "<") && strings.HasSuffix(line, ">") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(line, "```") {
			inPre = !inPre
			if inPre {
				result = append(result, `<pre class="md-pre"><code class="md-code">`)
			} else {
				result = append(result, `</code></pre>`)
			}
			continue
		}

		if inPre {
			result = append(result, line)
			continue
		}

		if strings.TrimSpace(line) != "" {
			result = append(result, `<p class="md-p">`+line+`</p>`)
		} else {
			result = append(result, line)
		}
	}
	if inPre {
		result = append(result, `</code></pre>`)
	}

	return strings.Join(result, "\n")
}
