package markdown

import (
	"strings"
	"testing"
)

// TestToHTML covers the full dialect with exact expected fragments.
func TestToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Escaping ---
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "metacharacters escaped",
			input: `a & b < c > d " e ' f`,
			want:  `<p class="md-p">a &amp; b &lt; c &gt; d &quot; e &#039; f</p>`,
		},

		// --- Headers ---
		{
			name:  "h1",
			input: "# Title",
			want:  `<h1 class="md-h1">Title</h1>`,
		},
		{
			name:  "h2",
			input: "## Section",
			want:  `<h2 class="md-h2">Section</h2>`,
		},
		{
			name:  "h3",
			input: "### Sub",
			want:  `<h3 class="md-h3">Sub</h3>`,
		},
		{
			name:  "hash mid-line is not a header",
			input: "not # a header",
			want:  `<p class="md-p">not # a header</p>`,
		},

		// --- Emphasis ---
		{
			name:  "bold double star not half-matched by italic",
			input: "say **loud** now",
			want:  `<p class="md-p">say <strong class="md-strong">loud</strong> now</p>`,
		},
		{
			name:  "bold double underscore",
			input: "say __loud__ now",
			want:  `<p class="md-p">say <strong class="md-strong">loud</strong> now</p>`,
		},
		{
			name:  "italic star",
			input: "say *soft* now",
			want:  `<p class="md-p">say <em class="md-em">soft</em> now</p>`,
		},
		{
			name:  "italic underscore",
			input: "say _soft_ now",
			want:  `<p class="md-p">say <em class="md-em">soft</em> now</p>`,
		},
		{
			// A line that becomes tag-to-tag after emphasis passes through
			// without a paragraph wrapper.
			name:  "all-emphasis line skips paragraph wrap",
			input: "**bold** and *italic*",
			want:  `<strong class="md-strong">bold</strong> and <em class="md-em">italic</em>`,
		},

		// --- Lists ---
		{
			name:  "list grouped and closed before trailing paragraph",
			input: "- a\n- b\nc",
			want: `<ul class="md-list">` + "\n" +
				`<li class="md-list-item">a</li>` + "\n" +
				`<li class="md-list-item">b</li>` + "\n" +
				`</ul>` + "\n" +
				`<p class="md-p">c</p>`,
		},
		{
			name:  "unterminated list closed at end of input",
			input: "- only",
			want: `<ul class="md-list">` + "\n" +
				`<li class="md-list-item">only</li>` + "\n" +
				`</ul>`,
		},
		{
			name:  "two lists separated by text",
			input: "- a\nx\n- b",
			want: `<ul class="md-list">` + "\n" +
				`<li class="md-list-item">a</li>` + "\n" +
				`</ul>` + "\n" +
				`<p class="md-p">x</p>` + "\n" +
				`<ul class="md-list">` + "\n" +
				`<li class="md-list-item">b</li>` + "\n" +
				`</ul>`,
		},

		// --- Fenced code ---
		{
			name:  "fenced block passes content through escaped",
			input: "```\ncode <x>\n```\nafter",
			want: `<pre class="md-pre"><code class="md-code">` + "\n" +
				`code &lt;x&gt;` + "\n" +
				`</code></pre>` + "\n" +
				`<p class="md-p">after</p>`,
		},
		{
			name:  "language tag on fence line is dropped",
			input: "```go\nfmt.Println(1)\n```",
			want: `<pre class="md-pre"><code class="md-code">` + "\n" +
				`fmt.Println(1)` + "\n" +
				`</code></pre>`,
		},
		{
			name:  "unterminated fence closed at end of input",
			input: "```\ndangling",
			want: `<pre class="md-pre"><code class="md-code">` + "\n" +
				`dangling` + "\n" +
				`</code></pre>`,
		},

		// --- Inline code and links ---
		{
			name:  "inline code",
			input: "use `go vet` here",
			want:  `<p class="md-p">use <code class="md-code-inline">go vet</code> here</p>`,
		},
		{
			name:  "link",
			input: "see [docs](https://example.com) please",
			want:  `<p class="md-p">see <a href="https://example.com" class="md-link">docs</a> please</p>`,
		},

		// --- Blockquotes ---
		{
			// Paragraph wrapping runs before the blockquote rule, so a
			// quoted line in normal flow stays a paragraph.
			name:  "blockquote marker in plain flow stays a paragraph",
			input: "> wisdom",
			want:  `<p class="md-p">&gt; wisdom</p>`,
		},
		{
			// Inside a fence the escaped marker survives at line start,
			// which is where the blockquote rule actually fires.
			name:  "blockquote inside fence",
			input: "```\n> wisdom\n```",
			want: `<pre class="md-pre"><code class="md-code">` + "\n" +
				`<blockquote class="md-quote">wisdom</blockquote>` + "\n" +
				`</code></pre>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTML(tt.input); got != tt.want {
				t.Errorf("ToHTML(%q) =\n%s\nwant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

// TestToHTMLScriptSafety checks that script tags can never survive
// rendering in literal form, wherever they appear.
func TestToHTMLScriptSafety(t *testing.T) {
	inputs := []string{
		`<script>alert("x")</script>`,
		`hello <script src="evil.js"></script> world`,
		"# <script>1</script>",
		"- <script>1</script>",
		"```\n<script>1</script>\n```",
		`[click](javascript:x)<script>1</script>`,
	}

	for _, input := range inputs {
		got := ToHTML(input)
		if strings.Contains(got, "<script") {
			t.Errorf("ToHTML(%q) contains a literal <script tag:\n%s", input, got)
		}
		if !strings.Contains(got, "&lt;script&gt;") && !strings.Contains(got, "&lt;script ") {
			t.Errorf("ToHTML(%q) lost the escaped script text:\n%s", input, got)
		}
	}
}

// TestToHTMLPlainText verifies spec'd paragraph behaviour: one <p> per
// non-empty line, in order, with empty lines preserved verbatim.
func TestToHTMLPlainText(t *testing.T) {
	got := ToHTML("one\n\ntwo\nthree\n\n")
	want := `<p class="md-p">one</p>` + "\n\n" +
		`<p class="md-p">two</p>` + "\n" +
		`<p class="md-p">three</p>` + "\n\n"

	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}
