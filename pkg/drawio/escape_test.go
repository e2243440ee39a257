package drawio

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"A & B < C", "A &amp; B &lt; C"},
		{"a>b", "a&gt;b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&apos;s"},
		{"<&>\"'", "&lt;&amp;&gt;&quot;&apos;"},
		{"rounded=0;fillColor=#FF0000", "rounded=0;fillColor=#FF0000"},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeDoesNotDoubleEscape(t *testing.T) {
	// Substitution happens in a single pass: the ampersand written by one
	// replacement is never re-escaped within the same call.
	if got := Escape("<"); got != "&lt;" {
		t.Errorf("Escape(%q) = %q, want %q", "<", got, "&lt;")
	}

	// Escaping twice is a caller error; the function is not idempotent.
	if got := Escape(Escape("&")); got != "&amp;amp;" {
		t.Errorf("double Escape(&) = %q, want &amp;amp;", got)
	}
}
