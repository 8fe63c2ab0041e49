package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/campdir/internal/app/system/htmlsanitize"
)

func TestSanitize_StripsScripts(t *testing.T) {
	in := `Great bootcamp<script>alert("xss")</script> in Boston`
	out := htmlsanitize.Sanitize(in)

	if strings.Contains(out, "<script") || strings.Contains(out, "alert") {
		t.Errorf("script survived: %q", out)
	}
	if !strings.Contains(out, "Great bootcamp") || !strings.Contains(out, "in Boston") {
		t.Errorf("text content lost: %q", out)
	}
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	out := htmlsanitize.Sanitize(`<b onclick="steal()">bold</b>`)
	if strings.Contains(out, "onclick") {
		t.Errorf("event handler survived: %q", out)
	}
	if !strings.Contains(out, "<b>bold</b>") {
		t.Errorf("allowed formatting lost: %q", out)
	}
}

func TestSanitize_AllowsEditorMarkup(t *testing.T) {
	cases := []string{
		`<u>underline</u>`,
		`<mark>highlight</mark>`,
		`<table><tr><td colspan="2">cell</td></tr></table>`,
	}
	for _, in := range cases {
		if out := htmlsanitize.Sanitize(in); out != in {
			t.Errorf("Sanitize(%q) = %q, want unchanged", in, out)
		}
	}
}

func TestSanitize_StripsJavascriptURLs(t *testing.T) {
	out := htmlsanitize.Sanitize(`<a href="javascript:alert(1)">click</a>`)
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript URL survived: %q", out)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if out := htmlsanitize.Sanitize(""); out != "" {
		t.Errorf("got %q, want empty", out)
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("just words, no markup") {
		t.Error("plain text misreported")
	}
	if htmlsanitize.IsPlainText("has <b>tags</b>") {
		t.Error("markup misreported as plain")
	}
}
