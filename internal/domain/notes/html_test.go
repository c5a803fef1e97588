package notes

import (
	"strings"
	"testing"
)

func TestSanitizeStripsDisallowedTagsAndAttributes(t *testing.T) {
	in := `<div onclick="x"><h2>Title</h2><script>evil()</script></div>`
	got := Sanitize(in)

	if !strings.Contains(got, "<h2>Title</h2>") {
		t.Fatalf("expected heading to survive, got %q", got)
	}
	for _, banned := range []string{"script", "div", "onclick", "evil"} {
		if strings.Contains(got, banned) {
			t.Fatalf("expected %q to be stripped, got %q", banned, got)
		}
	}
}

func TestSanitizeKeepsAllowedStructure(t *testing.T) {
	in := `<h2 class="big">Intro</h2><ul><li>one</li><li>two</li></ul><p>done <strong>now</strong></p>`
	got := Sanitize(in)

	if strings.Contains(got, "class") {
		t.Fatalf("expected attributes to be stripped, got %q", got)
	}
	for _, want := range []string{"<h2>Intro</h2>", "<li>one</li>", "<strong>now</strong>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`<div onclick="x"><h2>Title</h2><script>evil()</script></div>`,
		`<p style="color:red">a &amp; b</p>`,
		`plain text, no tags`,
		`<table><tr><th>h</th></tr></table>`,
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Fatalf("sanitize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestExtractBody(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		in := `<!DOCTYPE html><html><head><title>x</title></head><body><h2>A</h2><p>b</p></body></html>`
		got := ExtractBody(in)
		if got != "<h2>A</h2><p>b</p>" {
			t.Fatalf("unexpected body content: %q", got)
		}
	})

	t.Run("fragment passes through", func(t *testing.T) {
		got := ExtractBody("<h2>A</h2><p>b</p>")
		if !strings.Contains(got, "<h2>A</h2>") || !strings.Contains(got, "<p>b</p>") {
			t.Fatalf("fragment content lost: %q", got)
		}
	})
}

func TestText(t *testing.T) {
	got := Text("<h2>Photosynthesis</h2><p>Plants   convert <strong>light</strong></p>")
	if got != "Photosynthesis Plants convert light" {
		t.Fatalf("unexpected text: %q", got)
	}
}
