package together

import (
	"strings"
	"testing"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		hosts   []string
		wantErr string
	}{
		{"empty defaults", "", nil, ""},
		{"default host", "https://api.together.xyz", nil, ""},
		{"alt default host", "https://api.together.ai/", nil, ""},
		{"http rejected", "http://api.together.xyz", nil, "https is required"},
		{"unknown host", "https://evil.example.com", nil, "not in TOGETHER_ALLOWED_HOSTS"},
		{"custom allow-list", "https://proxy.internal", []string{"proxy.internal"}, ""},
		{"custom list excludes default", "https://api.together.xyz", []string{"proxy.internal"}, "not in TOGETHER_ALLOWED_HOSTS"},
		{"userinfo rejected", "https://user:pw@api.together.xyz", nil, "userinfo"},
		{"query rejected", "https://api.together.xyz?x=1", nil, "query and fragment"},
		{"relative rejected", "/v1", nil, "absolute URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.baseURL, tt.hosts)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"":                              defaultBaseURL,
		"  https://api.together.xyz/ ":  "https://api.together.xyz",
		"https://api.together.xyz/////": "https://api.together.xyz",
	}
	for in, want := range tests {
		if got := normalizeBaseURL(in); got != want {
			t.Fatalf("normalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
