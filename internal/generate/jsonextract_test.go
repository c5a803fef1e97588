package generate

import (
	"strings"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantSub string
		wantErr bool
	}{
		{"raw", `[{"question":"q","answer":"a"}]`, `"question"`, false},
		{"fenced", "```json\n[{\"question\":\"q\"}]\n```", `"question"`, false},
		{"preface", "Here is your quiz! [{\"question\":\"q\"}] enjoy", `"question"`, false},
		{"empty", "   ", "", true},
		{"nojson", "I cannot help with that.", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONArray(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantSub != "" && !strings.Contains(got, tt.wantSub) {
				t.Fatalf("expected %q to contain %q", got, tt.wantSub)
			}
		})
	}
}
