package quiz

import (
	"encoding/json"
	"testing"

	"github.com/mindreel/mindreel/internal/types"
)

func parseQuestions(t *testing.T, raw string) []types.QuizQuestion {
	t.Helper()
	var qs []types.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		t.Fatalf("parse questions: %v", err)
	}
	return qs
}

func TestRepairListOptionsGetLetterKeys(t *testing.T) {
	qs := parseQuestions(t, `[
		{"question":"Capital of France?","options":["Paris","London","Rome","Berlin"],"answer":"Paris"}
	]`)

	out := Repair(qs)
	if len(out) != 1 {
		t.Fatalf("expected 1 question, got %d", len(out))
	}

	q := out[0]
	wantKeys := []string{"A", "B", "C", "D"}
	wantTexts := []string{"Paris", "London", "Rome", "Berlin"}
	for i, o := range q.Options {
		if o.Key != wantKeys[i] || o.Text != wantTexts[i] {
			t.Fatalf("option %d = %+v, want {%s %s}", i, o, wantKeys[i], wantTexts[i])
		}
	}
	if q.Answer != "A" {
		t.Fatalf("expected answer resolved to A, got %q", q.Answer)
	}
}

func TestRepairAnswerResolution(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"already a key", "B", "B"},
		{"matches text", "London", "B"},
		{"case mismatch", "paris", "A"},
		{"no match falls back to first key", "Madrid", "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := parseQuestions(t, `[
				{"question":"q","options":{"A":"Paris","B":"London"},"answer":"`+tt.answer+`"}
			]`)
			out := Repair(qs)
			if out[0].Answer != tt.want {
				t.Fatalf("answer %q resolved to %q, want %q", tt.answer, out[0].Answer, tt.want)
			}
		})
	}
}

func TestRepairStripsEchoedKeyPrefix(t *testing.T) {
	qs := parseQuestions(t, `[
		{"question":"q","options":{"A":"A. Paris","B":" B.  London"},"answer":"A"}
	]`)

	out := Repair(qs)
	if got, _ := out[0].Options.Get("A"); got != "Paris" {
		t.Fatalf("expected prefix stripped from A, got %q", got)
	}
	if got, _ := out[0].Options.Get("B"); got != "London" {
		t.Fatalf("expected prefix stripped from B, got %q", got)
	}
}

func TestRepairDropsQuestionsWithoutOptions(t *testing.T) {
	qs := parseQuestions(t, `[
		{"question":"empty","options":[],"answer":"A"},
		{"question":"ok","options":["yes","no"],"answer":"yes"}
	]`)

	out := Repair(qs)
	if len(out) != 1 || out[0].Question != "ok" {
		t.Fatalf("expected only the valid question to survive, got %+v", out)
	}
}

func TestRepairAnswerAlwaysPresentInOptions(t *testing.T) {
	qs := parseQuestions(t, `[
		{"question":"q1","options":["a","b","c"],"answer":"nonsense"},
		{"question":"q2","options":{"X":"left","Y":"right"},"answer":"right"}
	]`)

	for _, q := range Repair(qs) {
		if _, ok := q.Options.Get(q.Answer); !ok {
			t.Fatalf("answer %q not a key of options %+v", q.Answer, q.Options)
		}
	}
}
