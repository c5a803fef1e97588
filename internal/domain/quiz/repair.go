// Package quiz repairs quiz questions parsed from unreliable model output.
// The transformations are pure so every edge case is testable without a
// network in sight.
package quiz

import (
	"strings"

	"github.com/mindreel/mindreel/internal/types"
)

// Repair normalizes parsed questions: option values lose any echoed "A. "
// style prefix, and Answer is rewritten to a key that is guaranteed present
// in Options. Questions without options are dropped.
//
// The answer resolution is best-effort: when the model's answer matches no
// key and no option text, the first key wins. That keeps the quiz renderable;
// it does not promise the original intent survived.
func Repair(questions []types.QuizQuestion) []types.QuizQuestion {
	out := make([]types.QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if len(q.Options) == 0 {
			continue
		}
		for i := range q.Options {
			q.Options[i].Text = stripKeyPrefix(q.Options[i].Key, q.Options[i].Text)
		}
		q.Answer = resolveAnswer(q.Answer, q.Options)
		out = append(out, q)
	}
	return out
}

// stripKeyPrefix removes a leading "<key>. " the model may have echoed into
// the option value ("A. Paris" -> "Paris").
func stripKeyPrefix(key, value string) string {
	v := strings.TrimSpace(value)
	if rest, ok := strings.CutPrefix(v, key+"."); ok {
		return strings.TrimSpace(rest)
	}
	return v
}

func resolveAnswer(answer string, options types.OptionList) string {
	if _, ok := options.Get(answer); ok {
		return answer
	}
	want := strings.ToLower(strings.TrimSpace(answer))
	for _, o := range options {
		if strings.ToLower(strings.TrimSpace(o.Text)) == want {
			return o.Key
		}
	}
	return options[0].Key
}
