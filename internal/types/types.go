package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a single answer choice of a quiz question.
type Option struct {
	Key  string
	Text string
}

// OptionList is an ordered set of answer choices. On the wire it is a JSON
// object keyed by letter ("A", "B", ...), but models sometimes reply with a
// bare array of option texts instead; both forms decode, and letter keys are
// assigned in array order when needed. Key order is preserved in both
// directions, which plain maps cannot do.
type OptionList []Option

func (l OptionList) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, o := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(o.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.Text)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (l *OptionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return fmt.Errorf("options: expected array or object, got %v", tok)
	}

	out := OptionList{}
	switch delim {
	case '[':
		for dec.More() {
			var text string
			if err := dec.Decode(&text); err != nil {
				return fmt.Errorf("options: %w", err)
			}
			out = append(out, Option{Key: letterKey(len(out)), Text: text})
		}
	case '{':
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return fmt.Errorf("options: %w", err)
			}
			key, ok := kt.(string)
			if !ok {
				return fmt.Errorf("options: unexpected key %v", kt)
			}
			var text string
			if err := dec.Decode(&text); err != nil {
				return fmt.Errorf("options: %w", err)
			}
			out = append(out, Option{Key: key, Text: text})
		}
	default:
		return fmt.Errorf("options: expected array or object, got %q", delim)
	}

	*l = out
	return nil
}

// Get returns the text of the option with the given key.
func (l OptionList) Get(key string) (string, bool) {
	for _, o := range l {
		if o.Key == key {
			return o.Text, true
		}
	}
	return "", false
}

func letterKey(i int) string {
	return string(rune('A' + i))
}

// QuizQuestion is one multiple-choice question. After repair (see domain/quiz)
// Answer is always a key present in Options.
type QuizQuestion struct {
	Question string     `json:"question"`
	Options  OptionList `json:"options"`
	Answer   string     `json:"answer"`
}

// Flashcard is a question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
