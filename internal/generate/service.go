// Package generate turns cleaned transcripts into study artifacts through a
// chat-completion endpoint. Every generator is fault-isolating: a failed
// remote call or an unparseable reply yields that artifact's fallback value,
// never an error to the caller.
package generate

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mindreel/mindreel/internal/domain/notes"
	"github.com/mindreel/mindreel/internal/domain/quiz"
	"github.com/mindreel/mindreel/internal/domain/transcript"
	"github.com/mindreel/mindreel/internal/ports"
	"github.com/mindreel/mindreel/internal/types"
)

const (
	// NotesTooShort is returned when the transcript fails the token gate.
	NotesTooShort = "<p><strong>Transcript too short to generate detailed notes.</strong></p>"
	// NotesFallback is returned when notes generation fails for any reason.
	NotesFallback = "<p><strong>Structured notes could not be generated.</strong></p>"

	AnswerTooShort    = "Transcript is too short to answer questions."
	AnswerUnavailable = "Sorry, I couldn't answer that question."
)

type Deps struct {
	Completer ports.Completer
	Log       *zap.SugaredLogger
}

type Service struct{ d Deps }

func New(d Deps) Service {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	return Service{d: d}
}

// GenerateNotes converts a transcript into a sanitized HTML fragment.
func (s Service) GenerateNotes(ctx context.Context, rawTranscript string) string {
	cleaned := transcript.Normalize(rawTranscript)
	if !transcript.Sufficient(cleaned) {
		return NotesTooShort
	}

	reply, err := s.d.Completer.Complete(ctx, systemPrompt, notesPrompt(cleaned))
	if err != nil {
		s.d.Log.Errorw("notes generation failed", "error", err)
		return NotesFallback
	}
	return notes.Sanitize(notes.ExtractBody(reply))
}

// GenerateQuiz converts a transcript into repaired multiple-choice questions.
// Malformed replies yield an empty slice.
func (s Service) GenerateQuiz(ctx context.Context, rawTranscript string) []types.QuizQuestion {
	cleaned := transcript.Normalize(rawTranscript)
	if !transcript.Sufficient(cleaned) {
		return nil
	}

	reply, err := s.d.Completer.Complete(ctx, systemPrompt, quizPrompt(cleaned))
	if err != nil {
		s.d.Log.Errorw("quiz generation failed", "error", err)
		return nil
	}

	payload, err := extractJSONArray(reply)
	if err != nil {
		s.d.Log.Warnw("quiz reply had no JSON payload", "error", err)
		return nil
	}
	var questions []types.QuizQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		s.d.Log.Warnw("quiz reply did not parse", "error", err)
		return nil
	}
	return quiz.Repair(questions)
}

// GenerateFlashcards converts a transcript into question/answer cards. Unlike
// quiz output, cards get no field-level repair.
func (s Service) GenerateFlashcards(ctx context.Context, rawTranscript string) []types.Flashcard {
	cleaned := transcript.Normalize(rawTranscript)
	if !transcript.Sufficient(cleaned) {
		return nil
	}

	reply, err := s.d.Completer.Complete(ctx, systemPrompt, flashcardsPrompt(cleaned))
	if err != nil {
		s.d.Log.Errorw("flashcard generation failed", "error", err)
		return nil
	}

	payload, err := extractJSONArray(reply)
	if err != nil {
		s.d.Log.Warnw("flashcard reply had no JSON payload", "error", err)
		return nil
	}
	var cards []types.Flashcard
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		s.d.Log.Warnw("flashcard reply did not parse", "error", err)
		return nil
	}
	return cards
}

// AnswerQuestion answers a free-form question grounded in the transcript and
// returns the reply verbatim.
func (s Service) AnswerQuestion(ctx context.Context, rawTranscript, userQuestion string) string {
	cleaned := transcript.Normalize(rawTranscript)
	if !transcript.Sufficient(cleaned) {
		return AnswerTooShort
	}

	reply, err := s.d.Completer.Complete(ctx, systemPrompt, questionPrompt(cleaned, userQuestion))
	if err != nil {
		s.d.Log.Errorw("question answering failed", "error", err)
		return AnswerUnavailable
	}
	return reply
}
