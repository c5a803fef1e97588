package generate

import "fmt"

// One system message serves every artifact; the per-artifact instructions
// live in the user prompt.
const systemPrompt = "You are a helpful assistant that summarizes transcripts into structured notes."

func notesPrompt(cleaned string) string {
	return "Convert the following transcript into well-structured, detailed notes in HTML format. " +
		"Use <h2> for section headings, <p> for paragraphs, <table><th><tr> for tables, and <ul><li> for short lists.\n\n" +
		cleaned
}

func quizPrompt(cleaned string) string {
	return "From the following video transcript, generate a quiz with 5 to 10 multiple choice questions. " +
		"Each question should include:\n" +
		"- A clear question\n" +
		"- 4 answer options labeled A, B, C, D (do not include A., B. in the value)\n" +
		"- One correct answer (just the letter A/B/C/D, not full text)\n" +
		"- Return the output as a valid JSON array with each object having 'question', 'options', and 'answer' fields\n\n" +
		"Transcript:\n" + cleaned
}

func flashcardsPrompt(cleaned string) string {
	return "From the following transcript, generate 5 flashcards that help in learning. " +
		"Each flashcard should have a 'question' and a 'short answer'. " +
		"Return it as a JSON list like this:\n" +
		`[{"question": "What is X?", "answer": "X is..."}, ...]` + "\n\n" +
		"Transcript:\n" + cleaned
}

func questionPrompt(cleaned, userQuestion string) string {
	return fmt.Sprintf("Answer this question based on the transcript below.\n\nQuestion: %s\n\nTranscript: %s",
		userQuestion, cleaned)
}
