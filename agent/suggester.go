// Package agent holds the Gemini-backed helpers of the daybook CLI.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/daybook"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Suggester is a chat with a classifier that maps transaction titles onto
// the category vocabulary.
type Suggester struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewSuggester creates the suggester with its classification instruction.
func NewSuggester() *Suggester {
	return &Suggester{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You classify personal finance entries by their title.
			Answer with exactly one word out of: %s.
			No explanation, no punctuation.
		`, strings.Join(daybook.Categories, ", "))}}},
		},
	}
}

func (s *Suggester) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, s.ModelName, s.Config, nil)
	if err != nil {
		return err
	}
	s.chat = chat
	return nil
}

// Suggest returns the category for a title. The model's answer is validated
// against the vocabulary; anything else falls back to the default category.
func (s *Suggester) Suggest(ctx context.Context, title string) (string, error) {
	resp, err := s.chat.Send(ctx, &genai.Part{Text: title})
	if err != nil {
		return "", fmt.Errorf("suggestion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no suggestion for %q", title)
	}
	return ParseSuggestion(resp.Candidates[0].Content.Parts[0].Text), nil
}

// ParseSuggestion maps a raw model answer onto the category vocabulary.
func ParseSuggestion(answer string) string {
	answer = strings.TrimSpace(answer)
	answer = strings.Trim(answer, ".\"'`")
	for _, c := range daybook.Categories {
		if strings.EqualFold(answer, c) {
			return c
		}
	}
	return daybook.DefaultCategory
}
