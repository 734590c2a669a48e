package summarizer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// generateContentAction is the capability a model must declare to be listed.
const generateContentAction = "generateContent"

// ErrEmptyResponse is returned when Gemini answers without any text.
var ErrEmptyResponse = errors.New("empty response from Gemini")

// Generate sends prompt to Gemini in a single call and returns the text exactly as received.
func (s *implSummarizer) Generate(ctx context.Context, prompt, model string) (string, error) {
	s.logger.Info(ctx, "Generating summary with %s (%d prompt bytes)", model, len(prompt))

	result, err := s.models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.temperature),
		MaxOutputTokens: s.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", ErrEmptyResponse
}

// ListModels returns the models that support content generation, in registry order.
func (s *implSummarizer) ListModels(ctx context.Context) ([]ModelDescriptor, error) {
	var out []ModelDescriptor
	for m, err := range s.models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if m == nil || !slices.Contains(m.SupportedActions, generateContentAction) {
			continue
		}
		out = append(out, ModelDescriptor{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			SupportedActions: m.SupportedActions,
			OutputTokenLimit: m.OutputTokenLimit,
		})
	}
	s.logger.Debug(ctx, "Found %d models supporting %s", len(out), generateContentAction)
	return out, nil
}

// ChooseDefault returns preferred when the list has it, otherwise the first entry.
// An empty list yields "". Names are compared with the "models/" prefix applied.
func ChooseDefault(models []ModelDescriptor, preferred string) string {
	if len(models) == 0 {
		return ""
	}
	want := QualifiedName(preferred)
	for _, m := range models {
		if m.Name == want {
			return m.Name
		}
	}
	return models[0].Name
}

// Contains reports whether name is one of models.
func Contains(models []ModelDescriptor, name string) bool {
	want := QualifiedName(name)
	for _, m := range models {
		if m.Name == want {
			return true
		}
	}
	return false
}

// QualifiedName adds the "models/" prefix the registry uses.
func QualifiedName(name string) string {
	if name == "" || strings.HasPrefix(name, "models/") {
		return name
	}
	return "models/" + name
}
