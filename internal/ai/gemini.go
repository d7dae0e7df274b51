// README: Gemini-backed implementation of the Generator contract.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// GeminiProvider implements Generator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client. modelName may be empty,
// in which case the default flash model is used for low latency and cost.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)

	// Itineraries benefit from some variation but should stay grounded in the
	// supplied context.
	model.SetTemperature(0.7)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Generate sends a single prompt and returns the model's text.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return extractText(resp)
}

// Chat replays the supplied history into a chat session, sends the message,
// and returns the reply together with the updated history.
func (p *GeminiProvider) Chat(ctx context.Context, message string, history []Message) (string, []Message, error) {
	session := p.model.StartChat()
	session.History = toContents(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", nil, fmt.Errorf("gemini chat error: %w", err)
	}

	reply, err := extractText(resp)
	if err != nil {
		return "", nil, err
	}

	// SendMessage appends both the user turn and the model turn to the session.
	return reply, fromContents(session.History), nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
			parts = append(parts, string(txt))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini returned empty text parts")
	}
	return strings.Join(parts, "\n"), nil
}

func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		contents = append(contents, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return contents
}

func fromContents(contents []*genai.Content) []Message {
	history := make([]Message, 0, len(contents))
	for _, c := range contents {
		var b strings.Builder
		for _, part := range c.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
		history = append(history, Message{Role: c.Role, Text: b.String()})
	}
	return history
}
