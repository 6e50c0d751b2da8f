package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-chat-backend/internal/llm"
)

const (
	defaultModel = "gemini-2.0-flash"

	suggestMaxTokens = 100
	answerMaxTokens  = 300
)

const systemPrompt = `You are a resume analysis assistant. Always return answers in clean plain text without Markdown formatting. Do NOT use ##, ###, **, or any Markdown syntax. Use "-" for bullet points and simple line breaks for separation. Answer based only on the provided resume content.`

// Client implements llm.Completer using the Google GenAI SDK against the
// Gemini API backend.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a new Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: client, model: model}, nil
}

// Suggest asks the model what the user might look for instead.
func (c *Client) Suggest(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(`The user asked: %q but no relevant content was found in the resume. Suggest what specific skills, technologies, or sections they might look for instead. Keep it very brief (1-2 sentences).`, question)
	return c.generate(ctx, prompt, suggestMaxTokens)
}

// Answer asks the model to answer the question from the resume context only.
func (c *Client) Answer(ctx context.Context, contextText, question string) (string, error) {
	prompt := fmt.Sprintf("RESUME CONTEXT:\n%s\n\nQUESTION: %s\n\nAnswer based only on the resume content above.", contextText, question)
	return c.generate(ctx, prompt, answerMaxTokens)
}

func (c *Client) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	temperature := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(maxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
	}

	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", errors.New("gemini response empty content")
	}
	return content, nil
}

var _ llm.Completer = (*Client)(nil)
