package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Adefebrian/vocab/pkg/models"
)

// Config holds the OpenAI connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client generates example sentences and level suggestions for verbs.
type Client struct {
	api   *openai.Client
	model string
}

// New creates a client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is not set")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(apiConfig),
		model: cfg.Model,
	}, nil
}

// complete sends one user prompt and returns the trimmed answer.
func (c *Client) complete(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   100,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateExample generates a short example sentence using the verb's past form.
func (c *Client) GenerateExample(ctx context.Context, verb *models.VerbEntry) (string, error) {
	prompt := fmt.Sprintf(
		"Write one short, practical English sentence in the past tense that naturally uses the verb '%s' (past form '%s'). Return only the sentence.",
		verb.Base, verb.Past,
	)
	return c.complete(ctx,
		"You are an assistant for English learners. You write short, natural example sentences.",
		prompt, 0.7)
}

// GenerateExampleWithFallback generates an example, falling back to a plain
// template sentence when the API call fails.
func (c *Client) GenerateExampleWithFallback(ctx context.Context, verb *models.VerbEntry) string {
	example, err := c.GenerateExample(ctx, verb)
	if err != nil {
		log.Printf("Error generating example for '%s': %v", verb.Base, err)
		if verb.Example != "" {
			return verb.Example
		}
		return fmt.Sprintf("Yesterday I %s all day.", verb.Past)
	}
	return example
}

// SuggestLevel asks the model to rate the verb's difficulty. The answer is
// parsed strictly; anything but the three known level names is an error, so
// callers can fall back to the heuristic classifier.
func (c *Client) SuggestLevel(ctx context.Context, base string) (models.Level, error) {
	prompt := fmt.Sprintf(
		"Rate the difficulty of the English verb '%s' for an Indonesian learner. Answer with exactly one word: beginner, intermediate or advanced.",
		base,
	)
	answer, err := c.complete(ctx,
		"You are an assistant for English learners. You rate vocabulary difficulty.",
		prompt, 0.3)
	if err != nil {
		return "", err
	}

	answer = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(answer), "."))
	lvl, err := models.ParseLevel(answer)
	if err != nil {
		return "", fmt.Errorf("unexpected level answer %q", answer)
	}
	return lvl, nil
}

// SuggestCategory asks the model for a one-word topical category.
func (c *Client) SuggestCategory(ctx context.Context, base string) (string, error) {
	prompt := fmt.Sprintf(
		"Give a one-word lowercase topical category for the English verb '%s' (for example: movement, communication, cooking). Return only the word.",
		base,
	)
	answer, err := c.complete(ctx,
		"You are an assistant for English learners. You group vocabulary by topic.",
		prompt, 0.3)
	if err != nil {
		return "", err
	}

	category := strings.ToLower(strings.Trim(answer, " .\"'"))
	if category == "" || strings.ContainsAny(category, " \n") {
		return "", fmt.Errorf("unexpected category answer %q", answer)
	}
	return category, nil
}
