package llm

import (
	"context"
	"os"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

const openaiAPIKeyEnv = "OPENAI_API_KEY"

// OpenAIProvider adapts the OpenAI chat completions API to the Provider
// contract.
type OpenAIProvider struct {
	client *openai.Client
	config Config
	models map[Mode]string
}

// NewOpenAIProvider creates an uninitialized OpenAI provider.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	return &OpenAIProvider{
		config: cfg,
		models: map[Mode]string{
			ModeArchitect: "o3",
			ModeWorker:    "gpt-4.1",
			ModeIntern:    "gpt-4.1-mini",
		},
	}
}

// Name returns "openai".
func (p *OpenAIProvider) Name() string { return "openai" }

// CredentialEnv returns the env var expected to hold the API key.
func (p *OpenAIProvider) CredentialEnv() string { return openaiAPIKeyEnv }

// Init creates the API client from OPENAI_API_KEY.
func (p *OpenAIProvider) Init(_ context.Context) error {
	apiKey := os.Getenv(openaiAPIKeyEnv)
	if apiKey == "" {
		return errors.Errorf("%s is not set", openaiAPIKeyEnv)
	}
	p.client = openai.NewClient(apiKey)
	return nil
}

// ModelFor resolves the OpenAI model identifier for a mode.
func (p *OpenAIProvider) ModelFor(mode Mode) string {
	if override := p.config.modelOverride(p.Name(), mode); override != "" {
		return override
	}
	return p.models[mode]
}

// Chat sends the conversation to the OpenAI chat completions API.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []Message, model string, opts ChatOptions) (Response, error) {
	if p.client == nil {
		return Response{}, errors.New("openai provider is not initialized")
	}

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    chatMessages,
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
	}

	var resp openai.ChatCompletionResponse
	err := executeWithRetry(ctx, p.config.Retry, p.Name(), func() error {
		var callErr error
		resp, callErr = p.client.CreateChatCompletion(ctx, req)
		return callErr
	})
	if err != nil {
		return Response{}, errors.Wrap(err, "openai chat failed")
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("openai returned no choices")
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptUnits:     resp.Usage.PromptTokens,
			CompletionUnits: resp.Usage.CompletionTokens,
			TotalUnits:      resp.Usage.TotalTokens,
		},
	}, nil
}
