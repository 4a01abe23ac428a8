package llm

import (
	"context"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

const anthropicAPIKeyEnv = "ANTHROPIC_API_KEY"

// AnthropicProvider adapts the Anthropic Messages API to the Provider contract.
type AnthropicProvider struct {
	client      anthropic.Client
	config      Config
	models      map[Mode]string
	initialized bool
}

// NewAnthropicProvider creates an uninitialized Anthropic provider.
func NewAnthropicProvider(cfg Config) *AnthropicProvider {
	return &AnthropicProvider{
		config: cfg,
		models: map[Mode]string{
			ModeArchitect: "claude-opus-4-1",
			ModeWorker:    "claude-sonnet-4-5",
			ModeIntern:    "claude-3-5-haiku-latest",
		},
	}
}

// Name returns "anthropic".
func (p *AnthropicProvider) Name() string { return "anthropic" }

// CredentialEnv returns the env var expected to hold the API key.
func (p *AnthropicProvider) CredentialEnv() string { return anthropicAPIKeyEnv }

// Init creates the API client from ANTHROPIC_API_KEY.
func (p *AnthropicProvider) Init(_ context.Context) error {
	apiKey := os.Getenv(anthropicAPIKeyEnv)
	if apiKey == "" {
		return errors.Errorf("%s is not set", anthropicAPIKeyEnv)
	}
	p.client = anthropic.NewClient(option.WithAPIKey(apiKey))
	p.initialized = true
	return nil
}

// ModelFor resolves the Anthropic model identifier for a mode.
func (p *AnthropicProvider) ModelFor(mode Mode) string {
	if override := p.config.modelOverride(p.Name(), mode); override != "" {
		return override
	}
	return p.models[mode]
}

// Chat sends the conversation to the Anthropic Messages API.
func (p *AnthropicProvider) Chat(ctx context.Context, messages []Message, model string, opts ChatOptions) (Response, error) {
	if !p.initialized {
		return Response{}, errors.New("anthropic provider is not initialized")
	}

	system, conversation := SystemPrompt(messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(opts.MaxTokens),
		Temperature: anthropic.Float(opts.Temperature),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	for _, msg := range conversation {
		switch msg.Role {
		case RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	var resp *anthropic.Message
	err := executeWithRetry(ctx, p.config.Retry, p.Name(), func() error {
		var callErr error
		resp, callErr = p.client.Messages.New(ctx, params)
		return callErr
	})
	if err != nil {
		return Response{}, errors.Wrap(err, "anthropic chat failed")
	}

	var content string
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += text.Text
		}
	}

	return Response{
		Content: content,
		Usage: Usage{
			PromptUnits:     int(resp.Usage.InputTokens),
			CompletionUnits: int(resp.Usage.OutputTokens),
			TotalUnits:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}
