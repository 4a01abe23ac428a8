package llm

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// GoogleProvider adapts the Google GenAI API to the Provider contract.
type GoogleProvider struct {
	client *genai.Client
	config Config
	models map[Mode]string
}

// NewGoogleProvider creates an uninitialized Google provider.
func NewGoogleProvider(cfg Config) *GoogleProvider {
	return &GoogleProvider{
		config: cfg,
		models: map[Mode]string{
			ModeArchitect: "gemini-2.5-pro",
			ModeWorker:    "gemini-2.5-flash",
			ModeIntern:    "gemini-2.5-flash-lite",
		},
	}
}

// Name returns "google".
func (p *GoogleProvider) Name() string { return "google" }

// CredentialEnv returns the env var expected to hold the API key.
func (p *GoogleProvider) CredentialEnv() string { return geminiAPIKeyEnv }

// Init creates the GenAI client from GEMINI_API_KEY.
func (p *GoogleProvider) Init(ctx context.Context) error {
	apiKey := os.Getenv(geminiAPIKeyEnv)
	if apiKey == "" {
		return errors.Errorf("%s is not set", geminiAPIKeyEnv)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create genai client")
	}
	p.client = client
	return nil
}

// ModelFor resolves the Gemini model identifier for a mode.
func (p *GoogleProvider) ModelFor(mode Mode) string {
	if override := p.config.modelOverride(p.Name(), mode); override != "" {
		return override
	}
	return p.models[mode]
}

// Chat sends the conversation to the Google GenAI API.
func (p *GoogleProvider) Chat(ctx context.Context, messages []Message, model string, opts ChatOptions) (Response, error) {
	if p.client == nil {
		return Response{}, errors.New("google provider is not initialized")
	}

	system, conversation := SystemPrompt(messages)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(opts.MaxTokens),
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	contents := make([]*genai.Content, 0, len(conversation))
	for _, msg := range conversation {
		role := genai.RoleUser
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	var resp *genai.GenerateContentResponse
	err := executeWithRetry(ctx, p.config.Retry, p.Name(), func() error {
		var callErr error
		resp, callErr = p.client.Models.GenerateContent(ctx, model, contents, config)
		return callErr
	})
	if err != nil {
		return Response{}, errors.Wrap(err, "google chat failed")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Response{}, errors.New("google returned no candidates")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		content += part.Text
	}

	result := Response{Content: content}
	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			PromptUnits:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionUnits: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalUnits:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}
