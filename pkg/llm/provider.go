package llm

import "context"

// Provider is the uniform contract every model backend adapter implements.
// A Provider must not be invoked before Init has returned nil; the Harness
// enforces this by dropping providers whose Init fails.
type Provider interface {
	// Name returns the unique provider name.
	Name() string

	// CredentialEnv returns the environment variable holding the provider's
	// API credential. Unset means the provider is skipped at initialization.
	CredentialEnv() string

	// Init creates the backend client from environment configuration.
	Init(ctx context.Context) error

	// ModelFor resolves the provider-specific model identifier for a mode.
	ModelFor(mode Mode) string

	// Chat sends the conversation to the given model and returns the reply.
	Chat(ctx context.Context, messages []Message, model string, opts ChatOptions) (Response, error)
}

// DefaultProviders returns the built-in provider set in registration order.
// The order determines primary/fallback designation in the Harness.
func DefaultProviders(cfg Config) []Provider {
	return []Provider{
		NewAnthropicProvider(cfg),
		NewOpenAIProvider(cfg),
		NewGoogleProvider(cfg),
	}
}
