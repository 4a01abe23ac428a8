// Package llm provides a provider-agnostic chat interface over multiple
// hosted model backends, plus the harness that dispatches requests to a
// primary provider with automatic fallback.
package llm

// Role identifies the author of a chat message.
type Role string

// Message roles understood by every provider adapter.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry in a chat exchange.
type Message struct {
	Role    Role
	Content string
}

// Usage reports token consumption for a single chat call.
type Usage struct {
	PromptUnits     int
	CompletionUnits int
	TotalUnits      int
}

// Response is the result of a chat call.
type Response struct {
	Content string
	Usage   Usage
}

// ChatOptions carries per-call sampling parameters.
type ChatOptions struct {
	Temperature float64
	MaxTokens   int
}

// SystemPrompt extracts the concatenated system messages and returns the
// remaining conversation. Provider adapters that take the system prompt out
// of band (Anthropic, Google) use this to split the message sequence.
func SystemPrompt(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += msg.Content
			continue
		}
		rest = append(rest, msg)
	}
	return system, rest
}
