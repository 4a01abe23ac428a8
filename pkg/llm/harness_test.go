package llm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scriptable Provider for harness tests.
type fakeProvider struct {
	name     string
	initErr  error
	chatErr  error
	response Response
	models   map[Mode]string

	initCalls int
	chatCalls int
	lastModel string
}

func (f *fakeProvider) Name() string          { return f.name }
func (f *fakeProvider) CredentialEnv() string { return "FAKE_API_KEY" }

func (f *fakeProvider) Init(context.Context) error {
	f.initCalls++
	return f.initErr
}

func (f *fakeProvider) ModelFor(mode Mode) string {
	if m, ok := f.models[mode]; ok {
		return m
	}
	return f.name + "-default"
}

func (f *fakeProvider) Chat(_ context.Context, _ []Message, model string, _ ChatOptions) (Response, error) {
	f.chatCalls++
	f.lastModel = model
	if f.chatErr != nil {
		return Response{}, f.chatErr
	}
	return f.response, nil
}

func TestHarnessInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("first success becomes primary, rest become fallbacks in order", func(t *testing.T) {
		a := &fakeProvider{name: "a", initErr: errors.New("bad credential")}
		b := &fakeProvider{name: "b"}
		c := &fakeProvider{name: "c"}

		h := NewHarness(a, b, c)
		require.NoError(t, h.Initialize(ctx))

		assert.Equal(t, "b", h.Primary())
		assert.Equal(t, []string{"b", "c"}, h.Available())
	})

	t.Run("single provider failure is non-fatal", func(t *testing.T) {
		a := &fakeProvider{name: "a", initErr: errors.New("unset")}
		b := &fakeProvider{name: "b"}

		h := NewHarness(a, b)
		require.NoError(t, h.Initialize(ctx))
		assert.Equal(t, []string{"b"}, h.Available())
	})

	t.Run("all providers failing is fatal", func(t *testing.T) {
		a := &fakeProvider{name: "a", initErr: errors.New("unset")}
		b := &fakeProvider{name: "b", initErr: errors.New("unset")}

		h := NewHarness(a, b)
		err := h.Initialize(ctx)
		assert.ErrorIs(t, err, ErrAllProvidersFailed)
	})

	t.Run("no providers registered is fatal", func(t *testing.T) {
		h := NewHarness()
		assert.ErrorIs(t, h.Initialize(ctx), ErrAllProvidersFailed)
	})

	t.Run("ordering is deterministic for the same configuration", func(t *testing.T) {
		build := func() *Harness {
			h := NewHarness(
				&fakeProvider{name: "a", initErr: errors.New("unset")},
				&fakeProvider{name: "b"},
				&fakeProvider{name: "c"},
			)
			require.NoError(t, h.Initialize(ctx))
			return h
		}
		assert.Equal(t, build().Available(), build().Available())
	})
}

func TestHarnessChat(t *testing.T) {
	ctx := context.Background()
	messages := []Message{{Role: RoleUser, Content: "hello"}}

	t.Run("primary failure falls through to fallback", func(t *testing.T) {
		a := &fakeProvider{name: "a", initErr: errors.New("bad credential")}
		b := &fakeProvider{name: "b", chatErr: errors.New("backend down")}
		c := &fakeProvider{name: "c", response: Response{Content: "from c"}}

		h := NewHarness(a, b, c)
		require.NoError(t, h.Initialize(ctx))

		resp, err := h.Chat(ctx, messages, ModeWorker, ChatOptions{MaxTokens: 64})
		require.NoError(t, err)
		assert.Equal(t, "from c", resp.Content)
		assert.Equal(t, 1, b.chatCalls)
		assert.Equal(t, 1, c.chatCalls)
	})

	t.Run("stops at first success", func(t *testing.T) {
		b := &fakeProvider{name: "b", response: Response{Content: "from b"}}
		c := &fakeProvider{name: "c", response: Response{Content: "from c"}}

		h := NewHarness(b, c)
		require.NoError(t, h.Initialize(ctx))

		resp, err := h.Chat(ctx, messages, ModeWorker, ChatOptions{})
		require.NoError(t, err)
		assert.Equal(t, "from b", resp.Content)
		assert.Zero(t, c.chatCalls)
	})

	t.Run("each provider resolves its own model for the mode", func(t *testing.T) {
		b := &fakeProvider{
			name:    "b",
			chatErr: errors.New("down"),
			models:  map[Mode]string{ModeArchitect: "b-big"},
		}
		c := &fakeProvider{
			name:     "c",
			response: Response{Content: "ok"},
			models:   map[Mode]string{ModeArchitect: "c-large"},
		}

		h := NewHarness(b, c)
		require.NoError(t, h.Initialize(ctx))

		_, err := h.Chat(ctx, messages, ModeArchitect, ChatOptions{})
		require.NoError(t, err)
		assert.Equal(t, "b-big", b.lastModel)
		assert.Equal(t, "c-large", c.lastModel)
	})

	t.Run("exhausting the chain reports every failure", func(t *testing.T) {
		b := &fakeProvider{name: "b", chatErr: errors.New("b exploded")}
		c := &fakeProvider{name: "c", chatErr: errors.New("c exploded")}

		h := NewHarness(b, c)
		require.NoError(t, h.Initialize(ctx))

		_, err := h.Chat(ctx, messages, ModeWorker, ChatOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "b exploded")
		assert.Contains(t, err.Error(), "c exploded")
	})

	t.Run("chat before initialize is an error", func(t *testing.T) {
		h := NewHarness(&fakeProvider{name: "b"})
		_, err := h.Chat(ctx, messages, ModeWorker, ChatOptions{})
		assert.Error(t, err)
	})
}
