package llm

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agentctl/agentctl/pkg/logger"
	"github.com/agentctl/agentctl/pkg/telemetry"
)

// ErrAllProvidersFailed is returned by Initialize when no provider could be
// initialized.
var ErrAllProvidersFailed = errors.New("no provider could be initialized")

// Harness owns the primary/fallback provider chain. It is constructed once at
// startup and passed by reference into the orchestrator; the chain is written
// exactly once by Initialize and read-only afterwards, so Chat needs no
// locking under the one-task-at-a-time execution model.
type Harness struct {
	providers   []Provider
	primary     Provider
	fallbacks   []Provider
	initialized bool
}

// NewHarness creates a harness over the given providers. Registration order
// determines primary/fallback designation during Initialize.
func NewHarness(providers ...Provider) *Harness {
	return &Harness{providers: providers}
}

// Initialize attempts to initialize every registered provider in order. The
// first success becomes the primary; later successes become fallbacks in
// order. Individual failures are logged as warnings and the provider is
// dropped for the process lifetime. Only a total wipeout is fatal.
func (h *Harness) Initialize(ctx context.Context) error {
	log := logger.G(ctx)

	for _, p := range h.providers {
		if err := p.Init(ctx); err != nil {
			log.WithError(err).WithField("provider", p.Name()).Warn("skipping provider")
			continue
		}
		if h.primary == nil {
			h.primary = p
		} else {
			h.fallbacks = append(h.fallbacks, p)
		}
		log.WithField("provider", p.Name()).Debug("provider initialized")
	}

	if h.primary == nil {
		return ErrAllProvidersFailed
	}
	h.initialized = true
	return nil
}

// Primary returns the primary provider name, or "" before initialization.
func (h *Harness) Primary() string {
	if h.primary == nil {
		return ""
	}
	return h.primary.Name()
}

// Available returns all usable provider names, primary first.
func (h *Harness) Available() []string {
	if h.primary == nil {
		return nil
	}
	names := []string{h.primary.Name()}
	for _, p := range h.fallbacks {
		names = append(names, p.Name())
	}
	return names
}

// Chat dispatches the conversation to the primary provider and falls through
// the fallback chain on error. Each provider resolves its own model
// identifier for the requested mode. When every provider fails, the
// accumulated errors are returned as one composite error.
func (h *Harness) Chat(ctx context.Context, messages []Message, mode Mode, opts ChatOptions) (Response, error) {
	if !h.initialized {
		return Response{}, errors.New("harness is not initialized")
	}

	var (
		response Response
		errs     *multierror.Error
	)

	chain := append([]Provider{h.primary}, h.fallbacks...)
	err := telemetry.WithSpan(ctx, "llm.chat", func(ctx context.Context) error {
		for _, p := range chain {
			model := p.ModelFor(mode)
			resp, err := p.Chat(ctx, messages, model, opts)
			if err != nil {
				logger.G(ctx).WithError(err).
					WithField("provider", p.Name()).
					WithField("model", model).
					Warn("provider chat failed, trying next in chain")
				errs = multierror.Append(errs, errors.Wrap(err, p.Name()))
				continue
			}
			telemetry.SetAttributes(ctx,
				attribute.String("llm.provider", p.Name()),
				attribute.String("llm.model", model),
				attribute.Int("llm.total_units", resp.Usage.TotalUnits),
			)
			response = resp
			return nil
		}
		return errors.Wrap(errs.ErrorOrNil(), "all providers failed")
	}, attribute.String("llm.mode", mode.String()))

	if err != nil {
		return Response{}, err
	}
	return response, nil
}
