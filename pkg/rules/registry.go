package rules

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Registry holds the processors used to turn descriptors into constraints.
// Register all processors at startup: the registry seals itself on the first
// Build and rejects later registrations.
type Registry struct {
	mu         sync.RWMutex
	processors []Processor
	sealed     bool
	log        *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report skipped and claimed descriptors.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a registry with the given processors, consulted in order.
func NewRegistry(processors []Processor, opts ...RegistryOption) *Registry {
	r := &Registry{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	for _, p := range processors {
		if p != nil {
			r.processors = append(r.processors, p)
		}
	}
	return r
}

// Default creates a registry with the builtin, uuid and choice processors.
func Default(opts ...RegistryOption) *Registry {
	return NewRegistry([]Processor{Builtin(), UUIDs(), Choices()}, opts...)
}

// Register appends a processor. It fails once the registry has built a chain.
func (r *Registry) Register(p Processor) error {
	if p == nil {
		return ErrNilProcessor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}
	r.processors = append(r.processors, p)
	return nil
}

// Build converts descriptors into a chain, preserving declaration order.
// Descriptors no processor accepts are skipped. A descriptor accepted by several
// processors contributes one constraint per accepting processor.
func (r *Registry) Build(descriptors ...Descriptor) (*validator.Chain, error) {
	r.mu.Lock()
	r.sealed = true
	processors := r.processors
	r.mu.Unlock()

	ctx := context.Background()
	constraints := make([]validator.Constraint, 0, len(descriptors))
	for _, d := range descriptors {
		claimed := 0
		for _, p := range processors {
			if !p.Accepts(d) {
				continue
			}
			claimed++
			c, err := p.Constraint(d)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q: %w", ErrBuildFailed, d.Kind, d.Name, err)
			}
			constraints = append(constraints, c)
		}

		if claimed == 0 {
			r.log.LogAttrs(ctx, slog.LevelDebug, "skipping unrecognised rule",
				logger.Component("rules"),
				logger.RuleKind(string(d.Kind)),
				logger.Parameter(d.Name),
			)
		} else if claimed > 1 {
			r.log.LogAttrs(ctx, slog.LevelDebug, "rule claimed by several processors",
				logger.Component("rules"),
				logger.RuleKind(string(d.Kind)),
				logger.Parameter(d.Name),
				slog.Int("claims", claimed),
			)
		}
	}

	return validator.NewChain(constraints...), nil
}

// ForHandler builds the chain declared by h. Handlers that do not implement
// Declarer get an empty chain.
func (r *Registry) ForHandler(h any) (*validator.Chain, error) {
	d, ok := h.(Declarer)
	if !ok {
		return validator.NewChain(), nil
	}
	r.log.Debug("building validator", logger.Component("rules"), logger.Handler(fmt.Sprintf("%T", h)))
	return r.Build(d.Parameters()...)
}

// Len returns the number of registered processors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processors)
}
