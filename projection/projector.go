package projection

import (
	"fmt"
	"log/slog"
)

// Mode selects what Project does when no path list is given at all.
type Mode int

const (
	// ModePassThrough returns the source object itself for a nil path list.
	ModePassThrough Mode = iota
	// ModeReduce always reduces; a nil path list yields an empty branch.
	ModeReduce
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePassThrough:
		return "pass-through"
	case ModeReduce:
		return "reduce"
	default:
		return "unknown"
	}
}

// ParseMode parses the configuration name of a mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "pass-through":
		return ModePassThrough, nil
	case "reduce":
		return ModeReduce, nil
	default:
		return 0, fmt.Errorf("unknown projection mode %q (want pass-through or reduce)", s)
	}
}

// Option configures a Projector.
type Option func(*Projector)

// WithMode sets the nil-path-list behavior.
func WithMode(m Mode) Option {
	return func(p *Projector) { p.mode = m }
}

// WithStrictPaths makes malformed paths fail with ErrInvalidPath instead of
// resolving as absent.
func WithStrictPaths(strict bool) Option {
	return func(p *Projector) { p.strict = strict }
}

// WithNormalizedNames enables a fallback lookup that compares normalized
// identifiers, so "customer_id" finds CustomerID.
func WithNormalizedNames(enabled bool) Option {
	return func(p *Projector) { p.resolver.normalized = enabled }
}

// WithLogger sets the debug logger. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Projector) {
		if l != nil {
			p.logger = l
		}
	}
}

// Projector reduces objects to the properties named by dotted paths.
// It is immutable after New and safe for concurrent use.
type Projector struct {
	mode     Mode
	strict   bool
	resolver resolver
	logger   *slog.Logger
}

// New creates a Projector. The zero configuration is pass-through mode with
// lenient paths and exact names.
func New(opts ...Option) *Projector {
	p := &Projector{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Mode returns the configured mode.
func (p *Projector) Mode() Mode { return p.mode }

// Resolve returns the value at the dotted path. found is false when a
// property is missing, an intermediate value is nil or the path is malformed.
func (p *Projector) Resolve(obj any, path string) (value any, found bool) {
	return p.resolver.resolve(obj, ParsePath(path))
}

// GetPropertyValue returns the value at the dotted path, or nil when absent.
func (p *Projector) GetPropertyValue(obj any, path string) any {
	v, _ := p.Resolve(obj, path)
	return v
}

// Assemble builds the projected tree for obj. An empty path list gives an
// empty branch. In strict mode a malformed path fails the whole call.
func (p *Projector) Assemble(obj any, paths []string) (*Node, error) {
	parsed := ParsePaths(paths)

	if p.strict {
		for _, pp := range parsed {
			if err := pp.Validate(); err != nil {
				return nil, err
			}
		}
	}

	a := assembler{resolver: p.resolver, logger: p.logger}

	return a.assemble(obj, parsed), nil
}

// Project reduces obj to the given paths.
//
// A nil path list returns obj unchanged in ModePassThrough and an empty
// branch in ModeReduce. A non-nil empty list always returns an empty branch.
// Otherwise the result is the assembled *Node.
func (p *Projector) Project(obj any, paths []string) (any, error) {
	if paths == nil && p.mode == ModePassThrough {
		return obj, nil
	}

	node, err := p.Assemble(obj, paths)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// ProjectListWith projects every element of list with p.
//
// A nil list returns nil, an empty list returns an empty slice; otherwise
// the result has the same length and order as list.
func ProjectListWith[T any](p *Projector, list []T, paths []string) ([]any, error) {
	if list == nil {
		return nil, nil
	}

	out := make([]any, 0, len(list))
	for i, item := range list {
		v, err := p.Project(item, paths)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, v)
	}

	return out, nil
}

var defaultProjector = New()

// Project reduces obj to paths with the default lenient, pass-through
// projector. See Projector.Project.
func Project(obj any, paths []string) any {
	v, _ := defaultProjector.Project(obj, paths)
	return v
}

// ProjectList projects each element of list with the default projector.
// See ProjectListWith.
func ProjectList[T any](list []T, paths []string) []any {
	out, _ := ProjectListWith(defaultProjector, list, paths)
	return out
}

// GetPropertyValue returns the value at a dotted path, or nil when absent.
func GetPropertyValue(obj any, path string) any {
	return defaultProjector.GetPropertyValue(obj, path)
}

// Resolve returns the value at a dotted path and whether it was found.
func Resolve(obj any, path string) (any, bool) {
	return defaultProjector.Resolve(obj, path)
}
