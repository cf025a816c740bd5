package pathprobe

import (
	"context"
	"fmt"
	"strings"
)

// Kind classifies what a path refers to.
type Kind int

const (
	KindNone Kind = iota
	KindFile
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "none"
	}
}

// Prober answers existence and type questions about a path.
type Prober interface {
	// Probe returns KindNone with a nil error when nothing exists at path.
	Probe(ctx context.Context, path string) (Kind, error)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, path string) (Kind, error)

func (f ProberFunc) Probe(ctx context.Context, path string) (Kind, error) {
	return f(ctx, path)
}

// Mux routes probes by URI scheme. Paths without a scheme go to the fallback.
// Register schemes before use; Mux is not safe for concurrent registration.
type Mux struct {
	fallback Prober
	schemes  map[string]Prober
}

// NewMux creates a Mux. A nil fallback rejects scheme-less paths with ErrNoProber.
func NewMux(fallback Prober) *Mux {
	return &Mux{
		fallback: fallback,
		schemes:  make(map[string]Prober),
	}
}

// Handle registers p for scheme (without "://"). Nil probers are ignored.
func (m *Mux) Handle(scheme string, p Prober) {
	if scheme == "" || p == nil {
		return
	}
	m.schemes[strings.ToLower(scheme)] = p
}

func (m *Mux) Probe(ctx context.Context, path string) (Kind, error) {
	scheme, ok := Scheme(path)
	if !ok {
		if m.fallback == nil {
			return KindNone, fmt.Errorf("%w: %s", ErrNoProber, path)
		}
		return m.fallback.Probe(ctx, path)
	}

	p, ok := m.schemes[scheme]
	if !ok {
		return KindNone, fmt.Errorf("%w: %s", ErrNoProber, scheme)
	}
	return p.Probe(ctx, path)
}

// Scheme returns the lower-cased URI scheme of path, if it has one.
// Single-letter schemes are treated as Windows drive letters, not schemes.
func Scheme(path string) (string, bool) {
	scheme, _, found := strings.Cut(path, "://")
	if !found || len(scheme) < 2 {
		return "", false
	}
	for i, r := range scheme {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isLetter || (i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.')) {
			continue
		}
		return "", false
	}
	return strings.ToLower(scheme), true
}
