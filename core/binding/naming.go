package binding

import (
	"strings"
	"sync"
)

// Strategy maps a canonical field name to a candidate lookup key.
type Strategy func(name string) string

// Identity looks the name up as-is.
func Identity(name string) string {
	return name
}

// UnderscoreToDash replaces underscores with dashes ("first_name" -> "first-name").
func UnderscoreToDash(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// Bracketed wraps the name in brackets ("name" -> "[name]").
func Bracketed(name string) string {
	return "[" + name + "]"
}

// Naming is an immutable, ordered chain of strategies.
// Earlier strategies take priority.
type Naming struct {
	strategies []Strategy
}

// NewNaming creates a chain trying strategies in the given order.
func NewNaming(strategies ...Strategy) Naming {
	return Naming{strategies: append([]Strategy(nil), strategies...)}
}

// DefaultNaming returns identity, underscore-to-dash, bracketed.
func DefaultNaming() Naming {
	return NewNaming(Identity, UnderscoreToDash, Bracketed)
}

// With returns a new chain with strategies appended after the existing ones.
func (n Naming) With(strategies ...Strategy) Naming {
	combined := make([]Strategy, 0, len(n.strategies)+len(strategies))
	combined = append(combined, n.strategies...)
	combined = append(combined, strategies...)
	return Naming{strategies: combined}
}

// Len returns the number of strategies.
func (n Naming) Len() int {
	return len(n.strategies)
}

// Candidates returns the candidate keys for name in priority order.
func (n Naming) Candidates(name string) []string {
	keys := make([]string, len(n.strategies))
	for i, s := range n.strategies {
		keys[i] = s(name)
	}
	return keys
}

// NamingRegistry collects strategies before contexts are created.
// It is append-only: registration never removes or reorders strategies.
// Chains handed out by Naming are snapshots and do not see later
// registrations.
type NamingRegistry struct {
	mu         sync.RWMutex
	strategies []Strategy
}

// NewNamingRegistry creates a registry seeded with the default strategies.
func NewNamingRegistry() *NamingRegistry {
	return &NamingRegistry{strategies: []Strategy{Identity, UnderscoreToDash, Bracketed}}
}

// Register appends a strategy after all existing ones.
func (r *NamingRegistry) Register(strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies = append(r.strategies, strategy)
}

// Naming returns a snapshot of the registered strategies.
func (r *NamingRegistry) Naming() Naming {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return NewNaming(r.strategies...)
}
