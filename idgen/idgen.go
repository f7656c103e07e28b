// Package idgen provides template-based identifier generators, so every
// automatically created component gets its ID from a bound generator
// rather than a caller-supplied string.
package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces a string ID for the idx-th invocation of its owning
// template. Implementations should be pure given idx, except UUIDGenerator
// which is intentionally non-deterministic.
type Generator func(idx int) string

// SequentialGenerator returns prefix + decimal idx, e.g. prefix="G" ->
// "G0", "G1", ... . This is the default scheme for gate/pin templates.
func SequentialGenerator(prefix string) Generator {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// HexGenerator returns prefix + lowercase hex idx.
func HexGenerator(prefix string) Generator {
	return func(idx int) string {
		return prefix + strconv.FormatInt(int64(idx), 16)
	}
}

// UUIDGenerator ignores idx and mints a fresh random UUID per call. Useful
// for composite-gate templates a user may instantiate from several editors
// at once, where a small sequential counter risks collisions across
// editors sharing a persisted template catalog.
func UUIDGenerator() Generator {
	return func(_ int) string {
		return uuid.NewString()
	}
}

// Counter binds a Generator to its own invocation count, giving callers a
// zero-argument Next() bound to one CreateCommand template. A CreateCommand
// clone shares its template's *Counter pointer rather than calling Clone,
// so repeated executions keep advancing one sequence
// ("G0", "G1", "G2", ...) instead of colliding. Clone exists for
// the separate case of duplicating a template into an independent new
// sequence, e.g. loading the same composite-gate catalog entry into two
// unrelated editors.
type Counter struct {
	gen Generator
	n   int
}

// NewCounter binds gen to a fresh zero count. A nil gen defaults to
// SequentialGenerator("C").
func NewCounter(gen Generator) *Counter {
	if gen == nil {
		gen = SequentialGenerator("C")
	}
	return &Counter{gen: gen}
}

// Next mints the next ID in this counter's sequence and advances it.
func (c *Counter) Next() string {
	id := c.gen(c.n)
	c.n++
	return id
}

// Clone returns a new Counter sharing gen but starting its own count at
// zero, independent of how far c has advanced.
func (c *Counter) Clone() *Counter {
	return &Counter{gen: c.gen}
}
