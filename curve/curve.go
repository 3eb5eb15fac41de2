// Package curve provides the zero-rate curve container and interpolation used
// by the swap pricing engine.
package curve

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrOutOfRange is returned when a target maturity falls outside the
	// curve's node range and the extrapolation policy forbids clamping.
	ErrOutOfRange = errors.New("maturity outside curve range; extrapolation forbidden")

	// ErrEmptyCurve is returned when interpolation is requested on a curve
	// with no nodes.
	ErrEmptyCurve = errors.New("empty curve")
)

// Extrapolation policies.
const (
	PolicyClamp = "clamp"
	PolicyError = "error"
)

// Interpolation strategies.
const (
	StrategyLinearZero  = "linear_zero"
	StrategyLogLinearDF = "log_linear_df"
)

// Node is a single curve observation: a day offset from the valuation date and
// the zero rate (decimal) observed at that maturity.
type Node struct {
	Days int
	Rate float64
}

// Curve is an ordered set of zero-rate nodes anchored at a valuation date.
//
// Nodes must be sorted by strictly increasing Days; the loader enforces this
// invariant and the curve does not re-validate it. A Curve is read-only after
// construction and safe for concurrent use.
type Curve struct {
	valuation time.Time
	nodes     []Node
}

// New builds a curve from a valuation date and pre-sorted nodes.
// The node slice is copied; callers keep ownership of their input.
func New(valuation time.Time, nodes []Node) *Curve {
	c := &Curve{valuation: valuation, nodes: make([]Node, len(nodes))}
	copy(c.nodes, nodes)
	return c
}

// ValuationDate returns the date at which day offsets are anchored.
func (c *Curve) ValuationDate() time.Time {
	return c.valuation
}

// Len returns the number of nodes.
func (c *Curve) Len() int {
	return len(c.nodes)
}

// Nodes returns a copy of the curve's nodes.
func (c *Curve) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// FirstNodeDate returns the calendar date of the first node, or the zero time
// for an empty curve.
func (c *Curve) FirstNodeDate() time.Time {
	if len(c.nodes) == 0 {
		return time.Time{}
	}
	return c.valuation.AddDate(0, 0, c.nodes[0].Days)
}

// Rebase returns a curve with day offsets re-anchored at valuation.
// The receiver is returned unchanged when valuation already matches.
func (c *Curve) Rebase(valuation time.Time) *Curve {
	if valuation.Equal(c.valuation) {
		return c
	}
	// Floor, not truncate: a valuation a fraction of a day before the anchor
	// must shift by -1 whole day, matching calendar-day differencing.
	shift := int(math.Floor(valuation.Sub(c.valuation).Hours() / 24))
	nodes := make([]Node, len(c.nodes))
	for i, n := range c.nodes {
		nodes[i] = Node{Days: n.Days - shift, Rate: n.Rate}
	}
	return &Curve{valuation: valuation, nodes: nodes}
}

// MinDays returns the smallest node day offset. Callers must check Len first.
func (c *Curve) MinDays() int {
	return c.nodes[0].Days
}

// MaxDays returns the largest node day offset. Callers must check Len first.
func (c *Curve) MaxDays() int {
	return c.nodes[len(c.nodes)-1].Days
}
