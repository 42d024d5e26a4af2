package search

import (
	"errors"
	"math"
)

var ErrInvalidContext = errors.New("invalid search context")

type (
	// Context drives the search. DoWork applies the candidate value (usually by
	// mutating shared state), MeetsCondition is evaluated right after it.
	Context struct {
		InitialValue   float64
		MaxValue       float64
		EstimationStep float64
		// Resolution is the max. width of the final interval, defaults to 1
		Resolution     float64
		DoWork         func(candidate float64) error
		MeetsCondition func() bool
	}

	interval struct {
		left  float64 // last value known to meet the condition
		right float64 // first value known to fail
	}

	BinaryIntervalSearch struct {
		calls int
	}
)

func NewBinaryIntervalSearch() *BinaryIntervalSearch {
	return &BinaryIntervalSearch{}
}

// Calls returns how many times DoWork was called by the last Search
func (b *BinaryIntervalSearch) Calls() int {
	return b.calls
}

// Search finds the largest value in [InitialValue, MaxValue] meeting the condition.
// The condition is expected to hold up to some value and fail after it.
// Returns InitialValue if even the initial value does not meet the condition.
func (b *BinaryIntervalSearch) Search(c *Context) (float64, error) {
	if err := validate(c); err != nil {
		return 0, err
	}
	b.calls = 0
	resolution := c.Resolution
	if resolution <= 0 {
		resolution = 1
	}

	ok, err := b.probe(c, c.InitialValue)
	if err != nil || !ok {
		return c.InitialValue, err
	}

	limits, found, err := b.findInitialLimits(c)
	if err != nil || !found {
		return limits.left, err
	}
	return b.searchInsideInterval(c, limits, resolution)
}

// doubles the step until the condition fails or max. value is reached
func (b *BinaryIntervalSearch) findInitialLimits(c *Context) (interval, bool, error) {
	limits := interval{left: c.InitialValue}
	step := c.EstimationStep
	for {
		candidate := math.Min(limits.left+step, c.MaxValue)
		ok, err := b.probe(c, candidate)
		if err != nil {
			return limits, false, err
		}
		if !ok {
			limits.right = candidate
			return limits, true, nil
		}
		limits.left = candidate
		if candidate >= c.MaxValue {
			return limits, false, nil
		}
		step *= 2
	}
}

func (b *BinaryIntervalSearch) searchInsideInterval(
	c *Context, limits interval, resolution float64,
) (float64, error) {
	for limits.right-limits.left > resolution {
		middle := limits.left + (limits.right-limits.left)/2
		ok, err := b.probe(c, middle)
		if err != nil {
			return limits.left, err
		}
		if ok {
			limits.left = middle
		} else {
			limits.right = middle
		}
	}
	return limits.left, nil
}

func (b *BinaryIntervalSearch) probe(c *Context, candidate float64) (bool, error) {
	b.calls++
	if err := c.DoWork(candidate); err != nil {
		return false, err
	}
	return c.MeetsCondition(), nil
}

func validate(c *Context) error {
	switch {
	case c == nil, c.DoWork == nil, c.MeetsCondition == nil:
		return errors.Join(ErrInvalidContext, errors.New("callbacks required"))
	case c.InitialValue > c.MaxValue:
		return errors.Join(ErrInvalidContext, errors.New("max value can't be smaller than initial value"))
	case c.EstimationStep <= 0:
		return errors.Join(ErrInvalidContext, errors.New("estimation step needs to be positive"))
	}
	return nil
}
