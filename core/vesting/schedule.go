package vesting

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Policy selects how periods before and at the cliff are handled.
type Policy int

const (
	// PolicyStartAfterCliff starts at the first interval boundary strictly
	// after the last whole interval of the cliff and emits every period from
	// there on, including zero-amount ones.
	PolicyStartAfterCliff Policy = iota
	// PolicySkipZero walks every interval boundary from the first one and
	// drops periods that release nothing.
	PolicySkipZero
)

func (p Policy) String() string {
	switch p {
	case PolicyStartAfterCliff:
		return "start-after-cliff"
	case PolicySkipZero:
		return "skip-zero"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// VestedAt returns the cumulative amount vested t seconds after the start.
// Nothing vests before the cliff, everything vests at the duration, and the
// curve is linear in between, rounded down to the unit.
func (p Params) VestedAt(t uint64) sdkmath.Uint {
	switch {
	case t < p.CliffDuration:
		return sdkmath.ZeroUint()
	case t >= p.Duration:
		return p.TotalAmount
	default:
		return p.TotalAmount.MulUint64(t).QuoUint64(p.Duration)
	}
}

// startIndex returns the 1-based index of the first evaluated period.
// A cliff ending exactly on the last boundary keeps that boundary so the
// total is still released.
func (p Params) startIndex(policy Policy) uint64 {
	if policy != PolicyStartAfterCliff {
		return 1
	}
	start := p.CliffDuration/p.Interval + 1
	if count := p.PeriodCount(); start > count && count > 0 && count*p.Interval == p.CliffDuration {
		return count
	}
	return start
}

// Build computes the schedule. Periods are evaluated in order because each
// release is the difference with the previous cumulative amount.
func (p Params) Build(policy Policy) ([]Period, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if policy != PolicyStartAfterCliff && policy != PolicySkipZero {
		return nil, fmt.Errorf("unknown schedule policy %s", policy)
	}

	periods := make([]Period, 0)
	count := p.PeriodCount()
	start := p.startIndex(policy)
	if start > count {
		return periods, nil
	}

	lastVested := sdkmath.ZeroUint()
	for i := start; ; i++ {
		t := p.Interval * i
		vested := p.VestedAt(t)
		released := vested.Sub(lastVested)
		lastVested = vested

		if !(policy == PolicySkipZero && released.IsZero()) {
			periods = append(periods, Period{
				Length: t,
				Amount: Coin{Denom: p.Denom, Amount: released},
			})
		}
		if i == count {
			break
		}
	}
	return periods, nil
}
