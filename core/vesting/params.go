package vesting

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// AmountBits is the width of the largest accepted total amount.
const AmountBits = 128

var (
	// ErrZeroInterval is returned when the disbursement interval is zero.
	ErrZeroInterval = errors.New("interval must be greater than zero")
	// ErrCliffAfterDuration is returned when the cliff ends after the vesting horizon.
	ErrCliffAfterDuration = errors.New("cliff duration exceeds vesting duration")
	// ErrAmountOverflow is returned for totals that do not fit in AmountBits bits.
	ErrAmountOverflow = fmt.Errorf("total amount exceeds %d bits", AmountBits)
	// ErrInvalidAmount is returned when an amount is not a base-10 unsigned integer.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingAmount is returned when Params carries an uninitialized total.
	ErrMissingAmount = errors.New("total amount is required")
)

// Params defines a vesting curve. Durations are expressed in seconds
// elapsed since the vesting start.
type Params struct {
	TotalAmount   sdkmath.Uint
	Interval      uint64
	Duration      uint64
	CliffDuration uint64
	Denom         string
}

// Validate checks the parameters keep the schedule arithmetic well defined.
func (p Params) Validate() error {
	if p.Interval == 0 {
		return ErrZeroInterval
	}
	if p.CliffDuration > p.Duration {
		return fmt.Errorf("%w: cliff %d > duration %d", ErrCliffAfterDuration, p.CliffDuration, p.Duration)
	}
	if p.TotalAmount.IsNil() {
		return ErrMissingAmount
	}
	if p.TotalAmount.BigInt().BitLen() > AmountBits {
		return ErrAmountOverflow
	}
	return nil
}

// PeriodCount returns the number of whole intervals within the duration.
// A trailing partial interval is not counted.
func (p Params) PeriodCount() uint64 {
	if p.Interval == 0 {
		return 0
	}
	return p.Duration / p.Interval
}

// Truncated reports whether the duration leaves a partial interval that no
// period covers.
func (p Params) Truncated() bool {
	return p.Interval != 0 && p.Duration%p.Interval != 0
}

// ParseAmount parses a base-10 unsigned integer of at most AmountBits bits.
func ParseAmount(s string) (sdkmath.Uint, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return sdkmath.Uint{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return sdkmath.Uint{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if n.BitLen() > AmountBits {
		return sdkmath.Uint{}, fmt.Errorf("%w: %s", ErrAmountOverflow, s)
	}
	return sdkmath.NewUintFromBigInt(n), nil
}
