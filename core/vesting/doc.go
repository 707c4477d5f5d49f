// Package vesting computes token vesting disbursement schedules.
//
// A schedule is built from Params (total amount, interval, duration and an
// optional cliff) and is a chronological list of Periods, each carrying the
// amount released since the previous one. Amounts are exact unsigned
// integers bounded to 128 bits; the linear curve is evaluated with integer
// arithmetic so the sum of all periods matches the total whenever the
// duration is a multiple of the interval.
package vesting
