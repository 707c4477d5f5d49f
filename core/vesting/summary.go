package vesting

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a computed schedule. Total is exact; the release
// statistics are float approximations meant for logs and metrics.
type Summary struct {
	Periods     int
	Total       sdkmath.Uint
	FirstLength uint64
	LastLength  uint64
	MinRelease  float64
	MaxRelease  float64
	MeanRelease float64
	StdDev      float64
}

// Summarize aggregates the releases of a schedule.
func Summarize(periods []Period) Summary {
	s := Summary{Periods: len(periods), Total: sdkmath.ZeroUint()}
	if len(periods) == 0 {
		return s
	}
	releases := make([]float64, len(periods))
	for i, p := range periods {
		s.Total = s.Total.Add(p.Amount.Amount)
		releases[i], _ = new(big.Float).SetInt(p.Amount.Amount.BigInt()).Float64()
	}
	s.FirstLength = periods[0].Length
	s.LastLength = periods[len(periods)-1].Length
	s.MinRelease = floats.Min(releases)
	s.MaxRelease = floats.Max(releases)
	if len(releases) == 1 {
		s.MeanRelease = releases[0]
		return s
	}
	s.MeanRelease, s.StdDev = stat.MeanStdDev(releases, nil)
	return s
}
