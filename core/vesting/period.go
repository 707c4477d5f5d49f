package vesting

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
)

// Coin is an amount tagged with its denomination.
type Coin struct {
	Denom  string
	Amount sdkmath.Uint
}

// Period is one disbursement: the elapsed seconds since the vesting start and
// the amount released since the previous period.
type Period struct {
	Length uint64
	Amount Coin
}

// periodWire is the serialized form. Numbers are strings so that amounts
// above 2^53 survive JSON consumers.
type periodWire struct {
	Length string   `json:"length" yaml:"length"`
	Amount coinWire `json:"amount" yaml:"amount"`
}

type coinWire struct {
	Denom  string `json:"denom" yaml:"denom"`
	Amount string `json:"amount" yaml:"amount"`
}

func (p Period) wire() periodWire {
	amount := "0"
	if !p.Amount.Amount.IsNil() {
		amount = p.Amount.Amount.String()
	}
	return periodWire{
		Length: strconv.FormatUint(p.Length, 10),
		Amount: coinWire{Denom: p.Amount.Denom, Amount: amount},
	}
}

// MarshalJSON implements json.Marshaler.
func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Period) UnmarshalJSON(b []byte) error {
	var w periodWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	length, err := strconv.ParseUint(w.Length, 10, 64)
	if err != nil {
		return fmt.Errorf("period length: %w", err)
	}
	amount, err := ParseAmount(w.Amount.Amount)
	if err != nil {
		return fmt.Errorf("period amount: %w", err)
	}
	p.Length = length
	p.Amount = Coin{Denom: w.Amount.Denom, Amount: amount}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Period) MarshalYAML() (any, error) {
	return p.wire(), nil
}

// Record returns the period as flat string fields: length, denom, amount.
func (p Period) Record() []string {
	w := p.wire()
	return []string{w.Length, w.Amount.Denom, w.Amount.Amount}
}
