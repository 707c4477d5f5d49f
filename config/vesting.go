package config

// DefaultDenom is the denomination attached to periods when none is configured.
const DefaultDenom = "uknow"

// VestingConfig holds the settings of the vesting subcommands.
type VestingConfig struct {
	// Denom is the token denomination written into every period. It is an
	// opaque label and is not checked against any registry.
	Denom string `json:"denom"`
}

// SetDefaults applies sane defaults.
func (c *VestingConfig) SetDefaults() {
	if c.Denom == "" {
		c.Denom = DefaultDenom
	}
}
