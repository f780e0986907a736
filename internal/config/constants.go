package config

const (
	// Default wagering limits in minor currency units
	DefaultMinStake = 100
	DefaultMaxStake = 1_000_000
)
