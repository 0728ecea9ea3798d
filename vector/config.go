package vector

import "fmt"

// DefaultGrowthFactor is the capacity multiplier used when a full vector grows.
const DefaultGrowthFactor = 2

// Config configures the growth policy of a vector.
type Config struct {
	// GrowthFactor multiplies capacity whenever an insert finds the vector full.
	// Zero selects DefaultGrowthFactor.
	GrowthFactor int
}

func (cfg Config) normalized() Config {
	if cfg.GrowthFactor == 0 {
		cfg.GrowthFactor = DefaultGrowthFactor
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.GrowthFactor < 2 {
		return fmt.Errorf("%w: growth factor must be >= 2, is %d", ErrInvalidConfig, cfg.GrowthFactor)
	}
	return nil
}

// grow returns the next capacity after c, with a floor of 1.
func (cfg Config) grow(c int) int {
	if c < 1 {
		return 1
	}
	return c * cfg.normalized().GrowthFactor
}
