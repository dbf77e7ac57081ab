package splitter

import "fmt"

// DefaultMaxPoints is the point bound applied when Config.MaxPoints is zero.
const DefaultMaxPoints = 500

// Config holds the configuration for one splitting run.
type Config struct {
	// BaseName is the prefix of emitted unit names; the N-th unit is
	// named "{BaseName}_{N}".
	BaseName string
	// MaxPoints is the maximum number of points per emitted unit.
	// Must be at least 2; zero selects DefaultMaxPoints.
	MaxPoints int
}

// Validate checks if the configuration is valid and applies defaults.
func (c *Config) Validate() error {
	if c.BaseName == "" {
		return fmt.Errorf("base name is required")
	}

	// Set defaults
	if c.MaxPoints == 0 {
		c.MaxPoints = DefaultMaxPoints
	}

	if c.MaxPoints < 2 {
		return fmt.Errorf("max points must be at least 2, got %d", c.MaxPoints)
	}

	return nil
}
