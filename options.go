package ncube

import "math/rand"

// Option configures cube behavior at initialization.
type Option func(*config)

type config struct {
	historyCapacity   int
	hideInteriorFaces bool
	rng               *rand.Rand
}

func defaultConfig() *config {
	return &config{
		historyCapacity:   64,
		hideInteriorFaces: true,
		rng:               nil,
	}
}

// WithHistoryCapacity sets the move-history capacity. Older moves are
// overwritten once the capacity is reached. A capacity of 0 disables
// undo entirely; negative values are rejected at initialization.
func WithHistoryCapacity(capacity int) Option {
	return func(c *config) {
		c.historyCapacity = capacity
	}
}

// WithInteriorFacesHidden controls whether piece faces that point into
// the cube's interior are hidden at initialization. Enabled by default;
// disable it for hosts that render pieces in isolation.
func WithInteriorFacesHidden(enabled bool) Option {
	return func(c *config) {
		c.hideInteriorFaces = enabled
	}
}

// WithRand sets the random number generator used by Shuffle. By default
// the cube seeds its own generator; inject one for deterministic
// scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}
