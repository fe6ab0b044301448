package jump

import (
	"time"

	"github.com/soocke/jump-bot-go/config"
)

// PressDuration converts a distance to a press length: distance times
// cfg.PressCoefficient, raised to cfg.MinPressMs, truncated to whole
// milliseconds. cfg.MaxPressMs caps it only when positive; the default
// configuration has no ceiling.
func PressDuration(distance float64, cfg *config.Config) time.Duration {
	ms := distance * cfg.PressCoefficient
	if floor := float64(cfg.MinPressMs); ms < floor {
		ms = floor
	}
	if cfg.MaxPressMs > 0 {
		if ceil := float64(cfg.MaxPressMs); ms > ceil {
			ms = ceil
		}
	}
	return time.Duration(int64(ms)) * time.Millisecond
}
