package session

import (
	"math/rand/v2"
	"time"

	"github.com/soocke/jump-bot-go/config"
)

// Pacer spaces presses like a person would: a short settle after every
// jump and a longer rest after a random number of jumps. The first rest
// comes early and short; later ones are drawn from the regular ranges.
// Not safe for concurrent use.
type Pacer struct {
	cfg     *config.Config
	rng     *rand.Rand
	count   int
	restAt  int
	restFor time.Duration
	rests   int
}

// NewPacer returns a Pacer. A nil rng uses a randomly seeded source.
func NewPacer(cfg *config.Config, rng *rand.Rand) *Pacer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Pacer{cfg: cfg, rng: rng}
	p.restAt = p.between(cfg.FirstRestAfterMin, cfg.FirstRestAfterMax)
	p.restFor = time.Duration(p.between(cfg.FirstRestSecMin, cfg.FirstRestSecMax)) * time.Second
	return p
}

// Jumped records one press and reports whether a rest is due now.
func (p *Pacer) Jumped() (time.Duration, bool) {
	p.count++
	if p.count < p.restAt {
		return 0, false
	}
	rest := p.restFor
	p.count = 0
	p.rests++
	p.restAt = p.between(p.cfg.RestAfterMin, p.cfg.RestAfterMax)
	p.restFor = time.Duration(p.between(p.cfg.RestSecMin, p.cfg.RestSecMax)) * time.Second
	return rest, true
}

// Settle returns the pause before the next capture, uniform in
// [SettleMinSeconds, SettleMaxSeconds).
func (p *Pacer) Settle() time.Duration {
	lo, hi := p.cfg.SettleMinSeconds, p.cfg.SettleMaxSeconds
	sec := lo + p.rng.Float64()*(hi-lo)
	return time.Duration(sec * float64(time.Second))
}

// Rests returns how many rests have been handed out.
func (p *Pacer) Rests() int { return p.rests }

// between draws from [lo, hi); hi <= lo yields lo.
func (p *Pacer) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.IntN(hi-lo)
}
