package session

import (
	"careportal-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweepable is a session store that needs periodic removal of expired
// sessions. The redis store relies on key expiry instead.
type Sweepable interface {
	Sweep() int
}

// Sweeper periodically purges expired sessions from a Sweepable store.
type Sweeper struct {
	log   *zap.Logger
	store Sweepable
	spec  string
	cron  *cron.Cron
}

func NewSweeper(logger *zap.Logger, store Sweepable, spec string) *Sweeper {
	return &Sweeper{log: logger, store: store, spec: spec}
}

// Start schedules the sweep. An invalid spec falls back to every ten minutes.
func (s *Sweeper) Start() {
	c := cron.New()
	_, err := c.AddFunc(s.spec, s.RunOnce)
	if err != nil {
		s.log.Warn("session.Sweeper: invalid cron spec, falling back to default",
			zap.String("spec", s.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.DefaultSessionSweepSpec, s.RunOnce)
	}
	c.Start()
	s.cron = c
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *Sweeper) RunOnce() {
	removed := s.store.Sweep()
	if removed > 0 {
		s.log.Info("session.Sweeper removed expired sessions",
			zap.Int("removed", removed),
		)
	}
}
