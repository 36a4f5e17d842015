package orders

import (
	"sync"

	"code.vegaprotocol.io/stockstream/logging"
)

// Svc hands out bulk order sessions built from the current configuration.
type Svc struct {
	log *logging.Logger

	mu  sync.RWMutex
	cfg Config
}

// NewService creates an orders service.
func NewService(log *logging.Logger, config Config) *Svc {
	log = log.Named(namedLogger)
	log.SetLevel(config.Level.Get())

	return &Svc{
		log: log,
		cfg: config,
	}
}

// ReloadConf update the internal configuration of the order service.
func (s *Svc) ReloadConf(cfg Config) {
	s.log.Info("reloading configuration")
	if s.log.GetLevel() != cfg.Level.Get() {
		s.log.Info("updating log level",
			logging.String("old", s.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		s.log.SetLevel(cfg.Level.Get())
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// NewSession starts tracking one upload.
func (s *Svc) NewSession(stream Stream) *BulkOrderSession {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()
	return NewBulkOrderSession(s.log, cfg, stream)
}
