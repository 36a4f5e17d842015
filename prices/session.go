package prices

import (
	"context"
	"fmt"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var (
	// ErrStreamCancelled signals the subscriber went away or the call deadline passed.
	ErrStreamCancelled = errors.New("price stream cancelled")
	// ErrStreamTransport signals a tick could not be written to the subscriber.
	ErrStreamTransport = errors.New("price stream transport failure")
	// ErrSessionStarted is returned when Run is called twice on a session.
	ErrSessionStarted = errors.New("price stream session already started")
)

// Sender writes one tick to the subscriber.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/sender_mock.go -package mocks code.vegaprotocol.io/stockstream/prices Sender
type Sender interface {
	Send(types.PriceTick) error
}

// GeneratorFactory builds the generator of a subscription.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/generator_factory_mock.go -package mocks code.vegaprotocol.io/stockstream/prices GeneratorFactory
type GeneratorFactory interface {
	NewGenerator(ctx context.Context, symbol string) (TickGenerator, error)
	Model() PriceModel
}

// PriceStreamSession drives one price subscription from its first tick to
// its single terminal state. It is owned by the goroutine serving the call.
type PriceStreamSession struct {
	log        *logging.Logger
	ref        string
	symbol     string
	generators GeneratorFactory
	sender     Sender

	state types.StreamState
	sent  uint64
	err   error
}

func NewPriceStreamSession(log *logging.Logger, generators GeneratorFactory, sender Sender, symbol string) *PriceStreamSession {
	ref := uuid.NewV4().String()
	return &PriceStreamSession{
		log: log.Named(namedLogger).With(
			logging.String("session", ref),
			logging.String("symbol", symbol),
		),
		ref:        ref,
		symbol:     symbol,
		generators: generators,
		sender:     sender,
		state:      types.StreamStateOpen,
	}
}

func (s *PriceStreamSession) Ref() string { return s.ref }
func (s *PriceStreamSession) State() types.StreamState { return s.state }
func (s *PriceStreamSession) Sent() uint64 { return s.sent }
func (s *PriceStreamSession) Err() error { return s.err }

// Run streams ticks until the generator is exhausted, the context is done,
// or a write fails. A nil error means the stream completed normally.
func (s *PriceStreamSession) Run(ctx context.Context) error {
	if s.state != types.StreamStateOpen {
		return ErrSessionStarted
	}
	if len(s.symbol) == 0 {
		return s.fail(ErrEmptySymbol)
	}

	gen, err := s.generators.NewGenerator(ctx, s.symbol)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s.fail(cancelled(ctxErr))
		}
		return s.fail(err)
	}
	defer func() {
		if err := gen.Close(); err != nil {
			s.log.Warn("unable to close price generator", logging.Error(err))
		}
	}()

	model := string(s.generators.Model())
	s.state = types.StreamStateStreaming
	s.log.Debug("price stream started", logging.String("model", model))

	for {
		tick, err := gen.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrEndOfStream) {
				s.state = types.StreamStateClosed
				s.log.Debug("price stream completed", logging.Uint64("sent", s.sent))
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.fail(cancelled(ctxErr))
			}
			return s.fail(err)
		}

		// nothing is written once cancellation is visible
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s.fail(cancelled(ctxErr))
		}
		if err := s.sender.Send(tick); err != nil {
			return s.fail(fmt.Errorf("%w: %w", ErrStreamTransport, err))
		}
		s.sent++
		metrics.TickSentInc(model)
	}
}

func (s *PriceStreamSession) fail(err error) error {
	s.state = types.StreamStateFailed
	s.err = err
	if errors.Is(err, ErrStreamCancelled) {
		s.log.Debug("price stream cancelled", logging.Uint64("sent", s.sent), logging.Error(err))
	} else {
		s.log.Error("price stream failed", logging.Uint64("sent", s.sent), logging.Error(err))
	}
	return err
}

func cancelled(cause error) error {
	return fmt.Errorf("%w: %w", ErrStreamCancelled, cause)
}
