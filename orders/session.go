package orders

import (
	"context"
	"fmt"
	"io"

	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/metrics"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var (
	// ErrStreamCancelled signals the client went away or the call deadline passed.
	ErrStreamCancelled = errors.New("order stream cancelled")
	// ErrStreamTransport signals a failure reading orders or writing the summary.
	ErrStreamTransport = errors.New("order stream transport failure")
	// ErrSessionStarted is returned when Run is called twice on a session.
	ErrSessionStarted = errors.New("bulk order session already started")
)

// Stream is the client side of an upload as seen by the server, Recv
// returns io.EOF once the client is done sending.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/stream_mock.go -package mocks code.vegaprotocol.io/stockstream/orders Stream
type Stream interface {
	Recv() (*types.Order, error)
	SendAndClose(*types.OrderSummary) error
}

// BulkOrderSession folds one upload into a summary and answers it once.
type BulkOrderSession struct {
	log        *logging.Logger
	ref        string
	stream     Stream
	aggregator Aggregator
	partial    bool

	state       types.StreamState
	summary     types.OrderSummary
	sentPartial bool
	err         error
}

func NewBulkOrderSession(log *logging.Logger, cfg Config, stream Stream) *BulkOrderSession {
	ref := uuid.NewV4().String()
	return &BulkOrderSession{
		log:        log.Named(namedLogger).With(logging.String("session", ref)),
		ref:        ref,
		stream:     stream,
		aggregator: NewAggregator(bool(cfg.RejectInvalid)),
		partial:    bool(cfg.PartialSummaryOnError),
		state:      types.StreamStateOpen,
	}
}

func (s *BulkOrderSession) Ref() string { return s.ref }
func (s *BulkOrderSession) State() types.StreamState { return s.state }
func (s *BulkOrderSession) Summary() types.OrderSummary { return s.summary }
func (s *BulkOrderSession) Err() error { return s.err }

// Run receives orders until the client closes its side, then sends the
// summary. On a failed or cancelled upload no summary is sent unless
// partial summaries are enabled and the call is still alive.
func (s *BulkOrderSession) Run(ctx context.Context) (types.OrderSummary, error) {
	if s.state != types.StreamStateOpen {
		return s.summary, ErrSessionStarted
	}
	s.state = types.StreamStateReceiving

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s.summary, s.fail(fmt.Errorf("%w: %w", ErrStreamCancelled, ctxErr))
		}

		order, err := s.stream.Recv()
		if err == io.EOF {
			return s.complete()
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return s.summary, s.fail(fmt.Errorf("%w: %w", ErrStreamCancelled, ctxErr))
			}
			return s.summary, s.failWithPartial(fmt.Errorf("%w: %w", ErrStreamTransport, err))
		}

		if s.aggregator.Accepts(order) {
			metrics.OrderReceivedInc("accepted")
		} else {
			metrics.OrderReceivedInc("rejected")
			if order != nil {
				s.log.Debug("order rejected", logging.String("order-id", order.OrderID))
			}
		}
		s.summary = s.aggregator.Apply(s.summary, order)
	}
}

// complete answers the upload. The session only becomes Closed once the
// summary is written, a failed write leaves Failed as the single terminal state.
func (s *BulkOrderSession) complete() (types.OrderSummary, error) {
	summary := s.summary
	if err := s.stream.SendAndClose(&summary); err != nil {
		return s.summary, s.fail(fmt.Errorf("%w: %w", ErrStreamTransport, err))
	}
	s.state = types.StreamStateClosed
	metrics.OrderSummaryInc("completed")
	s.log.Debug("bulk order completed",
		logging.Uint64("total-orders", s.summary.TotalOrders),
		logging.Uint64("rejected", s.summary.RejectedCount),
		logging.String("total-amount", s.summary.ExactAmount.String()),
	)
	return s.summary, nil
}

// SentPartial reports whether a partial summary was written before failing.
func (s *BulkOrderSession) SentPartial() bool { return s.sentPartial }

func (s *BulkOrderSession) failWithPartial(err error) error {
	if s.partial {
		s.summary.Partial = true
		summary := s.summary
		if sendErr := s.stream.SendAndClose(&summary); sendErr != nil {
			s.log.Warn("unable to send partial summary", logging.Error(sendErr))
		} else {
			s.sentPartial = true
			metrics.OrderSummaryInc("partial")
		}
	}
	return s.fail(err)
}

func (s *BulkOrderSession) fail(err error) error {
	s.state = types.StreamStateFailed
	s.err = err
	metrics.OrderSummaryInc("failed")
	if errors.Is(err, ErrStreamCancelled) {
		s.log.Debug("bulk order cancelled", logging.Uint64("received", s.summary.TotalOrders), logging.Error(err))
	} else {
		s.log.Error("bulk order failed", logging.Uint64("received", s.summary.TotalOrders), logging.Error(err))
	}
	return err
}
