package api

import (
	"context"
	"fmt"
	"testing"

	"code.vegaprotocol.io/stockstream/orders"
	"code.vegaprotocol.io/stockstream/prices"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStreamError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   codes.Code
		apiErr error
	}{
		{"empty symbol", prices.ErrEmptySymbol, codes.InvalidArgument, ErrEmptyMissingSymbol},
		{"price stream cancelled", fmt.Errorf("%w: %w", prices.ErrStreamCancelled, context.Canceled), codes.Canceled, ErrStreamCancelled},
		{"order stream cancelled", fmt.Errorf("%w: %w", orders.ErrStreamCancelled, context.Canceled), codes.Canceled, ErrStreamCancelled},
		{"deadline", fmt.Errorf("%w: %w", prices.ErrStreamCancelled, context.DeadlineExceeded), codes.DeadlineExceeded, ErrStreamCancelled},
		{"transport", fmt.Errorf("%w: %w", orders.ErrStreamTransport, errors.New("reset")), codes.Internal, ErrStreamInternal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := streamError(c.err)
			assert.Equal(t, c.code, status.Code(err))
			assert.Equal(t, ErrorMap[c.apiErr], ErrorCode(err))
		})
	}
}

func TestUnmappedError(t *testing.T) {
	err := apiError(codes.Internal, errors.New("surprise"))
	assert.Equal(t, ErrorMap[ErrNotMapped], ErrorCode(err))
	assert.Equal(t, int32(0), ErrorCode(errors.New("plain")))
}
