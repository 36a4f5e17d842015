package prices_test

import (
	"context"
	"testing"
	"time"

	"code.vegaprotocol.io/stockstream/config/encoding"
	"code.vegaprotocol.io/stockstream/logging"
	"code.vegaprotocol.io/stockstream/prices"
	"code.vegaprotocol.io/stockstream/prices/mocks"
	"code.vegaprotocol.io/stockstream/types"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSession struct {
	ctrl   *gomock.Controller
	sender *mocks.MockSender
	gens   *prices.Generators
}

func getTestSession(t *testing.T, count uint64) *testSession {
	ctrl := gomock.NewController(t)
	return &testSession{
		ctrl:   ctrl,
		sender: mocks.NewMockSender(ctrl),
		gens:   prices.NewGenerators(logging.NewTestLogger(), testConfig(count), nil),
	}
}

func TestPriceStreamSession(t *testing.T) {
	t.Run("stream completes after the tick bound", testSessionCompletes)
	t.Run("empty symbol fails before streaming", testSessionEmptySymbol)
	t.Run("nothing is sent after cancellation", testSessionCancelled)
	t.Run("deadline is reported as cancellation", testSessionDeadline)
	t.Run("send failure is a transport error", testSessionSendFailure)
	t.Run("a session runs once", testSessionRunsOnce)
}

func testSessionCompletes(t *testing.T) {
	ts := getTestSession(t, 10)
	defer ts.ctrl.Finish()

	ts.sender.EXPECT().Send(gomock.Any()).Times(10).DoAndReturn(func(tick types.PriceTick) error {
		assert.Equal(t, "AAPL", tick.Symbol)
		return nil
	})

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), ts.gens, ts.sender, "AAPL")
	assert.Equal(t, types.StreamStateOpen, sess.State())
	assert.NotEmpty(t, sess.Ref())

	require.NoError(t, sess.Run(context.Background()))
	assert.Equal(t, types.StreamStateClosed, sess.State())
	assert.Equal(t, uint64(10), sess.Sent())
	assert.NoError(t, sess.Err())
}

func testSessionEmptySymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	factory := mocks.NewMockGeneratorFactory(ctrl)
	sender := mocks.NewMockSender(ctrl)

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), factory, sender, "")
	err := sess.Run(context.Background())
	assert.ErrorIs(t, err, prices.ErrEmptySymbol)
	assert.Equal(t, types.StreamStateFailed, sess.State())
	assert.Equal(t, uint64(0), sess.Sent())
}

func testSessionCancelled(t *testing.T) {
	ts := getTestSession(t, 10)
	defer ts.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := 0
	ts.sender.EXPECT().Send(gomock.Any()).Times(3).DoAndReturn(func(types.PriceTick) error {
		sent++
		if sent == 3 {
			cancel()
		}
		return nil
	})

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), ts.gens, ts.sender, "TSLA")
	err := sess.Run(ctx)
	assert.ErrorIs(t, err, prices.ErrStreamCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, types.StreamStateFailed, sess.State())
	assert.Equal(t, uint64(3), sess.Sent())
}

func testSessionDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(10)
	cfg.TickInterval = encoding.Duration{Duration: time.Hour}
	gens := prices.NewGenerators(logging.NewTestLogger(), cfg, nil)
	sender := mocks.NewMockSender(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), gens, sender, "AAPL")
	err := sess.Run(ctx)
	assert.ErrorIs(t, err, prices.ErrStreamCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func testSessionSendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	factory := mocks.NewMockGeneratorFactory(ctrl)
	gen := mocks.NewMockTickGenerator(ctrl)
	sender := mocks.NewMockSender(ctrl)

	factory.EXPECT().NewGenerator(gomock.Any(), "GOOGL").Times(1).Return(gen, nil)
	factory.EXPECT().Model().AnyTimes().Return(prices.PriceModelUniform)
	gen.EXPECT().Next(gomock.Any()).Times(1).Return(types.PriceTick{Symbol: "GOOGL", Price: 10}, nil)
	gen.EXPECT().Close().Times(1).Return(nil)
	sender.EXPECT().Send(gomock.Any()).Times(1).Return(errors.New("connection reset"))

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), factory, sender, "GOOGL")
	err := sess.Run(context.Background())
	assert.ErrorIs(t, err, prices.ErrStreamTransport)
	assert.Equal(t, types.StreamStateFailed, sess.State())
	assert.Equal(t, uint64(0), sess.Sent())
	assert.Equal(t, err, sess.Err())
}

func testSessionRunsOnce(t *testing.T) {
	ts := getTestSession(t, 1)
	defer ts.ctrl.Finish()
	ts.sender.EXPECT().Send(gomock.Any()).Times(1).Return(nil)

	sess := prices.NewPriceStreamSession(logging.NewTestLogger(), ts.gens, ts.sender, "AAPL")
	require.NoError(t, sess.Run(context.Background()))
	assert.ErrorIs(t, sess.Run(context.Background()), prices.ErrSessionStarted)
	assert.Equal(t, types.StreamStateClosed, sess.State())
}
