package workpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/KirkDiggler/pokedex-api/internal/pkg/workpool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type WorkpoolTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestWorkpoolSuite(t *testing.T) {
	suite.Run(t, new(WorkpoolTestSuite))
}

func (s *WorkpoolTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func (s *WorkpoolTestSuite) TestPreservesInputOrder() {
	items := numbers(151)

	out, err := workpool.Map(s.ctx, items, 10, func(_ context.Context, n int) (int, error) {
		// later items finish first
		time.Sleep(time.Duration(152-n) * 10 * time.Microsecond)
		return n * 2, nil
	})

	s.Require().NoError(err)
	s.Require().Len(out, 151)
	for i, v := range out {
		s.Equal((i+1)*2, v)
	}
}

func (s *WorkpoolTestSuite) TestProcessesEveryItemOnce() {
	var calls atomic.Int64
	seen := make([]atomic.Int32, 50)

	_, err := workpool.Map(s.ctx, numbers(50), 7, func(_ context.Context, n int) (struct{}, error) {
		calls.Add(1)
		seen[n-1].Add(1)
		return struct{}{}, nil
	})

	s.Require().NoError(err)
	s.Equal(int64(50), calls.Load())
	for i := range seen {
		s.Equal(int32(1), seen[i].Load(), "item %d", i+1)
	}
}

func (s *WorkpoolTestSuite) TestBoundsConcurrency() {
	var active, peak atomic.Int64

	_, err := workpool.Map(s.ctx, numbers(40), 4, func(_ context.Context, n int) (int, error) {
		cur := active.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		return n, nil
	})

	s.Require().NoError(err)
	s.LessOrEqual(peak.Load(), int64(4))
}

func (s *WorkpoolTestSuite) TestFirstErrorStopsThePool() {
	boom := errors.New("fetch failed")
	var calls atomic.Int64

	out, err := workpool.Map(s.ctx, numbers(151), 10, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 3 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
		return n, nil
	})

	s.ErrorIs(err, boom)
	s.Nil(out)
	s.Less(calls.Load(), int64(151))
}

func (s *WorkpoolTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := workpool.Map(ctx, numbers(5), 2, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	s.ErrorIs(err, context.Canceled)
}

func (s *WorkpoolTestSuite) TestEmptyInput() {
	out, err := workpool.Map(s.ctx, []int{}, 10, func(_ context.Context, n int) (int, error) {
		s.Fail("fn must not be called")
		return n, nil
	})

	s.NoError(err)
	s.NotNil(out)
	s.Empty(out)
}

func (s *WorkpoolTestSuite) TestDefaultWorkers() {
	out, err := workpool.Map(s.ctx, numbers(3), 0, func(_ context.Context, n int) (string, error) {
		return string(rune('a' + n - 1)), nil
	})

	s.NoError(err)
	s.Equal([]string{"a", "b", "c"}, out)
}
