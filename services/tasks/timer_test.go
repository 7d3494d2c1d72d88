package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimerSchedulerRunsTask(t *testing.T) {
	mux := NewMux()
	done := make(chan SessionPayload, 1)
	mux.HandleFunc(TypeBookingSubmit, func(ctx context.Context, payload []byte) error {
		p, err := DecodeSessionPayload(payload)
		if err != nil {
			return err
		}
		done <- p
		return nil
	})

	s := NewTimerScheduler(mux, zap.NewNop())
	defer s.Close()

	payload, err := SessionPayload{SessionID: "sid", SubmissionID: "sub-1"}.Encode()
	require.NoError(t, err)
	_, err = s.Schedule(context.Background(), TypeBookingSubmit, payload, 10*time.Millisecond)
	require.NoError(t, err)

	select {
	case p := <-done:
		assert.Equal(t, "sid", p.SessionID)
		assert.Equal(t, "sub-1", p.SubmissionID)
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestTimerSchedulerCancel(t *testing.T) {
	mux := NewMux()
	var ran atomic.Int32
	mux.HandleFunc(TypeBookingSubmit, func(ctx context.Context, payload []byte) error {
		ran.Add(1)
		return nil
	})

	s := NewTimerScheduler(mux, zap.NewNop())
	defer s.Close()

	id, err := s.Schedule(context.Background(), TypeBookingSubmit, nil, 30*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, s.Cancel(context.Background(), id))

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
	assert.ErrorIs(t, s.Cancel(context.Background(), id), ErrTaskNotFound)
}

func TestTimerSchedulerCloseDropsOutstanding(t *testing.T) {
	mux := NewMux()
	var ran atomic.Int32
	mux.HandleFunc(TypeNewsletterAutoDismiss, func(ctx context.Context, payload []byte) error {
		ran.Add(1)
		return nil
	})

	s := NewTimerScheduler(mux, zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := s.Schedule(context.Background(), TypeNewsletterAutoDismiss, nil, time.Hour)
		require.NoError(t, err)
	}
	require.Equal(t, 5, s.Pending())
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, int32(0), ran.Load())

	_, err := s.Schedule(context.Background(), TypeNewsletterAutoDismiss, nil, time.Millisecond)
	assert.ErrorIs(t, err, ErrSchedulerClosed)
	assert.NoError(t, s.Close())
}

func TestMuxUnknownType(t *testing.T) {
	err := NewMux().Dispatch(context.Background(), "nope", nil)
	assert.True(t, errors.Is(err, ErrNoHandler))
}
