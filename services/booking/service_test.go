package booking

import (
	"context"
	"testing"
	"time"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/models"
	"sattva/services/session"
	"sattva/services/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var mountDay = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC) // a Monday

func newTestService(t *testing.T, delay time.Duration) (*DefaultBookingService, *tasks.TimerScheduler) {
	t.Helper()
	mux := tasks.NewMux()
	sched := tasks.NewTimerScheduler(mux, zap.NewNop())
	t.Cleanup(func() { _ = sched.Close() })

	svc := &DefaultBookingService{
		Catalog:     catalogRepo.NewStaticCatalogRepo(),
		Store:       session.NewMemoryStore(time.Hour),
		Locker:      session.NewLocker(),
		Scheduler:   sched,
		Logger:      zap.NewNop(),
		SubmitDelay: delay,
		Now:         func() time.Time { return mountDay },
	}
	svc.RegisterTasks(mux)
	return svc, sched
}

func waitForStep(t *testing.T, svc *DefaultBookingService, sid string, step models.WizardStep) *models.BookingView {
	t.Helper()
	var view *models.BookingView
	require.Eventually(t, func() bool {
		v, err := svc.View(context.Background(), sid)
		if err != nil {
			return false
		}
		view = v
		return v.Step == step
	}, 2*time.Second, 5*time.Millisecond)
	return view
}

func TestFreshWizard(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	view, err := svc.View(context.Background(), "sid")
	require.NoError(t, err)

	assert.Equal(t, models.StepChoosingProvider, view.Step)
	assert.Equal(t, 1, view.StepNumber)
	assert.Equal(t, 3, view.TotalSteps)
	assert.Len(t, view.Providers, 2)
	assert.Nil(t, view.Provider)
	assert.Nil(t, view.DateIndex)
	assert.Nil(t, view.TimeSlot)
	assert.False(t, view.CanConfirm)

	require.Len(t, view.Dates, 7)
	assert.Equal(t, "Mon", view.Dates[0].Day)
	assert.Equal(t, 4, view.Dates[0].Date)
	assert.Equal(t, "Sun", view.Dates[6].Day)
	assert.Equal(t, 10, view.Dates[6].Date)
	assert.Len(t, view.TimeSlots, 4)
}

func TestDatesStayFixedAfterMount(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	ctx := context.Background()

	_, err := svc.View(ctx, "sid")
	require.NoError(t, err)

	svc.Now = func() time.Time { return mountDay.AddDate(0, 0, 2) }
	view, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 4, view.Dates[0].Date)
}

func TestSelectProviderFromFreshWizard(t *testing.T) {
	for _, p := range []struct {
		id    int
		name  string
		price string
	}{
		{1, "Dr. Ananya Sharma", "$80"},
		{2, "Dr. Rajesh Gupta", "$65"},
	} {
		t.Run(p.name, func(t *testing.T) {
			svc, _ := newTestService(t, time.Millisecond)
			view, err := svc.SelectProvider(context.Background(), "sid", p.id)
			require.NoError(t, err)

			assert.Equal(t, models.StepChoosingSchedule, view.Step)
			assert.Equal(t, 2, view.StepNumber)
			require.NotNil(t, view.Provider)
			assert.Equal(t, p.name, view.Provider.Name)
			assert.Equal(t, p.price, view.ConfirmPrice)
			assert.Nil(t, view.DateIndex)
			assert.Nil(t, view.TimeSlot)
			assert.False(t, view.TimeEnabled)
		})
	}
}

func TestSelectUnknownProvider(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	_, err := svc.SelectProvider(context.Background(), "sid", 42)
	assert.ErrorIs(t, err, ErrProviderNotFound)

	view, err := svc.View(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, models.StepChoosingProvider, view.Step)
}

func TestStepGuards(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	ctx := context.Background()

	_, err := svc.SelectDate(ctx, "sid", 1)
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = svc.ChangeProvider(ctx, "sid")
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = svc.Confirm(ctx, "sid")
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = svc.BookAnother(ctx, "sid")
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectProvider(ctx, "sid", 2)
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = svc.SelectDate(ctx, "sid", 7)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = svc.SelectDate(ctx, "sid", -1)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.SelectTime(ctx, "sid", "09:00 AM")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = svc.SelectDate(ctx, "sid", 2)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "11:00 PM")
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestConfirmRequiresDateAndTime(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)
	ctx := context.Background()

	view, err := svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	assert.False(t, view.CanConfirm)
	_, err = svc.Confirm(ctx, "sid")
	assert.ErrorIs(t, err, ErrSelectionIncomplete)

	view, err = svc.SelectDate(ctx, "sid", 0)
	require.NoError(t, err)
	require.NotNil(t, view.DateIndex)
	assert.Equal(t, 0, *view.DateIndex)
	assert.True(t, view.TimeEnabled)
	assert.True(t, view.Dates[0].Selected)
	assert.False(t, view.CanConfirm)

	// Today counts as a chosen date.
	view, err = svc.SelectTime(ctx, "sid", "09:00 AM")
	require.NoError(t, err)
	assert.True(t, view.CanConfirm)
	assert.True(t, view.TimeSlots[0].Selected)
}

func TestChangeProviderKeepsSchedule(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	ctx := context.Background()

	_, err := svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, "sid", 4)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "04:30 PM")
	require.NoError(t, err)

	view, err := svc.ChangeProvider(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, models.StepChoosingProvider, view.Step)

	view, err = svc.SelectProvider(ctx, "sid", 2)
	require.NoError(t, err)
	require.NotNil(t, view.DateIndex)
	assert.Equal(t, 4, *view.DateIndex)
	require.NotNil(t, view.TimeSlot)
	assert.Equal(t, "04:30 PM", *view.TimeSlot)
	assert.Equal(t, "$65", view.ConfirmPrice)
}

func TestBookingScenario(t *testing.T) {
	svc, _ := newTestService(t, 20*time.Millisecond)
	ctx := context.Background()

	_, err := svc.SelectProvider(ctx, "sid", 2)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, "sid", 3)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "02:00 PM")
	require.NoError(t, err)

	view, err := svc.Confirm(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, view.Pending)
	assert.False(t, view.CanConfirm)
	assert.Equal(t, models.StepChoosingSchedule, view.Step)

	view = waitForStep(t, svc, "sid", models.StepConfirmed)
	assert.Equal(t, 3, view.StepNumber)
	assert.False(t, view.Pending)
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, "Dr. Rajesh Gupta", view.Confirmation.ProviderName)
	assert.Equal(t, "02:00 PM", view.Confirmation.TimeSlot)
	assert.Equal(t, "2024-03-07", view.Confirmation.Date)
	assert.Contains(t, view.Confirmation.Message, "Dr. Rajesh Gupta")

	view, err = svc.BookAnother(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, models.StepChoosingProvider, view.Step)
	assert.Nil(t, view.Provider)
	assert.Nil(t, view.DateIndex)
	assert.Nil(t, view.TimeSlot)
	assert.Nil(t, view.Confirmation)
}

func TestSelectionsRefusedWhilePending(t *testing.T) {
	svc, sched := newTestService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "10:30 AM")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 1, sched.Pending())

	_, err = svc.Confirm(ctx, "sid")
	assert.ErrorIs(t, err, ErrSubmissionPending)
	_, err = svc.SelectDate(ctx, "sid", 2)
	assert.ErrorIs(t, err, ErrSubmissionPending)
	_, err = svc.SelectTime(ctx, "sid", "09:00 AM")
	assert.ErrorIs(t, err, ErrSubmissionPending)
	_, err = svc.ChangeProvider(ctx, "sid")
	assert.ErrorIs(t, err, ErrSubmissionPending)

	view, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, view.TimeEnabled)
	assert.Equal(t, "10:30 AM", *view.TimeSlot)
}

func TestTeardownCancelsPendingSubmission(t *testing.T) {
	svc, sched := newTestService(t, 30*time.Millisecond)
	ctx := context.Background()

	_, err := svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, "sid", 5)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "10:30 AM")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "sid")
	require.NoError(t, err)

	require.NoError(t, svc.Teardown(ctx, "sid"))
	assert.Equal(t, 0, sched.Pending())

	time.Sleep(60 * time.Millisecond)
	view, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, models.StepChoosingProvider, view.Step)
	assert.Nil(t, view.Provider)
}

func TestTeardownWithoutWizard(t *testing.T) {
	svc, _ := newTestService(t, time.Millisecond)
	assert.NoError(t, svc.Teardown(context.Background(), "nobody"))
}

func TestStaleSubmissionIgnored(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.SelectProvider(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, "sid", 1)
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, "sid", "10:30 AM")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "sid")
	require.NoError(t, err)

	payload, err := tasks.SessionPayload{SessionID: "sid", SubmissionID: "someone-else"}.Encode()
	require.NoError(t, err)
	require.NoError(t, svc.completeSubmission(ctx, payload))

	view, err := svc.View(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, models.StepChoosingSchedule, view.Step)
	assert.True(t, view.Pending)
}
