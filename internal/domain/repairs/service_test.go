package repairs

import (
	"context"
	"testing"
	"time"

	"dairy-records/internal/adapters/storage/memory"
	"dairy-records/internal/domain/records"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 12, 14, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Repair](), clock)
}

func leak() Input {
	return Input{Shed: "B", Issue: "Roof leak over feeding lane", ReportedOn: "2025-09-05"}
}

func TestService_Create_OpenByDefault(t *testing.T) {
	svc := newTestService()

	r, err := svc.Create(context.Background(), "sup-1", leak())
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, r.Status())
	assert.Equal(t, 7, r.DaysOpen(records.Today(svc.clock)))
}

func TestService_Create_RepairedOnRules(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := leak()
	in.RepairedOn = "2025-09-04"
	_, err := svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "repaired_on cannot be before reported_on")

	in.RepairedOn = "2025-09-13"
	_, err = svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "repaired_on cannot be in the future")

	in.RepairedOn = "2025-09-05"
	r, err := svc.Create(ctx, "sup-1", in)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, r.Status(), "same-day repair is allowed")
	assert.Equal(t, 0, r.DaysOpen(records.Today(svc.clock)))
}

func TestService_Complete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, "sup-1", leak())
	require.NoError(t, err)

	_, err = svc.Complete(ctx, r.ID, "tech-1", CompleteInput{Cost: decimal.NewNullDecimal(decimal.NewFromInt(-3))})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	done, err := svc.Complete(ctx, r.ID, "tech-1", CompleteInput{
		RepairedOn: "2025-09-10",
		Cost:       decimal.NewNullDecimal(decimal.RequireFromString("4250.499")),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status())
	assert.Equal(t, "2025-09-10", records.FormatDate(*done.RepairedOn))
	assert.Equal(t, "4250.50", done.Cost.StringFixed(2))
	assert.Equal(t, "tech-1", done.Technician)

	_, err = svc.Complete(ctx, r.ID, "tech-1", CompleteInput{})
	assert.ErrorIs(t, err, records.ErrBadState)

	open, err := svc.List(ctx, records.ListFilter{Status: "open"})
	require.NoError(t, err)
	assert.Empty(t, open)
	completed, err := svc.List(ctx, records.ListFilter{Status: "completed"})
	require.NoError(t, err)
	assert.Len(t, completed, 1)
}
