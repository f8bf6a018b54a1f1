package approvals

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

var now = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

func newTestService() (*Service, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(now)
	return NewService(memory.NewStore[Approval](), clock), clock
}

func feedOrder() Input {
	return Input{
		Item:      "Cattle feed pellets",
		Vendor:    "Nandini Feeds",
		Quantity:  decimal.RequireFromString("12.5"),
		Unit:      "bag",
		UnitPrice: decimal.RequireFromString("1450.333"),
	}
}

func TestService_Create_ComputesTotal(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), "sup-1", feedOrder())
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, "sup-1", a.RequestedBy, "requested_by defaults to the actor")
	assert.Equal(t, "18129.16", a.TotalCost.StringFixed(2))
	assert.Equal(t, "2025-08-01", records.FormatDate(a.RequestedOn))
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := feedOrder()
	in.Quantity = decimal.Zero
	_, err := svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "quantity must be greater than 0")

	in = feedOrder()
	in.UnitPrice = decimal.NewFromInt(-5)
	_, err = svc.Create(ctx, "sup-1", in)
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	in = feedOrder()
	in.Item = ""
	_, err = svc.Create(ctx, "sup-1", in)
	assert.ErrorContains(t, err, "item is required")
}

func TestService_Decide(t *testing.T) {
	svc, clock := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, "sup-1", feedOrder())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, a.ID, "mgr-1", DecisionInput{Decision: StatusPending})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	clock.Advance(2 * time.Hour)
	d, err := svc.Decide(ctx, a.ID, "mgr-1", DecisionInput{Decision: StatusApproved, Remarks: "ok for Aug"})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, d.Status)
	assert.Equal(t, "mgr-1", d.DecidedBy)
	require.NotNil(t, d.DecidedAt)
	assert.Equal(t, now.Add(2*time.Hour), *d.DecidedAt)
	assert.Equal(t, "ok for Aug", d.Remarks)

	_, err = svc.Decide(ctx, a.ID, "mgr-1", DecisionInput{Decision: StatusRejected})
	assert.ErrorIs(t, err, records.ErrBadState)

	_, err = svc.Update(ctx, a.ID, feedOrder())
	assert.ErrorIs(t, err, records.ErrBadState, "decided approvals are frozen")

	_, err = svc.Decide(ctx, "missing", "mgr-1", DecisionInput{Decision: StatusRejected})
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestService_ListByStatusAndSummary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, "sup-1", feedOrder())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "sup-1", feedOrder())
	require.NoError(t, err)
	_, err = svc.Decide(ctx, a.ID, "mgr-1", DecisionInput{Decision: StatusRejected})
	require.NoError(t, err)

	pending, err := svc.List(ctx, records.ListFilter{Status: "PENDING"})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = svc.List(ctx, records.ListFilter{Status: "lost"})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	sum, err := svc.Summary(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, "18129.16", sum[StatusPending].StringFixed(2))
	assert.Equal(t, "18129.16", sum[StatusRejected].StringFixed(2))
	assert.True(t, sum[StatusApproved].IsZero())
}
