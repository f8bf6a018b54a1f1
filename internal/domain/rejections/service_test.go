package rejections

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
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 20, 5, 45, 0, 0, time.UTC))
	return NewService(memory.NewStore[Rejection](), clock)
}

func acidBatch(liters, rate string) Input {
	return Input{
		Source:         "Village collection route 3",
		QuantityLiters: decimal.RequireFromString(liters),
		Reason:         ReasonHighAcidity,
		FatPercent:     decimal.NewNullDecimal(decimal.RequireFromString("3.8")),
		RatePerLiter:   decimal.RequireFromString(rate),
	}
}

func TestService_Create_ComputesLoss(t *testing.T) {
	svc := newTestService()

	r, err := svc.Create(context.Background(), "qc-1", acidBatch("42.5", "38.75"))
	require.NoError(t, err)
	assert.Equal(t, "1646.88", r.LossAmount.StringFixed(2))
	assert.Equal(t, "qc-1", r.RejectedBy)
	assert.False(t, r.SNFPercent.Valid)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := acidBatch("0", "38")
	_, err := svc.Create(ctx, "qc-1", in)
	assert.ErrorContains(t, err, "quantity_liters must be greater than 0")

	in = acidBatch("10", "38")
	in.Reason = "smelly"
	_, err = svc.Create(ctx, "qc-1", in)
	assert.ErrorContains(t, err, "reason must be one of")

	in = acidBatch("10", "38")
	in.SNFPercent = decimal.NewNullDecimal(decimal.NewFromInt(101))
	_, err = svc.Create(ctx, "qc-1", in)
	assert.ErrorContains(t, err, "snf_percent must be between 0 and 100")
}

func TestService_ListByReasonAndSummary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "qc-1", acidBatch("10", "40"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "qc-1", acidBatch("5", "40"))
	require.NoError(t, err)
	fat := acidBatch("8", "40")
	fat.Reason = ReasonLowFat
	lowFat, err := svc.Create(ctx, "qc-1", fat)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, lowFat.ID)
	require.NoError(t, err)

	acid, err := svc.List(ctx, records.ListFilter{Status: "high_acidity"})
	require.NoError(t, err)
	assert.Len(t, acid, 2)

	sum, err := svc.Summary(ctx, records.ListFilter{})
	require.NoError(t, err)
	require.Len(t, sum, 1, "inactive rows are left out")
	assert.Equal(t, ReasonHighAcidity, sum[0].Reason)
	assert.Equal(t, 2, sum[0].Count)
	assert.Equal(t, "15", sum[0].Liters.String())
	assert.Equal(t, "600.00", sum[0].LossAmount.StringFixed(2))
}
