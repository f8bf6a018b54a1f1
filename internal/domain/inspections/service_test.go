package inspections

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

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func newTestService() *Service {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 9, 6, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Inspection](), clock)
}

func TestClassify_Water(t *testing.T) {
	cases := []struct {
		ph, tds string
		want    Result
	}{
		{"6.0", "3000", ResultPass},
		{"8.5", "120", ResultPass},
		{"5.99", "500", ResultFail},
		{"8.51", "500", ResultFail},
		{"7.2", "3000.1", ResultFail},
	}
	for _, tc := range cases {
		got := Classify(Inspection{Kind: KindWater, PH: dec(tc.ph), TDSPPM: dec(tc.tds)})
		assert.Equal(t, tc.want, got, "ph=%s tds=%s", tc.ph, tc.tds)
	}
}

func TestClassify_Feed(t *testing.T) {
	assert.Equal(t, ResultPass, Classify(Inspection{Kind: KindFeed, MoisturePercent: dec("14")}))
	assert.Equal(t, ResultFail, Classify(Inspection{Kind: KindFeed, MoisturePercent: dec("14.2")}))
}

func TestService_Create_RequiresMeasurementsForKind(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "sup-1", Input{Kind: KindWater, Source: "Borewell 2", PH: dec("7")})
	assert.ErrorContains(t, err, "tds_ppm is required")

	_, err = svc.Create(ctx, "sup-1", Input{Kind: KindFeed, Source: "Silage pit A", PH: dec("7")})
	assert.ErrorContains(t, err, "moisture_percent is required")

	_, err = svc.Create(ctx, "sup-1", Input{Kind: "milk", Source: "Tank"})
	assert.ErrorIs(t, err, records.ErrInvalidInput)
}

func TestService_Create_StoresOnlyKindMeasurements(t *testing.T) {
	svc := newTestService()

	i, err := svc.Create(context.Background(), "insp-1", Input{
		Kind:            KindFeed,
		Source:          "Silage pit A",
		MoisturePercent: dec("16.5"),
		PH:              dec("4.1"),
	})
	require.NoError(t, err)
	assert.Equal(t, ResultFail, i.Result)
	assert.False(t, i.PH.Valid)
	assert.Equal(t, "insp-1", i.Inspector)
	assert.Equal(t, []string{"moisture 16.5% above 14%"}, i.Findings())
}

func TestService_UpdateReclassifiesAndFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := Input{Kind: KindWater, Source: "Borewell 2", PH: dec("9.1"), TDSPPM: dec("800")}
	i, err := svc.Create(ctx, "sup-1", in)
	require.NoError(t, err)
	assert.Equal(t, ResultFail, i.Result)

	failed, err := svc.List(ctx, records.ListFilter{Status: "fail"})
	require.NoError(t, err)
	assert.Len(t, failed, 1)

	in.PH = dec("7.4")
	u, err := svc.Update(ctx, i.ID, in)
	require.NoError(t, err)
	assert.Equal(t, ResultPass, u.Result)

	failed, err = svc.List(ctx, records.ListFilter{Status: "fail"})
	require.NoError(t, err)
	assert.Empty(t, failed)
}
