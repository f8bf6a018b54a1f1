package calffeedings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dairy-records/internal/adapters/storage/memory"
	"dairy-records/internal/domain/records"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type knownAnimals map[string]bool

func (k knownAnimals) Exists(_ context.Context, id string) (bool, error) {
	return k[id], nil
}

func newTestService() *Service {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Feeding](), knownAnimals{"ANM010": true, "ANM011": true}, clock)
}

func feed(calf, day string, session Session, kind FeedType, liters string) Input {
	return Input{
		CalfID:         calf,
		FedOn:          day,
		Session:        session,
		FeedType:       kind,
		QuantityLiters: decimal.RequireFromString(liters),
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "hand-1", feed("ANM010", "", "dawn", FeedColostrum, "2"))
	assert.ErrorContains(t, err, "session must be one of")

	_, err = svc.Create(ctx, "hand-1", feed("ANM010", "", SessionMorning, "water", "2"))
	assert.ErrorContains(t, err, "feed_type must be one of")

	_, err = svc.Create(ctx, "hand-1", feed("ANM010", "", SessionMorning, FeedColostrum, "0"))
	assert.ErrorContains(t, err, "quantity_liters must be greater than 0")

	_, err = svc.Create(ctx, "hand-1", feed("ANM999", "", SessionMorning, FeedColostrum, "2"))
	assert.ErrorContains(t, err, "calf ANM999 does not exist")

	f, err := svc.Create(ctx, "hand-1", feed("anm010", "", SessionMorning, FeedColostrum, "2"))
	require.NoError(t, err)
	assert.Equal(t, "ANM010", f.CalfID)
	assert.Equal(t, "hand-1", f.FedBy)
	assert.Equal(t, "2025-11-03", records.FormatDate(f.FedOn))
}

func TestService_Summary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, in := range []Input{
		feed("ANM010", "2025-11-01", SessionMorning, FeedColostrum, "2"),
		feed("ANM010", "2025-11-01", SessionEvening, FeedColostrum, "1.5"),
		feed("ANM010", "2025-11-02", SessionMorning, FeedWholeMilk, "3"),
		feed("ANM010", "2025-11-02", SessionEvening, FeedColostrum, "0.5"),
		feed("ANM011", "2025-11-02", SessionMorning, FeedColostrum, "4"),
	} {
		_, err := svc.Create(ctx, "hand-1", in)
		require.NoError(t, err)
	}
	hidden, err := svc.Create(ctx, "hand-1", feed("ANM010", "2025-11-02", SessionNight, FeedWholeMilk, "9"))
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, hidden.ID)
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, "anm010", records.ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, "ANM010", sum.CalfID)
	require.Len(t, sum.Days, 2)
	assert.Equal(t, "2025-11-02", records.FormatDate(sum.Days[0].Date))
	assert.Equal(t, "3.5", sum.Days[0].Liters.String())
	assert.Equal(t, "3.5", sum.Days[1].Liters.String())
	assert.Equal(t, "7", sum.TotalLiters.String())
	assert.Equal(t, "4", sum.ColostrumTotal.String())

	_, err = svc.Summary(ctx, " ", records.ListFilter{})
	assert.ErrorIs(t, err, records.ErrInvalidInput)
}

func TestService_Summary_NoFeedings(t *testing.T) {
	svc := newTestService()

	sum, err := svc.Summary(context.Background(), "ANM099", records.ListFilter{})
	require.NoError(t, err)

	require.NotNil(t, sum.Days)
	assert.Empty(t, sum.Days)
	assert.True(t, sum.TotalLiters.IsZero())

	raw, err := json.Marshal(sum)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Days":[]`)
}

func TestService_ListByCalfAndFeedType(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "hand-1", feed("ANM010", "2025-11-01", SessionMorning, FeedColostrum, "2"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "hand-1", feed("ANM011", "2025-11-01", SessionMorning, FeedStarter, "1"))
	require.NoError(t, err)

	got, err := svc.List(ctx, records.ListFilter{AnimalID: "ANM011", Status: "starter"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, FeedStarter, got[0].FeedType)
}
