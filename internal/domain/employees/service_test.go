package employees

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
	clock := clockwork.NewFakeClockAt(time.Date(2025, 2, 3, 7, 0, 0, 0, time.UTC))
	return NewService(memory.NewStore[Employee](), clock)
}

func milker(name string) Input {
	return Input{
		Name:          name,
		Role:          "Milker",
		Phone:         "+91 98450 11111",
		Email:         "milker@farm.test",
		MonthlySalary: decimal.RequireFromString("18500.456"),
	}
}

func TestService_Create(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	e, err := svc.Create(ctx, "sup-1", milker("Suresh"))
	require.NoError(t, err)
	assert.Equal(t, "EMP001", e.ID)
	assert.Equal(t, "18500.46", e.MonthlySalary.StringFixed(2))
	assert.Equal(t, "2025-02-03", records.FormatDate(e.JoinedOn))

	e2, err := svc.Create(ctx, "sup-1", milker("Anil"))
	require.NoError(t, err)
	assert.Equal(t, "EMP002", e2.ID)

	next, err := svc.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EMP003", next)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bad := []func(*Input){
		func(in *Input) { in.Name = "" },
		func(in *Input) { in.Role = "" },
		func(in *Input) { in.Email = "not-an-email" },
		func(in *Input) { in.MonthlySalary = decimal.NewFromInt(-1) },
		func(in *Input) { in.JoinedOn = "2025-13-01" },
	}
	for i, mutate := range bad {
		in := milker("Suresh")
		mutate(&in)
		_, err := svc.Create(ctx, "sup-1", in)
		assert.ErrorIs(t, err, records.ErrInvalidInput, "case %d", i)
	}
}

func TestService_ListSearch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "sup-1", milker("Suresh"))
	require.NoError(t, err)
	vet := milker("Dr. Rao")
	vet.Role = "Veterinarian"
	vet.Email = "rao@vets.test"
	_, err = svc.Create(ctx, "sup-1", vet)
	require.NoError(t, err)

	got, err := svc.List(ctx, records.ListFilter{Query: "VETS.test"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Rao", got[0].Name)

	tbl, err := svc.Table(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestService_IDLookupIgnoresCase(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "sup-1", milker("Suresh"))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "emp001")
	require.NoError(t, err)
	assert.Equal(t, "Suresh", got.Name)

	toggled, err := svc.Toggle(ctx, " emp001")
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	require.NoError(t, svc.Delete(ctx, "Emp001"))
}
