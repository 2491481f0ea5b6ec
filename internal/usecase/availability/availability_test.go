package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
)

var (
	barber      = identity.Identity{UserID: "b1", Role: identity.RoleBarber}
	otherBarber = identity.Identity{UserID: "b2", Role: identity.RoleBarber}
	client      = identity.Identity{UserID: "c1", Role: identity.RoleClient}
	admin       = identity.Identity{UserID: "adm", Role: identity.RoleAdmin}
)

func newManager() (*AddSlot, *RemoveSlot, *ListSlots, *infraRepo.SlotMemoryRepository) {
	slots := infraRepo.NewSlotMemoryRepository()
	dispatcher := audit.NewDispatcher(audit.Discard{})

	return NewAddSlot(slots, dispatcher),
		NewRemoveSlot(slots, dispatcher),
		NewListSlots(slots),
		slots
}

func TestAddSlot_ByOwnerBarber(t *testing.T) {
	addSlot, _, _, _ := newManager()

	slot, err := addSlot.Execute(context.Background(), barber, AddSlotInput{
		BarberID: "b1",
		Date:     "2030-10-26",
		Time:     "09:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "b1", slot.BarberID)
	assert.True(t, slot.Available)
}

func TestAddSlot_ByAdminOnBehalf(t *testing.T) {
	addSlot, _, _, _ := newManager()

	slot, err := addSlot.Execute(context.Background(), admin, AddSlotInput{
		BarberID: "b1",
		Date:     "2030-10-26",
		Time:     "09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", slot.BarberID)
}

func TestAddSlot_ForbiddenForClientAndForeignBarber(t *testing.T) {
	addSlot, _, _, _ := newManager()

	in := AddSlotInput{BarberID: "b1", Date: "2030-10-26", Time: "09:00"}

	_, err := addSlot.Execute(context.Background(), client, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	_, err = addSlot.Execute(context.Background(), otherBarber, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestAddSlot_Duplicate(t *testing.T) {
	addSlot, _, _, _ := newManager()
	in := AddSlotInput{BarberID: "b1", Date: "2030-10-26", Time: "09:00"}

	_, err := addSlot.Execute(context.Background(), barber, in)
	require.NoError(t, err)

	_, err = addSlot.Execute(context.Background(), barber, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateSlot))
}

func TestAddSlot_InvalidDateOrTime(t *testing.T) {
	addSlot, _, _, _ := newManager()

	for _, in := range []AddSlotInput{
		{BarberID: "b1", Date: "26/10/2030", Time: "09:00"},
		{BarberID: "b1", Date: "2030-10-26", Time: "9h"},
		{BarberID: "b1", Date: "", Time: "09:00"},
	} {
		_, err := addSlot.Execute(context.Background(), barber, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "input %+v", in)
	}
}

func TestAddSlot_InThePast(t *testing.T) {
	addSlot, _, _, _ := newManager()

	_, err := addSlot.Execute(context.Background(), barber, AddSlotInput{
		BarberID: "b1",
		Date:     "2020-01-01",
		Time:     "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_in_past"))
}

func TestRemoveSlot_WhileAvailable(t *testing.T) {
	addSlot, removeSlot, listSlots, _ := newManager()

	slot, err := addSlot.Execute(context.Background(), barber, AddSlotInput{
		BarberID: "b1", Date: "2030-10-26", Time: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, removeSlot.Execute(context.Background(), barber, slot.ID))

	out, err := listSlots.Execute(context.Background(), ListSlotsInput{BarberID: "b1"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRemoveSlot_InUse(t *testing.T) {
	addSlot, removeSlot, _, slots := newManager()

	slot, err := addSlot.Execute(context.Background(), barber, AddSlotInput{
		BarberID: "b1", Date: "2030-10-26", Time: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, slots.Reserve(context.Background(), slot.ID))

	err = removeSlot.Execute(context.Background(), barber, slot.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotInUse))
}

func TestRemoveSlot_NotFound(t *testing.T) {
	_, removeSlot, _, _ := newManager()

	err := removeSlot.Execute(context.Background(), barber, "missing")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotFound))
}

func TestRemoveSlot_Forbidden(t *testing.T) {
	addSlot, removeSlot, _, _ := newManager()

	slot, err := addSlot.Execute(context.Background(), barber, AddSlotInput{
		BarberID: "b1", Date: "2030-10-26", Time: "09:00",
	})
	require.NoError(t, err)

	err = removeSlot.Execute(context.Background(), otherBarber, slot.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	err = removeSlot.Execute(context.Background(), client, slot.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestListSlots_OrderedByDateTime(t *testing.T) {
	addSlot, _, listSlots, _ := newManager()
	ctx := context.Background()

	for _, s := range []AddSlotInput{
		{BarberID: "b1", Date: "2030-10-27", Time: "14:00"},
		{BarberID: "b1", Date: "2030-10-26", Time: "10:00"},
		{BarberID: "b1", Date: "2030-10-26", Time: "09:00"},
		{BarberID: "b1", Date: "2030-10-28", Time: "08:00"},
	} {
		_, err := addSlot.Execute(ctx, barber, s)
		require.NoError(t, err)
	}

	out, err := listSlots.Execute(ctx, ListSlotsInput{BarberID: "b1"})
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "09:00", out[0].Time)
	assert.Equal(t, "10:00", out[1].Time)
	assert.Equal(t, "2030-10-27", out[2].Date)
	assert.Equal(t, "2030-10-28", out[3].Date)
}

func TestListSlots_DateRange(t *testing.T) {
	addSlot, _, listSlots, _ := newManager()
	ctx := context.Background()

	for _, s := range []AddSlotInput{
		{BarberID: "b1", Date: "2030-10-26", Time: "09:00"},
		{BarberID: "b1", Date: "2030-10-27", Time: "09:00"},
		{BarberID: "b1", Date: "2030-10-28", Time: "09:00"},
	} {
		_, err := addSlot.Execute(ctx, barber, s)
		require.NoError(t, err)
	}

	out, err := listSlots.Execute(ctx, ListSlotsInput{
		BarberID: "b1",
		From:     "2030-10-27",
		To:       "2030-10-27",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2030-10-27", out[0].Date)

	_, err = listSlots.Execute(ctx, ListSlotsInput{BarberID: "b1", From: "nope"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
