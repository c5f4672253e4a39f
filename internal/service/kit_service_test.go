package service

import (
	"context"
	"testing"

	"github.com/gobro228/ambulance-site/internal/model"
	"github.com/gobro228/ambulance-site/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByCallTypeMissingKitIsNotAnError(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(nil)
	svc := NewKitService(f.kits, f.items)

	resp, err := svc.GetByCallType(ctx, "Красный поток")
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Kit)
}

func TestGetByCallTypeEnrichesWithLiveAvailability(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(nil)
	svc := NewKitService(f.kits, f.items)

	bandage := f.addItem(t, "bandage", 80, 20)
	gloves := f.addItem(t, "gloves", 3, 10)

	kit := &model.Kit{
		Name:     "Базовый набор",
		CallType: "Зелёный поток",
		Items: []model.KitItem{
			{ItemID: bandage.ID, Quantity: 2, Required: true},
			{ItemID: gloves.ID, Quantity: 1, Required: false},
		},
	}
	require.NoError(t, f.kits.Create(ctx, kit))

	resp, err := svc.GetByCallType(ctx, "Зелёный поток")
	require.NoError(t, err)
	require.True(t, resp.Found)
	require.Len(t, resp.Kit.Items, 2)

	assert.Equal(t, "bandage", resp.Kit.Items[0].Name)
	assert.Equal(t, 80, resp.Kit.Items[0].Available)
	assert.Equal(t, 2, resp.Kit.Items[0].Quantity)
	assert.True(t, resp.Kit.Items[0].Required)

	assert.Equal(t, "gloves", resp.Kit.Items[1].Name)
	assert.Equal(t, 3, resp.Kit.Items[1].Available)

	// Availability is a read-time join: deduct and look again.
	require.NoError(t, f.items.AdjustQuantity(ctx, bandage.ID, -30))
	resp, err = svc.GetByCallType(ctx, "Зелёный поток")
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Kit.Items[0].Available)
}

func TestSeedDefaultKitsSkipsUnresolvedItems(t *testing.T) {
	ctx := context.Background()
	f := newStockFixture(nil)
	svc := NewKitService(f.kits, f.items)

	f.addItem(t, "bandage", 100, 20)

	fixtures := []seed.KitFixture{{
		Name:     "Пробный набор",
		CallType: "Жёлтый поток",
		Items: []seed.KitItemFixture{
			{ItemName: "bandage", Quantity: 2, Required: true},
			{ItemName: "no_such_item", Quantity: 1, Required: true},
		},
	}}
	require.NoError(t, svc.SeedDefaultKits(ctx, fixtures))

	kits, err := f.kits.List(ctx)
	require.NoError(t, err)
	require.Len(t, kits, 1)
	// Unresolved reference dropped, resolved one kept.
	require.Len(t, kits[0].Items, 1)
	assert.Equal(t, 2, kits[0].Items[0].Quantity)

	// Re-seeding the same fixture does not duplicate the kit.
	require.NoError(t, svc.SeedDefaultKits(ctx, fixtures))
	kits, _ = f.kits.List(ctx)
	assert.Len(t, kits, 1)
}
