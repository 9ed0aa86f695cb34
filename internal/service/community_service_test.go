package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/model"
)

func TestCommunityService_CreateStampsCreatorFromResolver(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	creator := f.createUser(t, "c@x.com")

	cm, err := f.comms.Create(ctx, model.CreateCommunityDTO{
		Name:      "pulse",
		CreatorID: creator.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cm.ID)
	assert.Equal(t, creator.ID, cm.CreatorID)
	assert.Equal(t, creator.XID, cm.CreatorXID)
	assert.False(t, cm.CreatedAt.IsZero())
	assert.Nil(t, cm.LastMessageTime)
}

func TestCommunityService_BountyDefaultsToZeroOtherOptionalsStayNull(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	creator := f.createUser(t, "b@x.com")

	cm, err := f.comms.Create(ctx, model.CreateCommunityDTO{Name: "nobounty", CreatorID: creator.ID})
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(cm.BountyAmount))
	assert.Nil(t, cm.Description)
	assert.Nil(t, cm.ContractAddress)
	assert.Nil(t, cm.TimeLimit)
	assert.Nil(t, cm.BaseFeePercentage)
	assert.Nil(t, cm.WalletAddress)
	assert.Nil(t, cm.ImageURL)
}

func TestCommunityService_CreateRejectsUnresolvedPrincipal(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.comms.Create(ctx, model.CreateCommunityDTO{Name: "x", CreatorID: "garbage"})
	assert.ErrorIs(t, err, identity.ErrMalformedIdentity)

	_, err = f.comms.Create(ctx, model.CreateCommunityDTO{Name: "x", CreatorID: uuid.New().String()})
	assert.ErrorIs(t, err, identity.ErrIdentityNotFound)
}

func TestCommunityService_UpdatePreservesAbsentFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	creator := f.createUser(t, "u@x.com")

	cm, err := f.comms.Create(ctx, model.CreateCommunityDTO{
		Name:        "old",
		Description: strPtr("d"),
		CreatorID:   creator.ID,
	})
	require.NoError(t, err)

	updated, err := f.comms.Update(ctx, cm.ID, model.UpdateCommunityDTO{Name: strPtr("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "d", *updated.Description)
	assert.Equal(t, cm.CreatorID, updated.CreatorID)
	assert.True(t, cm.BountyAmount.Equal(updated.BountyAmount))
}

func TestCommunityService_UpdateMissingCommunity(t *testing.T) {
	f := setup(t)
	_, err := f.comms.Update(context.Background(), uuid.New().String(), model.UpdateCommunityDTO{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrCommunityNotFound)
}

func TestCommunityService_EmptyPatchReturnsCurrentRecord(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	creator := f.createUser(t, "p@x.com")

	cm, err := f.comms.Create(ctx, model.CreateCommunityDTO{Name: "same", CreatorID: creator.ID})
	require.NoError(t, err)

	got, err := f.comms.Update(ctx, cm.ID, model.UpdateCommunityDTO{})
	require.NoError(t, err)
	assert.Equal(t, "same", got.Name)
}

func TestCommunityService_DeleteSecondCallNotFound(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	creator := f.createUser(t, "del@x.com")

	cm, err := f.comms.Create(ctx, model.CreateCommunityDTO{Name: "gone", CreatorID: creator.ID})
	require.NoError(t, err)

	require.NoError(t, f.comms.Delete(ctx, cm.ID))
	assert.ErrorIs(t, f.comms.Delete(ctx, cm.ID), ErrCommunityNotFound)
}

func TestCommunityService_ListByCreator(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.createUser(t, "la@x.com")
	b := f.createUser(t, "lb@x.com")

	_, err := f.comms.Create(ctx, model.CreateCommunityDTO{Name: "A1", CreatorID: a.ID})
	require.NoError(t, err)
	_, err = f.comms.Create(ctx, model.CreateCommunityDTO{Name: "A2", CreatorID: a.ID})
	require.NoError(t, err)
	_, err = f.comms.Create(ctx, model.CreateCommunityDTO{Name: "B1", CreatorID: b.ID})
	require.NoError(t, err)

	mine, err := f.comms.ListByCreator(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, cm := range mine {
		assert.Equal(t, a.ID, cm.CreatorID)
	}
}
