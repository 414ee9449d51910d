package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/utils"
)

func newPressService(t *testing.T) (*PressService, *fixture) {
	t.Helper()
	db := setupTestDB(t)
	log := testLogger()
	calc := NewRoundCalculator(db, nil, log, 100000, 0)
	svc := NewPressService(db, calc, log)
	return svc, seedNassauRound(t, db)
}

func TestOpenPress(t *testing.T) {
	svc, f := newPressService(t)

	press, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PressActive, press.State)
	assert.Equal(t, f.players[1].ID, press.InitiatorID)
	assert.Equal(t, 1, press.BetMultiplier)
}

func TestOpenPressRejectsNonParticipant(t *testing.T) {
	svc, f := newPressService(t)

	_, err := svc.OpenPress(context.Background(), uuid.New(), f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestOpenPressRejectsWrongGameType(t *testing.T) {
	svc, f := newPressService(t)

	skins := models.Game{RoundID: f.round.ID, Type: models.GameSkins, BetCents: 100}
	require.NoError(t, svc.db.Create(&skins).Error)
	for slot, rp := range f.players {
		require.NoError(t, svc.db.Create(&models.GamePlayer{
			GameID:   skins.ID,
			PlayerID: rp.ID,
			Slot:     slot,
		}).Error)
	}

	_, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    skins.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodePressState, appErr.Code)
}

func TestOpenPressRejectsStartHoleOutsideSegment(t *testing.T) {
	svc, f := newPressService(t)

	_, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 12,
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodeValidation, appErr.Code)
}

func TestOpenPressRejectsWrongRound(t *testing.T) {
	svc, f := newPressService(t)

	_, err := svc.OpenPress(context.Background(), f.users[1].ID, uuid.New(), OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestOpenRePressRequiresActiveParent(t *testing.T) {
	svc, f := newPressService(t)

	parent, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 3,
	})
	require.NoError(t, err)

	// Nested press further into the segment works while the parent is live.
	child, err := svc.OpenPress(context.Background(), f.users[0].ID, f.round.ID, OpenPressRequest{
		GameID:        f.game.ID,
		Segment:       models.SegmentFront,
		StartHole:     6,
		ParentPressID: &parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *child.ParentPressID)

	// Once the parent is canceled no further re-press can hang off it.
	_, err = svc.CancelPress(context.Background(), f.users[1].ID, parent.ID)
	require.NoError(t, err)

	_, err = svc.OpenPress(context.Background(), f.users[0].ID, f.round.ID, OpenPressRequest{
		GameID:        f.game.ID,
		Segment:       models.SegmentFront,
		StartHole:     8,
		ParentPressID: &parent.ID,
	})
	assert.ErrorIs(t, err, utils.ErrPressNotActive)
}

func TestCancelPress(t *testing.T) {
	svc, f := newPressService(t)

	press, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	require.NoError(t, err)

	canceled, err := svc.CancelPress(context.Background(), f.users[1].ID, press.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PressCanceled, canceled.State)

	// Second cancel finds a terminal press.
	_, err = svc.CancelPress(context.Background(), f.users[1].ID, press.ID)
	assert.ErrorIs(t, err, utils.ErrPressNotActive)
}

func TestCancelPressByRoundCreator(t *testing.T) {
	svc, f := newPressService(t)

	press, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	require.NoError(t, err)

	// users[0] created the round and may cancel any press in it.
	_, err = svc.CancelPress(context.Background(), f.users[0].ID, press.ID)
	assert.NoError(t, err)
}

func TestCancelPressByOutsiderForbidden(t *testing.T) {
	svc, f := newPressService(t)

	press, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	require.NoError(t, err)

	_, err = svc.CancelPress(context.Background(), uuid.New(), press.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestOpenPressOnFinalizedRound(t *testing.T) {
	svc, f := newPressService(t)

	require.NoError(t, svc.db.Model(&models.Round{}).
		Where("id = ?", f.round.ID).
		Update("status", models.RoundCompleted).Error)

	_, err := svc.OpenPress(context.Background(), f.users[1].ID, f.round.ID, OpenPressRequest{
		GameID:    f.game.ID,
		Segment:   models.SegmentFront,
		StartHole: 5,
	})
	assert.ErrorIs(t, err, utils.ErrRoundFinalized)
}
