package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/models"
	"github.com/dmitrijs2005/realverse/internal/client/seed"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func characterID(c models.Character) string { return c.ID }

func TestCharacterService_AddListGet(t *testing.T) {
	m := medium.NewMemory()
	svc := NewCharacterService(newCollection(t, m, store.KeyCharacters, seed.Characters(), characterID))
	ctx := context.Background()

	require.Len(t, svc.List(), 3)

	ch, err := svc.Add(ctx, models.CharacterDraft{
		Name:  "Ren Takeda",
		Anime: "Iron Harbor",
		Role:  "Rival",
		Tags:  models.ParseTags("stoic, swordsman, stoic"),
	})
	require.NoError(t, err)
	require.Len(t, ch.Items, 4)
	assert.Equal(t, "Ren Takeda", ch.Items[0].Name)
	assert.Equal(t, []string{"stoic", "swordsman"}, ch.Entity.Tags)

	got, err := svc.Get(ch.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, ch.Entity, got)

	c2, err := svc.Get("c2")
	require.NoError(t, err)
	assert.Equal(t, "Hayato Inoue", c2.Name)
}

func TestCharacterService_GetMissing(t *testing.T) {
	svc := NewCharacterService(newCollection(t, medium.NewMemory(), store.KeyCharacters, seed.Characters(), characterID))
	_, err := svc.Get("nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCharacterService_AddRejectsInvalidDraft(t *testing.T) {
	m := medium.NewMemory()
	svc := NewCharacterService(newCollection(t, m, store.KeyCharacters, seed.Characters(), characterID))

	_, err := svc.Add(context.Background(), models.CharacterDraft{Name: "No anime"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Len(t, svc.List(), 3)

	_, ok, _ := m.Get(context.Background(), store.KeyCharacters)
	assert.False(t, ok)
}
