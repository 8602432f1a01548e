package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/reelsim/internal/data"
	"github.com/udisondev/reelsim/internal/model"
	"github.com/udisondev/reelsim/internal/session"
)

func TestCatchRepository(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	require.NoError(t, NewProgressRepository(pool).Save(ctx, freshProgress("gar")))
	repo := NewCatchRepository(pool)

	events := []session.CatchEvent{
		{Player: "gar", SpeciesID: "azure_trout", Rarity: data.RarityCommon, Outcome: model.OutcomeCaught, Hour: 6.5},
		{Player: "gar", SpeciesID: "azure_trout", Rarity: data.RarityCommon, Outcome: model.OutcomeCaught, Hour: 7},
		{Player: "gar", SpeciesID: "voltaic_eel", Rarity: data.RarityLegendary, Outcome: model.OutcomeSnapped, Hour: 21},
		{Player: "gar", SpeciesID: "sylvan_koi", Rarity: data.RarityCommon, Outcome: model.OutcomeCaught, Hour: 22},
	}
	for _, ev := range events {
		require.NoError(t, repo.Record(ctx, ev))
	}

	counts, err := repo.CountBySpecies(ctx, "gar")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"azure_trout": 2, "sylvan_koi": 1}, counts)

	recent, err := repo.Recent(ctx, "gar", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "sylvan_koi", recent[0].SpeciesID)
	assert.Equal(t, model.OutcomeCaught, recent[0].Outcome)
	assert.Equal(t, 22.0, recent[0].WorldHour)
	assert.Equal(t, "voltaic_eel", recent[1].SpeciesID)
	assert.Equal(t, data.RarityLegendary, recent[1].Rarity)
	assert.Equal(t, model.OutcomeSnapped, recent[1].Outcome)
}

func TestCatchRepository_UnknownPlayer(t *testing.T) {
	repo := NewCatchRepository(setupTestDB(t))

	err := repo.Record(context.Background(), session.CatchEvent{
		Player: "ghost", SpeciesID: "azure_trout", Rarity: data.RarityCommon, Outcome: model.OutcomeCaught,
	})
	assert.Error(t, err)
}

func TestCatchRepository_EmptyLog(t *testing.T) {
	ctx := context.Background()
	repo := NewCatchRepository(setupTestDB(t))

	counts, err := repo.CountBySpecies(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, counts)

	recent, err := repo.Recent(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
