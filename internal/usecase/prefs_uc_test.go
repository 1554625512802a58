package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehub/luxehub/internal/domain"
)

func TestPrefsDefaults(t *testing.T) {
	uc := NewPrefsUC(context.Background(), newMemStore())
	assert.Equal(t, domain.RegionUSA, uc.Region())
	assert.True(t, uc.ConfirmBeforeVisit())
}

func TestPrefsMalformedTokensKeepDefaults(t *testing.T) {
	store := newMemStore()
	store.m[domain.KeyRegion] = "Atlantis"
	store.m[domain.KeyConfirmVisit] = "maybe"
	uc := NewPrefsUC(context.Background(), store)
	assert.Equal(t, domain.RegionUSA, uc.Region())
	assert.True(t, uc.ConfirmBeforeVisit())
}

func TestPrefsPersistIndependently(t *testing.T) {
	store := newMemStore()
	uc := NewPrefsUC(context.Background(), store)

	require.NoError(t, uc.SetRegion(context.Background(), domain.RegionEurope))
	require.NoError(t, uc.SetConfirmBeforeVisit(context.Background(), false))
	assert.Equal(t, "Europe", store.m[domain.KeyRegion])
	assert.Equal(t, "false", store.m[domain.KeyConfirmVisit])

	reloaded := NewPrefsUC(context.Background(), store)
	assert.Equal(t, domain.RegionEurope, reloaded.Region())
	assert.False(t, reloaded.ConfirmBeforeVisit())
}

func TestPrefsReset(t *testing.T) {
	store := newMemStore()
	uc := NewPrefsUC(context.Background(), store)
	require.NoError(t, uc.SetRegion(context.Background(), domain.RegionChina))
	require.NoError(t, uc.SetConfirmBeforeVisit(context.Background(), false))

	require.NoError(t, uc.ResetAll(context.Background()))
	assert.Equal(t, domain.RegionUSA, uc.Region())
	assert.True(t, uc.ConfirmBeforeVisit())
}
