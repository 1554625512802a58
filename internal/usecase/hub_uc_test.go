package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehub/luxehub/internal/domain"
)

func newHub(t *testing.T) (*HubUC, *memStore) {
	t.Helper()
	store := newMemStore()
	return NewHubUC(context.Background(), store), store
}

func TestNewHubUCSeedsWhenStoreEmpty(t *testing.T) {
	uc, _ := newHub(t)
	brands := uc.Brands()
	require.Len(t, brands, len(domain.SeedBrands()))
	assert.Equal(t, "Chanel", brands[0].Name)
}

func TestNewHubUCSeedsOnMalformedStore(t *testing.T) {
	store := newMemStore()
	store.m[domain.KeyBrands] = "{not json"
	uc := NewHubUC(context.Background(), store)
	assert.Len(t, uc.Brands(), len(domain.SeedBrands()))
}

func TestAddBrandAppendsAndNormalizes(t *testing.T) {
	uc, store := newHub(t)
	before := len(uc.Brands())

	b, err := uc.AddBrand(context.Background(), "Celine Vintage", "celine-vintage.com", domain.CategoryCustom)
	require.NoError(t, err)

	brands := uc.Brands()
	require.Len(t, brands, before+1)
	assert.Equal(t, b.ID, brands[len(brands)-1].ID, "new brand goes last")
	assert.Equal(t, "https://celine-vintage.com", b.URL)
	assert.Equal(t, "https://logo.clearbit.com/celine-vintage.com", b.Logo)
	assert.NotEmpty(t, store.m[domain.KeyBrands], "mutation persisted")
}

func TestAddBrandKeepsExistingScheme(t *testing.T) {
	uc, _ := newHub(t)
	b, err := uc.AddBrand(context.Background(), "X", "http://x.example", domain.CategoryStreetwear)
	require.NoError(t, err)
	assert.Equal(t, "http://x.example", b.URL)
}

func TestAddBrandDegradesLogoOnMalformedURL(t *testing.T) {
	uc, _ := newHub(t)
	// No extractable hostname; the raw string becomes the lookup key.
	b, err := uc.AddBrand(context.Background(), "Weird", "http://%zz", domain.CategoryCustom)
	require.NoError(t, err, "addBrand never fails on a malformed URL")
	assert.Equal(t, "https://logo.clearbit.com/http://%zz", b.Logo)
}

func TestRemoveBrand(t *testing.T) {
	uc, _ := newHub(t)
	id := uc.Brands()[0].ID
	before := len(uc.Brands())

	require.NoError(t, uc.RemoveBrand(context.Background(), id, decline))
	assert.Len(t, uc.Brands(), before, "declined confirmation is a no-op")

	require.NoError(t, uc.RemoveBrand(context.Background(), "no-such-id", accept))
	assert.Len(t, uc.Brands(), before, "unknown id is a no-op")

	require.NoError(t, uc.RemoveBrand(context.Background(), id, accept))
	brands := uc.Brands()
	assert.Len(t, brands, before-1)
	for _, b := range brands {
		assert.NotEqual(t, id, b.ID)
	}
}

func TestMoveBrandSwapsAndStopsAtBounds(t *testing.T) {
	store := newMemStore()
	store.m[domain.KeyBrands] = `[{"id":"a","name":"A"},{"id":"b","name":"B"},{"id":"c","name":"C"}]`
	uc := NewHubUC(context.Background(), store)

	require.NoError(t, uc.MoveBrand(context.Background(), "b", domain.MoveUp))
	assert.Equal(t, []string{"b", "a", "c"}, brandIDs(uc))

	// b is now first; moving up again is a no-op.
	require.NoError(t, uc.MoveBrand(context.Background(), "b", domain.MoveUp))
	assert.Equal(t, []string{"b", "a", "c"}, brandIDs(uc))

	require.NoError(t, uc.MoveBrand(context.Background(), "c", domain.MoveDown))
	assert.Equal(t, []string{"b", "a", "c"}, brandIDs(uc))

	require.NoError(t, uc.MoveBrand(context.Background(), "missing", domain.MoveDown))
	assert.Equal(t, []string{"b", "a", "c"}, brandIDs(uc))
}

func TestMoveBrandHighlightExpires(t *testing.T) {
	store := newMemStore()
	store.m[domain.KeyBrands] = `[{"id":"a"},{"id":"b"}]`
	uc := NewHubUC(context.Background(), store)
	uc.highlightTTL = 20 * time.Millisecond

	require.NoError(t, uc.MoveBrand(context.Background(), "b", domain.MoveUp))
	assert.Equal(t, "b", uc.RecentlyMoved())

	assert.Eventually(t, func() bool { return uc.RecentlyMoved() == "" },
		time.Second, 5*time.Millisecond)
}

func TestMoveBrandHighlightSuperseded(t *testing.T) {
	store := newMemStore()
	store.m[domain.KeyBrands] = `[{"id":"a"},{"id":"b"},{"id":"c"}]`
	uc := NewHubUC(context.Background(), store)
	uc.highlightTTL = 30 * time.Millisecond

	require.NoError(t, uc.MoveBrand(context.Background(), "c", domain.MoveUp))
	require.NoError(t, uc.MoveBrand(context.Background(), "b", domain.MoveDown))
	// The first move's pending clear must not wipe the newer mark early.
	assert.Equal(t, "b", uc.RecentlyMoved())
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "b", uc.RecentlyMoved())
}

func TestBrandsRoundTripThroughStore(t *testing.T) {
	store := newMemStore()
	uc := NewHubUC(context.Background(), store)
	_, err := uc.AddBrand(context.Background(), "New House", "newhouse.com", domain.CategoryAccessories)
	require.NoError(t, err)
	want := uc.Brands()

	reloaded := NewHubUC(context.Background(), store)
	assert.Equal(t, want, reloaded.Brands(), "order and fields preserved")
}

func TestByCategory(t *testing.T) {
	uc, _ := newHub(t)
	_, err := uc.AddBrand(context.Background(), "Street", "street.com", domain.CategoryStreetwear)
	require.NoError(t, err)

	assert.Len(t, uc.ByCategory(domain.CategoryAll), len(domain.SeedBrands())+1)
	street := uc.ByCategory(domain.CategoryStreetwear)
	require.Len(t, street, 1)
	assert.Equal(t, "Street", street[0].Name)
}

func TestResetAllRestoresSeeds(t *testing.T) {
	uc, _ := newHub(t)
	_, err := uc.AddBrand(context.Background(), "Extra", "extra.com", domain.CategoryCustom)
	require.NoError(t, err)
	require.NoError(t, uc.ResetAll(context.Background()))
	assert.Equal(t, domain.SeedBrands(), uc.Brands())
}

func brandIDs(uc *HubUC) []string {
	var ids []string
	for _, b := range uc.Brands() {
		ids = append(ids, b.ID)
	}
	return ids
}
