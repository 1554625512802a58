package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxehub/luxehub/internal/domain"
)

func TestSetViewResetsManageModes(t *testing.T) {
	vs := NewViewState()
	require.True(t, vs.ToggleManageHub())

	vs.SetView(ViewWardrobe)
	require.True(t, vs.ToggleManageWardrobe())

	vs.SetView(ViewHub)
	assert.False(t, vs.ManagingHub())
	assert.False(t, vs.ManagingWardrobe())
	assert.Equal(t, ViewHub, vs.View())
}

func TestSelectBrandIgnoredWhileManaging(t *testing.T) {
	vs := NewViewState()
	vs.ToggleManageHub()

	got := vs.SelectBrand(domain.Brand{ID: "1", Name: "Chanel"}, true)
	assert.Equal(t, SelectIgnored, got)
	assert.Nil(t, vs.Preview())
}

func TestSelectBrandOpensPreviewWhenConfirming(t *testing.T) {
	vs := NewViewState()
	b := domain.Brand{ID: "1", Name: "Chanel", URL: "https://www.chanel.com"}

	got := vs.SelectBrand(b, true)
	assert.Equal(t, SelectPreview, got)
	require.NotNil(t, vs.Preview())
	assert.Equal(t, "Chanel", vs.Preview().Name)

	vs.ClosePreview()
	assert.Nil(t, vs.Preview())
}

func TestSelectBrandNavigatesWhenConfirmOff(t *testing.T) {
	vs := NewViewState()

	// Turning the preference off means selection never opens the card.
	got := vs.SelectBrand(domain.Brand{ID: "1", Name: "Chanel"}, false)
	assert.Equal(t, SelectNavigate, got)
	assert.Nil(t, vs.Preview())
}

func TestChatAndParseGuards(t *testing.T) {
	vs := NewViewState()

	require.True(t, vs.BeginChat())
	assert.False(t, vs.BeginChat())
	vs.EndChat()
	assert.True(t, vs.BeginChat())

	require.True(t, vs.BeginParse())
	assert.False(t, vs.BeginParse())
	vs.EndParse()
	assert.True(t, vs.BeginParse())
}

func TestSnapshotReflectsState(t *testing.T) {
	vs := NewViewState()
	vs.SetView(ViewWardrobe)
	vs.SetCategory(domain.CategoryLuxury)
	vs.SetHubDisplay(HubDisplayGrid)
	vs.EditNote("item-9")

	snap := vs.Snapshot()
	assert.Equal(t, ViewWardrobe, snap.View)
	assert.Equal(t, domain.CategoryLuxury, snap.ActiveCategory)
	assert.Equal(t, HubDisplayGrid, snap.HubDisplay)
	assert.Equal(t, "item-9", snap.EditingNoteID)
	assert.False(t, snap.ChatBusy)
}
