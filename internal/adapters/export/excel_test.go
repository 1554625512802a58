package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/luxehub/luxehub/internal/domain"
)

func TestWardrobeWorkbook(t *testing.T) {
	items := []domain.WardrobeItem{
		{ID: "a", Name: "Wool Coat", Category: "Outerwear", Color: "grey", Brand: "Max Mara", Notes: "dry clean", ImageURL: "https://example.com/coat.jpg"},
		{ID: "b", Name: "Loafers", Category: "Shoes", Color: "black"},
	}

	buf, err := WardrobeWorkbook(items)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Wardrobe")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Category", "Color", "Brand", "Notes", "Image URL"}, rows[0])
	assert.Equal(t, "Wool Coat", rows[1][0])
	assert.Equal(t, "Max Mara", rows[1][3])
	assert.Equal(t, "Loafers", rows[2][0])
	assert.Equal(t, "black", rows[2][2])
}

func TestWardrobeWorkbookEmpty(t *testing.T) {
	buf, err := WardrobeWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Wardrobe")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
