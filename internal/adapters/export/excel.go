package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luxehub/luxehub/internal/domain"
)

const wardrobeSheet = "Wardrobe"

// WardrobeWorkbook renders the wardrobe as an .xlsx inventory sheet, in the
// sequence's current order.
func WardrobeWorkbook(items []domain.WardrobeItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", wardrobeSheet); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Category", "Color", "Brand", "Notes", "Image URL"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(wardrobeSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, item := range items {
		values := []string{item.Name, item.Category, item.Color, item.Brand, item.Notes, item.ImageURL}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(wardrobeSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf, nil
}
