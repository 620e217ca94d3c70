package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billrecon/internal/spreadsheet"
)

func TestLocateHeader(t *testing.T) {
	rows := []spreadsheet.Row{
		{spreadsheet.Text("Jubilant Agri - Customer Report FY25")},
		{},
		{spreadsheet.Text("SAP Code"), spreadsheet.Text("Customer Name")},
	}

	t.Run("first_match_wins", func(t *testing.T) {
		idx, ok := spreadsheet.LocateHeader(rows, []string{"customer", "name"})
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		idx, ok := spreadsheet.LocateHeader(rows, []string{"SAP"})
		assert.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("numbers_never_match", func(t *testing.T) {
		numeric := []spreadsheet.Row{{spreadsheet.Number(100)}, {spreadsheet.Text("Rent")}}
		idx, ok := spreadsheet.LocateHeader(numeric, []string{"100", "rent"})
		assert.True(t, ok)
		assert.Equal(t, 1, idx)
	})

	t.Run("not_found", func(t *testing.T) {
		idx, ok := spreadsheet.LocateHeader(rows, []string{"freight"})
		assert.False(t, ok)
		assert.Equal(t, spreadsheet.NotFound, idx)
	})

	t.Run("empty_input", func(t *testing.T) {
		_, ok := spreadsheet.LocateHeader(nil, []string{"bill"})
		assert.False(t, ok)
	})
}
