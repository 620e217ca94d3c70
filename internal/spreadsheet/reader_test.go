package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"billrecon/internal/spreadsheet"
)

func TestDecode(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Customer Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Amount"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "Acme Traders"))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", 1250.5))
	require.NoError(t, f.SetCellValue("Sheet1", "C3", true))
	_, err := f.NewSheet("Pivot.")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Pivot.", "A1", "Plant"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := spreadsheet.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1", "Pivot."}, wb.SheetNames())

	first, ok := wb.First()
	require.True(t, ok)
	require.Len(t, first.Rows, 3)

	assert.Equal(t, spreadsheet.KindString, first.Rows[0][0].Kind)
	assert.Equal(t, "Customer Name", first.Rows[0][0].Text)
	assert.True(t, first.Rows[1].IsBlank())
	assert.Equal(t, spreadsheet.KindNumber, first.Rows[2][1].Kind)
	assert.Equal(t, 1250.5, spreadsheet.CoerceNumericOrZero(first.Rows[2][1]))
	assert.Equal(t, spreadsheet.KindBool, first.Rows[2][2].Kind)

	pivot, ok := wb.Sheet("Pivot.")
	require.True(t, ok)
	assert.Equal(t, "Plant", pivot.Rows[0][0].Text)

	_, ok = wb.Sheet("pivot.")
	assert.False(t, ok)
}

func TestDecode_NotAWorkbook(t *testing.T) {
	_, err := spreadsheet.Decode(bytes.NewReader([]byte("%PDF-1.4 not a spreadsheet")))
	assert.Error(t, err)
}
