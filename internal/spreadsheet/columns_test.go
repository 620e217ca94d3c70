package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billrecon/internal/spreadsheet"
)

func headers(cells ...string) []string {
	row := make(spreadsheet.Row, len(cells))
	for i, c := range cells {
		row[i] = spreadsheet.Text(c)
	}
	return spreadsheet.HeaderTexts(row)
}

func TestResolveColumn_SynonymPriority(t *testing.T) {
	h := headers("Plant", "Rent Adjustment", "Godown Rent @ Rs. 100/mt (Ist Bill)")
	spec := spreadsheet.FieldSpec{
		Field: "godown_rent",
		Synonyms: []spreadsheet.Synonym{
			spreadsheet.Contains("godown rent @ rs. 100/mt"),
			spreadsheet.Contains("rent"),
		},
	}
	assert.Equal(t, 2, spreadsheet.ResolveColumn(h, spec))
}

func TestResolveColumn_LooseFallback(t *testing.T) {
	h := headers("Plant", "Rent")
	spec := spreadsheet.FieldSpec{
		Field:    "godown_rent",
		Synonyms: []spreadsheet.Synonym{spreadsheet.Contains("godown rent"), spreadsheet.Contains("rent")},
	}
	assert.Equal(t, 1, spreadsheet.ResolveColumn(h, spec))
}

func TestResolveColumn_Exact(t *testing.T) {
	h := headers("Street2", "Street", "Postal Code")
	spec := spreadsheet.FieldSpec{Field: "street", Synonyms: []spreadsheet.Synonym{spreadsheet.Exact("street")}}
	assert.Equal(t, 1, spreadsheet.ResolveColumn(h, spec))
}

func TestResolveColumn_Excludes(t *testing.T) {
	h := headers("Unloading @ Rs. 75/mt", "Loading @ Rs. 75/mt")
	spec := spreadsheet.FieldSpec{
		Field:    "loading",
		Synonyms: []spreadsheet.Synonym{spreadsheet.Contains("loading")},
		Excludes: []string{"unloading"},
	}
	assert.Equal(t, 1, spreadsheet.ResolveColumn(h, spec))
}

func TestResolveColumn_NonStringHeadersIgnored(t *testing.T) {
	row := spreadsheet.Row{spreadsheet.Number(2024), {}, spreadsheet.Text("SAP Code")}
	spec := spreadsheet.FieldSpec{Field: "sap", Synonyms: []spreadsheet.Synonym{spreadsheet.Contains("sap")}}
	assert.Equal(t, 2, spreadsheet.ResolveColumn(spreadsheet.HeaderTexts(row), spec))
}

func TestResolveColumn_NotFound(t *testing.T) {
	spec := spreadsheet.FieldSpec{Field: "pan", Synonyms: []spreadsheet.Synonym{spreadsheet.Exact("pan")}}
	assert.Equal(t, spreadsheet.NotFound, spreadsheet.ResolveColumn(headers("Name", "GSTIN"), spec))
}

func TestColumnMap_AbsentFieldsReadEmpty(t *testing.T) {
	specs := []spreadsheet.FieldSpec{
		{Field: "name", Synonyms: []spreadsheet.Synonym{spreadsheet.Contains("name")}},
		{Field: "rent", Synonyms: []spreadsheet.Synonym{spreadsheet.Contains("rent")}},
	}
	cols := spreadsheet.ResolveColumns(headers("Name"), specs)
	row := spreadsheet.Row{spreadsheet.Text(" Acme ")}

	assert.Equal(t, 0, cols.Index("name"))
	assert.Equal(t, spreadsheet.NotFound, cols.Index("rent"))
	assert.Equal(t, spreadsheet.NotFound, cols.Index("unknown"))
	assert.Equal(t, "Acme", cols.String(row, "name"))
	assert.Equal(t, "", cols.String(row, "rent"))
	assert.Equal(t, float64(0), cols.Float(row, "rent"))
}
