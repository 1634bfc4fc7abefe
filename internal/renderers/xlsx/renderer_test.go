package xlsx

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook with the given A1-style cell values on
// Sheet1 and returns its path.
func writeWorkbook(t *testing.T, cells map[string]string) string {
	t.Helper()

	f := excelize.NewFile()
	for addr, value := range cells {
		require.NoError(t, f.SetCellStr("Sheet1", addr, value))
	}

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

// cellValues reads back all of Sheet1 from rendered bytes.
func cellValues(t *testing.T, rendered []byte) map[string]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(rendered))
	require.NoError(t, err)
	defer f.Close()

	values := make(map[string]string)
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			addr, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			values[addr] = value
		}
	}
	return values
}

func TestRenderer_Metadata(t *testing.T) {
	r := New()
	assert.Equal(t, []string{"xlsx"}, r.Extensions())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.MIMEType())
	assert.Equal(t, "Excel", r.FormatName())
}

func TestRenderer_SubstitutesCells(t *testing.T) {
	path := writeWorkbook(t, map[string]string{
		"A1": "債務者: {debtor_name}",
		"B2": "{company_name_1}",
		"C3": "固定値",
	})

	apply := strings.NewReplacer(
		"{debtor_name}", "山田太郎",
		"{company_name_1}", "会社1",
	).Replace

	rendered, err := New().Render(context.Background(), path, apply)
	require.NoError(t, err)

	values := cellValues(t, rendered)
	assert.Equal(t, "債務者: 山田太郎", values["A1"])
	assert.Equal(t, "会社1", values["B2"])
	assert.Equal(t, "固定値", values["C3"])
}

func TestRenderer_NoTokens_TextUnchanged(t *testing.T) {
	cells := map[string]string{
		"A1": "見出し",
		"B5": "注記",
	}
	path := writeWorkbook(t, cells)

	rendered, err := New().Render(context.Background(), path, func(s string) string { return s })
	require.NoError(t, err)

	assert.Equal(t, cells, cellValues(t, rendered))
}

func TestRenderer_EmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, nil)

	rendered, err := New().Render(context.Background(), path, func(s string) string { return s })
	require.NoError(t, err)

	assert.Empty(t, cellValues(t, rendered))
}

func TestRenderer_MissingTemplate(t *testing.T) {
	_, err := New().Render(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), func(s string) string { return s })
	assert.Error(t, err)
}
