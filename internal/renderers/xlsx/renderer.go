// Package xlsx renders Excel templates: every non-empty cell of every
// sheet is passed through the substitution function and written back in
// place, leaving formatting, merges, and formulas untouched.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer handles xlsx templates.
type Renderer struct{}

// New creates a new xlsx renderer.
func New() *Renderer {
	return &Renderer{}
}

// Extensions returns the file extensions this renderer handles.
func (r *Renderer) Extensions() []string {
	return []string{"xlsx"}
}

// MIMEType returns the rendered document's MIME type.
func (r *Renderer) MIMEType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FormatName returns the human-readable format label.
func (r *Renderer) FormatName() string {
	return "Excel"
}

// Render opens the template workbook, substitutes every text-bearing
// cell, and serialises the result to memory. The template file on disk
// is never written.
func (r *Renderer) Render(ctx context.Context, templatePath string, apply func(string) string) ([]byte, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("opening template workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		for rowIdx, row := range rows {
			for colIdx, value := range row {
				if value == "" {
					continue
				}

				replaced := apply(value)
				if replaced == value {
					continue
				}

				addr, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return nil, fmt.Errorf("addressing cell (%d,%d): %w", colIdx+1, rowIdx+1, err)
				}
				if err := f.SetCellStr(sheet, addr, replaced); err != nil {
					return nil, fmt.Errorf("writing cell %s: %w", addr, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialising workbook: %w", err)
	}
	return buf.Bytes(), nil
}
