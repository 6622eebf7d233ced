package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type column struct {
	width int
	right bool
}

// FormatTable lays out rows in columns separated by one space. Widths are
// measured in terminal cells, so kana count as two. Columns listed in
// rightAlign are padded on the left.
func FormatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	cols := measureColumns(headers, rows, rightAlign)
	if len(cols) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, renderRow(cols, headers))
	}
	for _, row := range rows {
		lines = append(lines, renderRow(cols, row))
	}
	return lines
}

func measureColumns(headers []string, rows [][]string, rightAlign map[int]bool) []column {
	var cols []column
	grow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cols) {
				cols = append(cols, column{right: rightAlign[i]})
			}
			cols[i].width = max(cols[i].width, runewidth.StringWidth(cell))
		}
	}
	grow(headers)
	for _, row := range rows {
		grow(row)
	}
	return cols
}

func renderRow(cols []column, cells []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if c.right {
			out[i] = runewidth.FillLeft(cell, c.width)
		} else {
			out[i] = runewidth.FillRight(cell, c.width)
		}
	}
	return strings.Join(out, " ")
}
