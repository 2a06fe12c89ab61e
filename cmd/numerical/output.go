package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

// renderMatrix writes m as a borderless table with one column per matrix
// column.
func renderMatrix(w io.Writer, m mat.Matrix) {
	r, c := m.Dims()
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetAutoFormatHeaders(false)

	for i := 0; i < r; i++ {
		row := make([]string, c)
		for j := 0; j < c; j++ {
			row[j] = formatFloat(m.At(i, j))
		}
		table.Append(row)
	}
	table.Render()
}

// renderTable writes rows under header.
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}
