package cli

import (
	"encoding/json"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (app *App) paint(color, s string) string {
	if !app.Colors {
		return s
	}
	return color + s + colorReset
}

func (app *App) check(done bool) string {
	if done {
		return app.paint(colorGreen, "✓")
	}
	return app.paint(colorDim, "·")
}

func bar(solved, total, width int) string {
	filled := 0
	if total > 0 {
		filled = solved * width / total
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}
