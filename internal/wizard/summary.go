package wizard

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seqenc/internal/encoding"
)

func summaryRows(settings encoding.Settings) [][2]string {
	return [][2]string{
		{"Input pattern", settings.InputPattern()},
		{"FPS", strconv.Itoa(settings.FPS)},
		{"Format", cases.Upper(language.Und).String(settings.Format.String())},
		{"Transparency", onOff(settings.EffectiveTransparent())},
		{"Crop", settings.CropLabel()},
		{"Output file", settings.OutputPath()},
	}
}

func renderSummary(settings encoding.Settings) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	for _, row := range summaryRows(settings) {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
