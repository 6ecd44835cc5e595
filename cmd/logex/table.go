package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/logex-dev/logex/internal/config"
)

func renderSettingsTable(settings []config.Settings) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Logger", "File", "Level", "Rotation", "Retention", "Compression", "Format", "Console"})
	for _, s := range settings {
		tw.AppendRow(table.Row{
			s.Name,
			s.File,
			s.Level,
			s.Rotation,
			s.Retention,
			s.Compression,
			s.Format,
			consoleCell(s),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func consoleCell(s config.Settings) string {
	if !s.ConsoleEnabled {
		return "off"
	}
	return fmt.Sprintf("on (%s)", s.ConsoleLevel)
}
