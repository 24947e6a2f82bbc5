package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lensnowovo/smart-pe-todo/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored tasks as iCalendar or XML",
	Long: `Write the stored tasks to stdout (or --out) as an iCalendar VTODO
stream or an XML report.

Examples:
  petodo export --format ics > tasks.ics
  petodo export --format xml --out report.xml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		tasks, err := openStore(cfg, logger).ListTasks()
		if err != nil {
			return err
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch format {
		case "ics":
			return export.WriteICS(out, tasks)
		case "xml":
			return export.WriteXML(out, tasks)
		default:
			return fmt.Errorf("unknown format %q (want ics or xml)", format)
		}
	},
}

func init() {
	exportCmd.Flags().String("format", "ics", "output format: ics or xml")
	exportCmd.Flags().String("out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
