package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
	"github.com/lensnowovo/smart-pe-todo/task"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview upcoming occurrences of a template",
	Long: `Preview the occurrence and due dates a template would generate,
without writing anything to the store. The notification window filter is
disabled so the full horizon is shown.

Examples:
  petodo preview --template builtin-quarterly-report
  petodo preview --template builtin-monthly-valuation --from 2026-03-01 --months 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("template")
		fromStr, _ := cmd.Flags().GetString("from")
		months, _ := cmd.Flags().GetInt("months")
		if months <= 0 {
			months = cfg.HorizonMonths
		}

		from := recurrence.StartOfDay(time.Now().UTC())
		if fromStr != "" {
			from, err = recurrence.ParseDate(fromStr)
			if err != nil {
				return err
			}
		}
		to := recurrence.AddMonths(from, months)

		templates, err := allTemplates(cfg, openStore(cfg, logger))
		if err != nil {
			return err
		}
		tmpl, err := findTemplate(templates, key)
		if err != nil {
			return err
		}

		// Preview shows the whole horizon regardless of notification lead.
		tmpl.Recurrence.NotifyDaysBefore = 0

		engine := recurrence.NewEngineWithConfig(
			recurrence.EngineConfig{MaxOccurrences: cfg.MaxOccurrences}, logger)
		gen := task.NewGeneratorWithEngine(engine, logger)

		result, err := gen.GenerateInstances(tmpl, from, to)
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("%s (%s — %s)\n", tmpl.Name, recurrence.FormatDate(from), recurrence.FormatDate(to))
		for _, inst := range result.Instances {
			fmt.Printf("  %s  due %s  %s\n",
				inst.RecurrenceDate, cyan(inst.DueDate), inst.Title)
		}
		if result.Truncated {
			fmt.Printf("%s occurrence cap reached, there may be more\n", yellow("⚠"))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("template", "", "template ID or name (required)")
	previewCmd.Flags().String("from", "", "window start (YYYY-MM-DD, default today)")
	previewCmd.Flags().Int("months", 0, "window length in months (default from config)")
	previewCmd.MarkFlagRequired("template")
	rootCmd.AddCommand(previewCmd)
}
