package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
	"github.com/lensnowovo/smart-pe-todo/task"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate due task instances into the store",
	Long: `Expand templates into dated task instances and persist the new ones.

Each template's notification window applies: only instances due soon enough
to need action now are surfaced. Instance IDs are deterministic, so re-running
over an overlapping window inserts nothing twice.

Examples:
  petodo generate
  petodo generate --template builtin-capital-call --from 2026-03-10`,
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

		st := openStore(cfg, logger)
		templates, err := allTemplates(cfg, st)
		if err != nil {
			return err
		}
		if key != "" {
			tmpl, err := findTemplate(templates, key)
			if err != nil {
				return err
			}
			templates = []task.Template{tmpl}
		}

		engine := recurrence.NewEngineWithConfig(
			recurrence.EngineConfig{MaxOccurrences: cfg.MaxOccurrences}, logger)
		gen := task.NewGeneratorWithEngine(engine, logger)

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		totalCreated, totalSkipped := 0, 0
		for _, tmpl := range templates {
			result, err := gen.GenerateInstances(tmpl, from, to)
			if err != nil {
				return fmt.Errorf("generate %s: %w", tmpl.ID, err)
			}
			created, err := st.CreateTasks(result.Instances)
			if err != nil {
				return fmt.Errorf("store %s: %w", tmpl.ID, err)
			}
			skipped := len(result.Instances) - created
			totalCreated += created
			totalSkipped += skipped

			if result.Truncated {
				fmt.Printf("%s %s: occurrence cap reached, there may be more\n",
					yellow("⚠"), tmpl.ID)
			}
			logger.Debug("generated instances",
				"template", tmpl.ID, "created", created, "skipped", skipped)
		}

		fmt.Printf("%s created %d task(s), skipped %d duplicate(s)\n",
			green("✓"), totalCreated, totalSkipped)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("template", "", "generate only this template ID or name")
	generateCmd.Flags().String("from", "", "window start (YYYY-MM-DD, default today)")
	generateCmd.Flags().Int("months", 0, "window length in months (default from config)")
	rootCmd.AddCommand(generateCmd)
}
