package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available recurring-task templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		templates, err := allTemplates(cfg, openStore(cfg, logger))
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		for _, t := range templates {
			fmt.Printf("%s  %s\n", cyan(t.ID), t.Name)
			fmt.Printf("    %s %s, notify %d days before, %d checklist items\n",
				faint("every"), t.Recurrence.Frequency,
				t.Recurrence.NotifyDaysBefore, len(t.Checklist))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
