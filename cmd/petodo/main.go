// petodo is the command-line surface of the PE fund-operations task manager:
// it previews recurring-task occurrences, generates dated instances into the
// local JSON store, and exports them for external tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lensnowovo/smart-pe-todo/config"
	"github.com/lensnowovo/smart-pe-todo/store/jsonfile"
	"github.com/lensnowovo/smart-pe-todo/task"
)

var rootCmd = &cobra.Command{
	Use:   "petodo",
	Short: "Recurring-task manager for PE fund operations",
	Long: `petodo manages recurring private-equity fund-operations tasks:
quarterly reports, capital calls, LP meetings, and valuations.

Templates define a recurrence rule and a due rule; petodo expands them into
dated task instances and stores them in a local JSON file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().String("config", "petodo.yaml", "config file path")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger; debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func openStore(cfg config.Config, logger *slog.Logger) *jsonfile.Store {
	return jsonfile.New(cfg.DataFile, logger)
}

// allTemplates merges built-in templates, stored templates, and the config's
// template file. Later sources win on ID collisions.
func allTemplates(cfg config.Config, st *jsonfile.Store) ([]task.Template, error) {
	templates := task.BuiltinTemplates()

	stored, err := st.ListTemplates()
	if err != nil {
		return nil, err
	}
	templates = mergeTemplates(templates, stored)

	if cfg.TemplatesFile != "" {
		user, err := config.LoadTemplates(cfg.TemplatesFile)
		if err != nil {
			return nil, err
		}
		templates = mergeTemplates(templates, user)
	}
	return templates, nil
}

func mergeTemplates(base, extra []task.Template) []task.Template {
	index := make(map[string]int, len(base))
	for i, t := range base {
		index[t.ID] = i
	}
	for _, t := range extra {
		if i, ok := index[t.ID]; ok {
			base[i] = t
			continue
		}
		index[t.ID] = len(base)
		base = append(base, t)
	}
	return base
}

// findTemplate matches by ID first, then by name.
func findTemplate(templates []task.Template, key string) (task.Template, error) {
	for _, t := range templates {
		if t.ID == key {
			return t, nil
		}
	}
	for _, t := range templates {
		if strings.EqualFold(t.Name, key) {
			return t, nil
		}
	}
	return task.Template{}, fmt.Errorf("no template matching %q", key)
}
