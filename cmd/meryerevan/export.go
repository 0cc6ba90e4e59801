package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"meryerevan.am/internal/config"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/services"
)

// exportCmd writes static JSON snapshots, one file per language
var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write localized JSON snapshots of the catalogue",
	Long: `Write <output-dir>/projects/<lang>.json and <output-dir>/map/<lang>.json
for every supported language, matching the /api responses.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ps := services.NewProjectService(cfg.Catalogue)
	ms, dropped := services.NewMapService(cfg.CityMap, ps)
	out := cmd.OutOrStdout()
	for _, id := range dropped {
		fmt.Fprintf(out, "skipping map pin for unknown project %q\n", id)
	}

	outputDir := args[0]
	for _, lang := range i18n.Supported() {
		projects := services.LocalizeAll(ps.GetAll(), lang, ps.Primary())
		if err := writeJSON(filepath.Join(outputDir, "projects", string(lang)+".json"), projects); err != nil {
			return err
		}
		pins := ms.Pins(lang)
		if err := writeJSON(filepath.Join(outputDir, "map", string(lang)+".json"), pins); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %s (%d projects, %d pins)\n", lang, len(projects), len(pins))
	}

	fmt.Fprintln(out, "Done!")
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
