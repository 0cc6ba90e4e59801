package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meryerevan.am/internal/config"
	"meryerevan.am/internal/i18n"
	"meryerevan.am/internal/models"
	"meryerevan.am/internal/services"
)

var (
	catalogueStage string
	catalogueLang  string
)

// catalogueCmd prints what the project grid would show
var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Print the localized catalogue for one stage",
	Long: `Print the projects the grid shows for a stage, resolved for a language,
followed by content warnings and the message keys the language lacks.`,
	RunE: runCatalogue,
}

func init() {
	catalogueCmd.Flags().StringVar(&catalogueStage, "stage", string(services.DefaultStage), "stage filter")
	catalogueCmd.Flags().StringVar(&catalogueLang, "lang", "", "display language (defaults to DEFAULT_LANG)")
}

func runCatalogue(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lang := cfg.DefaultLanguage
	if catalogueLang != "" {
		l, ok := i18n.Parse(catalogueLang)
		if !ok {
			return fmt.Errorf("unsupported language %q", catalogueLang)
		}
		lang = l
	}

	ps := services.NewProjectService(cfg.Catalogue)
	stage := models.ParseStage(catalogueStage)
	views := services.LocalizeAll(ps.ByStage(stage), lang, ps.Primary())

	out := cmd.OutOrStdout()
	tr := cfg.Translations
	fmt.Fprintf(out, "%s: %s\n", tr.T(lang, services.GridTitleKey(stage)),
		tr.Format(lang, "projectsCount", map[string]string{"count": i18n.FormatCount(int64(len(views)), lang)}))
	for _, v := range views {
		fmt.Fprintf(out, "  [%s] %s (%s)\n", v.ID, v.Title, v.Location)
		if v.HasFunding {
			fmt.Fprintf(out, "      %s: %s\n", tr.T(lang, "budget"), v.Budget)
		}
		if v.HasRaised {
			fmt.Fprintf(out, "      %s: %s (%d%%)\n", tr.T(lang, "raised"), v.Raised, v.ProgressPercent)
		}
		if v.HasVoting {
			fmt.Fprintf(out, "      %s: %s\n", tr.T(lang, "totalVotes"), v.TotalVotes)
		}
	}

	for _, w := range cfg.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if missing := tr.MissingKeys(lang); len(missing) > 0 {
		fmt.Fprintf(out, "%s lacks %d message keys: %v\n", lang, len(missing), missing)
	}
	return nil
}
