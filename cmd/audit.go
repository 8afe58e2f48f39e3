package cmd

import (
	"segment-audit/feature/audit"
	"segment-audit/feature/segments"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report gaps and misplaced segments",
	Long: `Scans the hierarchical and flat locations, reconciles every document key
against the metadata and prints the documents that need attention.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		flags := cmd.Flags()
		if flags.Changed("hierarchical-root") {
			cfg.Audit.HierarchicalRoot, _ = flags.GetString("hierarchical-root")
		}
		if flags.Changed("flat-root") {
			cfg.Audit.FlatRoot, _ = flags.GetString("flat-root")
		}
		if flags.Changed("metadata") {
			cfg.Audit.MetadataPath, _ = flags.GetString("metadata")
		}
		if flags.Changed("verify-pages") {
			cfg.Audit.VerifyPages, _ = flags.GetBool("verify-pages")
		}
		format, _ := flags.GetString("format")
		all, _ := flags.GetBool("all")

		source, err := newSource(cfg, logg)
		if err != nil {
			return err
		}

		svc := audit.NewService(cfg.Audit, source, segments.NewScanner(logg), logg)
		snap, err := svc.Audit(cmd.Context())
		if err != nil {
			return err
		}

		return audit.Render(cmd.OutOrStdout(), snap, format, all)
	},
}

func init() {
	auditCmd.Flags().String("hierarchical-root", "", "Directory holding one folder per document")
	auditCmd.Flags().String("flat-root", "", "Directory holding misplaced segment files")
	auditCmd.Flags().String("metadata", "", "Path to the metadata state file")
	auditCmd.Flags().String("format", audit.FormatText, "Output format (text, json, yaml)")
	auditCmd.Flags().Bool("all", false, "Include documents without findings")
	auditCmd.Flags().Bool("verify-pages", false, "Compare each PDF's page count with its filename range")
	RootCmd.AddCommand(auditCmd)
}
