package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kagankarabayir/EV-Price-Estimator/core/catalog"
	"github.com/kagankarabayir/EV-Price-Estimator/infra/logger"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Reference catalog commands",
}

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show the resolved reference catalog",
	RunE:  runCatalogLs,
}

func init() {
	catalogCmd.AddCommand(catalogLsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogLs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat := catalog.Build(catalog.SourcePaths{
		XLSX:   cfg.Data.XLSXPath,
		CSV:    cfg.Data.CSVPath,
		Sample: cfg.Data.SamplePath,
	}, logger.NopLogger{})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source: %s\nrows: %d\n", cat.Source(), cat.Len())
	for _, mk := range cat.Makes() {
		for _, md := range cat.Models(mk) {
			a, _ := cat.Lookup(mk, md)
			fmt.Fprintf(out, "%s %s\tbase %.2f\tyear0 %d\n", a.Make, a.Model, a.BasePrice, a.Year0)
		}
	}
	return nil
}
