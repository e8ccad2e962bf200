package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"mercator-hq/abacus/pkg/cli"
	"mercator-hq/abacus/pkg/pricing"
)

var modelsFlags struct {
	provider string
	refresh  bool
	output   string
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List priced models",
	Long: `List the merged pricing table: registered overrides, the last refreshed
feed, and the built-in fallback, with higher tiers shadowing lower ones.

Examples:
  # Every priced model
  abacus models

  # One provider's models
  abacus models --provider anthropic

  # Refresh from the community feed first
  abacus models --refresh

  # Machine-readable output
  abacus models --output json
  abacus models --output csv`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVarP(&modelsFlags.provider, "provider", "p", "", "filter by provider")
	modelsCmd.Flags().BoolVar(&modelsFlags.refresh, "refresh", false, "refresh the price feed before listing")
	modelsCmd.Flags().StringVarP(&modelsFlags.output, "output", "o", "text", "output format (text, json, csv)")
}

// modelRow is one line of the models listing.
type modelRow struct {
	Model       string  `json:"model"`
	Provider    string  `json:"provider"`
	InputPer1K  float64 `json:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k"`
}

// modelListing is the models command result, sorted by model name.
type modelListing struct {
	Count  int        `json:"count"`
	Models []modelRow `json:"models"`
}

// String renders the listing as an aligned text table.
func (l modelListing) String() string {
	if l.Count == 0 {
		return "No models matched."
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tPROVIDER\tINPUT $/1K\tOUTPUT $/1K")
	for _, row := range l.Models {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Model, row.Provider, formatRate(row.InputPer1K), formatRate(row.OutputPer1K))
	}
	tw.Flush()
	fmt.Fprintf(&b, "\n%d models", l.Count)
	return b.String()
}

// CSVHeader implements cli.CSVMarshaler.
func (l modelListing) CSVHeader() []string {
	return []string{"model", "provider", "input_per_1k", "output_per_1k"}
}

// CSVRows implements cli.CSVMarshaler.
func (l modelListing) CSVRows() [][]string {
	rows := make([][]string, 0, len(l.Models))
	for _, row := range l.Models {
		rows = append(rows, []string{
			row.Model,
			row.Provider,
			formatRate(row.InputPer1K),
			formatRate(row.OutputPer1K),
		})
	}
	return rows
}

// formatRate renders a per-1K USD rate without trailing zero noise.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newModelListing(models map[string]pricing.ModelPrice) modelListing {
	listing := modelListing{
		Count:  len(models),
		Models: make([]modelRow, 0, len(models)),
	}
	for model, price := range models {
		listing.Models = append(listing.Models, modelRow{
			Model:       model,
			Provider:    price.Provider,
			InputPer1K:  price.InputPer1K,
			OutputPer1K: price.OutputPer1K,
		})
	}
	sort.Slice(listing.Models, func(i, j int) bool {
		return listing.Models[i].Model < listing.Models[j].Model
	})
	return listing
}

func runModels(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(modelsFlags.output)
	if err != nil {
		return cli.NewCommandError("models", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}

	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}

	if modelsFlags.refresh {
		ctx := cli.SetupSignalHandler()
		if !resolver.Refresh(ctx, cfg.Pricing.Refresh.URL, cfg.Pricing.Refresh.Timeout) {
			fmt.Fprintln(os.Stderr, "warning: price feed refresh failed, listing existing tables")
		}
	}

	listing := newModelListing(resolver.ListModels(modelsFlags.provider))

	formatter := cli.NewFormatter(format)
	if err := formatter.FormatTo(os.Stdout, listing); err != nil {
		return cli.NewCommandError("models", err)
	}
	return nil
}
