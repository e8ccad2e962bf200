package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"mercator-hq/abacus/pkg/cli"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/reports"
)

var costFlags struct {
	model      string
	prompt     int
	completion int
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Price a hypothetical call",
	Long: `Resolve a model's price and print the USD cost of a call with the given
token counts.

The lookup walks the same tiers the accounting library uses: models from the
configured overrides file win over refreshed feed entries, which win over the
built-in table.

Examples:
  abacus cost --model gpt-4o --prompt 1200 --completion 350
  abacus cost --model claude-sonnet-4-5 --prompt 8000 --completion 2000`,
	RunE: runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)

	costCmd.Flags().StringVarP(&costFlags.model, "model", "m", "", "model name (required)")
	costCmd.Flags().IntVar(&costFlags.prompt, "prompt", 0, "prompt (input) token count")
	costCmd.Flags().IntVar(&costFlags.completion, "completion", 0, "completion (output) token count")
	_ = costCmd.MarkFlagRequired("model")
}

func runCost(cmd *cobra.Command, args []string) error {
	if costFlags.prompt < 0 || costFlags.completion < 0 {
		return cli.NewCommandError("cost", fmt.Errorf("token counts must be non-negative"))
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

	price, err := resolver.GetPrice(costFlags.model)
	if err != nil {
		if errors.Is(err, pricing.ErrModelNotFound) {
			return cli.NewCommandError("cost", fmt.Errorf("%w (try 'abacus models' to list priced models)", err))
		}
		return cli.NewCommandError("cost", err)
	}

	cost, err := resolver.CalculateCost(costFlags.model, costFlags.prompt, costFlags.completion)
	if err != nil {
		return cli.NewCommandError("cost", err)
	}

	fmt.Printf("Model:             %s (%s)\n", costFlags.model, price.Provider)
	fmt.Printf("Prompt tokens:     %d × $%s/1K\n", costFlags.prompt, formatRate(price.InputPer1K))
	fmt.Printf("Completion tokens: %d × $%s/1K\n", costFlags.completion, formatRate(price.OutputPer1K))
	fmt.Printf("Cost:              %s\n", reports.FormatCost(cost))
	return nil
}
