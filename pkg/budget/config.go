package budget

import "mercator-hq/abacus/pkg/config"

// LimitsFromConfig converts configured default caps into Limits. Zero config
// values mean "no limit" and map to nil caps; a deliberate zero cap has to
// be constructed in code with Cost or Tokens.
func LimitsFromConfig(cfg *config.BudgetConfig) Limits {
	var limits Limits
	if cfg == nil {
		return limits
	}

	if cfg.MaxCostUSD > 0 {
		limits.MaxCostUSD = Cost(cfg.MaxCostUSD)
	}
	if cfg.MaxTokens > 0 {
		limits.MaxTokens = Tokens(cfg.MaxTokens)
	}
	return limits
}
