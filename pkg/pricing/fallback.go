package pricing

// fallbackTable returns the built-in pricing table used when a model is
// neither registered nor present in the refreshed feed. Prices are USD per
// 1000 tokens, current as of the last release; the remote feed supersedes
// them for any model it covers.
func fallbackTable() map[string]ModelPrice {
	return map[string]ModelPrice{
		// OpenAI
		"gpt-4o":        {InputPer1K: 0.0025, OutputPer1K: 0.010, Provider: "openai"},
		"gpt-4o-mini":   {InputPer1K: 0.00015, OutputPer1K: 0.0006, Provider: "openai"},
		"gpt-4-turbo":   {InputPer1K: 0.01, OutputPer1K: 0.03, Provider: "openai"},
		"gpt-4":         {InputPer1K: 0.03, OutputPer1K: 0.06, Provider: "openai"},
		"gpt-3.5-turbo": {InputPer1K: 0.0005, OutputPer1K: 0.0015, Provider: "openai"},
		"o1":            {InputPer1K: 0.015, OutputPer1K: 0.060, Provider: "openai"},
		"o1-mini":       {InputPer1K: 0.003, OutputPer1K: 0.012, Provider: "openai"},
		"o3-mini":       {InputPer1K: 0.0011, OutputPer1K: 0.0044, Provider: "openai"},

		// Anthropic
		"claude-opus-4-5":            {InputPer1K: 0.015, OutputPer1K: 0.075, Provider: "anthropic"},
		"claude-opus-4-5-20251101":   {InputPer1K: 0.015, OutputPer1K: 0.075, Provider: "anthropic"},
		"claude-sonnet-4-5":          {InputPer1K: 0.003, OutputPer1K: 0.015, Provider: "anthropic"},
		"claude-sonnet-4-5-20250929": {InputPer1K: 0.003, OutputPer1K: 0.015, Provider: "anthropic"},
		"claude-haiku-4-5":           {InputPer1K: 0.0008, OutputPer1K: 0.004, Provider: "anthropic"},
		"claude-haiku-4-5-20251001":  {InputPer1K: 0.0008, OutputPer1K: 0.004, Provider: "anthropic"},
		"claude-3-5-sonnet-20241022": {InputPer1K: 0.003, OutputPer1K: 0.015, Provider: "anthropic"},
		"claude-3-opus-20240229":     {InputPer1K: 0.015, OutputPer1K: 0.075, Provider: "anthropic"},

		// Google
		"gemini-2.0-flash":     {InputPer1K: 0.0, OutputPer1K: 0.0, Provider: "google"},
		"gemini-2.0-flash-exp": {InputPer1K: 0.0, OutputPer1K: 0.0, Provider: "google"},
		"gemini-1.5-pro":       {InputPer1K: 0.00125, OutputPer1K: 0.005, Provider: "google"},
		"gemini-1.5-flash":     {InputPer1K: 0.000075, OutputPer1K: 0.0003, Provider: "google"},
	}
}
