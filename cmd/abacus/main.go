// Abacus is a usage accounting and budget enforcement toolkit for LLM API
// calls.
//
// The abacus command is the operational companion to the library: it answers
// pricing questions from the same three-tier resolver the library uses, and
// it can run a small telemetry server for deployments that want metrics and
// health probes on the network.
//
// Usage:
//
//	# List every priced model
//	abacus models
//
//	# List one provider's models as CSV
//	abacus models --provider anthropic --output csv
//
//	# Price a hypothetical call
//	abacus cost --model gpt-4o --prompt 1200 --completion 350
//
//	# Pull the latest community price feed once
//	abacus refresh
//
//	# Serve metrics, health probes, and pricing queries over HTTP
//	abacus serve --config /etc/abacus/config.yaml
//
//	# Show version information
//	abacus version
//
// For complete documentation, see: https://github.com/mercator-hq/abacus
package main

func main() {
	Execute()
}
