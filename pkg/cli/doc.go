/*
Package cli provides command-line interface utilities for the abacus command.

The cli package includes output formatters, error types, and signal helpers
shared by the abacus subcommands.

Output Formatting:

The cli package supports multiple output formats (text, JSON, CSV) for
displaying command results:

	format, err := cli.ParseFormat(outputFlag)
	if err != nil {
		return err
	}
	formatter := cli.NewFormatter(format)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

CSV output requires the result type to implement CSVMarshaler; text output
uses the type's String method when present.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
