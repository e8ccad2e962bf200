package cli

import (
	"bytes"
	"fmt"
	"testing"
)

// refreshSummary is a Stringer result like the ones refresh commands print.
type refreshSummary struct {
	models int
}

func (s refreshSummary) String() string {
	return fmt.Sprintf("refreshed pricing for %d models", s.models)
}

func TestTextFormatter(t *testing.T) {
	tests := map[string]struct {
		data interface{}
		want string
	}{
		"plain string": {"cache cleared", "cache cleared\n"},
		"stringer":     {refreshSummary{models: 214}, "refreshed pricing for 214 models\n"},
		"integer":      {42, "42\n"},
	}

	formatter := &TextFormatter{}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			output, err := formatter.Format(tt.data)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(output) != tt.want {
				t.Errorf("Format() = %q, want %q", output, tt.want)
			}

			var buf bytes.Buffer
			if err := formatter.FormatTo(&buf, tt.data); err != nil {
				t.Fatalf("FormatTo() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("FormatTo() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	cost := struct {
		Model   string  `json:"model"`
		CostUSD float64 `json:"cost_usd"`
	}{Model: "gpt-4o", CostUSD: 0.0125}

	compact, err := (&JSONFormatter{}).Format(cost)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := `{"model":"gpt-4o","cost_usd":0.0125}`; string(compact) != want {
		t.Errorf("compact Format() = %s, want %s", compact, want)
	}

	indented, err := (&JSONFormatter{Indent: true}).Format(cost)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "{\n  \"model\": \"gpt-4o\",\n  \"cost_usd\": 0.0125\n}"
	if string(indented) != want {
		t.Errorf("indented Format() = %s, want %s", indented, want)
	}
}

func TestJSONFormatterWriter(t *testing.T) {
	// The stream encoder terminates every value with a newline.
	var buf bytes.Buffer
	formatter := &JSONFormatter{Indent: true}
	if err := formatter.FormatTo(&buf, map[string]int{"prompt_tokens": 1200}); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if want := "{\n  \"prompt_tokens\": 1200\n}\n"; buf.String() != want {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), want)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := map[OutputFormat]string{
		FormatText: "*cli.TextFormatter",
		FormatJSON: "*cli.JSONFormatter",
		FormatCSV:  "*cli.CSVFormatter",
		"unknown":  "*cli.TextFormatter",
	}

	for format, want := range tests {
		if got := fmt.Sprintf("%T", NewFormatter(format)); got != want {
			t.Errorf("NewFormatter(%q) type = %v, want %v", format, got, want)
		}
	}
}

type csvResult struct {
	rows [][]string
}

func (r csvResult) CSVHeader() []string { return []string{"model", "provider"} }
func (r csvResult) CSVRows() [][]string { return r.rows }

func TestCSVFormatter(t *testing.T) {
	t.Run("model table", func(t *testing.T) {
		data := csvResult{rows: [][]string{
			{"gpt-4o", "openai"},
			{"claude-sonnet-4-5", "anthropic"},
		}}
		output, err := (&CSVFormatter{}).Format(data)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		want := "model,provider\ngpt-4o,openai\nclaude-sonnet-4-5,anthropic\n"
		if string(output) != want {
			t.Errorf("Format() = %q, want %q", output, want)
		}
	})

	t.Run("quoting", func(t *testing.T) {
		data := csvResult{rows: [][]string{
			{"model,with,commas", "provider \"quoted\""},
		}}
		var buf bytes.Buffer
		if err := (&CSVFormatter{}).FormatTo(&buf, data); err != nil {
			t.Fatalf("FormatTo() error = %v", err)
		}
		want := "model,provider\n\"model,with,commas\",\"provider \"\"quoted\"\"\"\n"
		if buf.String() != want {
			t.Errorf("FormatTo() = %q, want %q", buf.String(), want)
		}
	})

	t.Run("type without CSVMarshaler", func(t *testing.T) {
		if _, err := (&CSVFormatter{}).Format("plain string"); err == nil {
			t.Error("Format() expected error, got nil")
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"", FormatText, false},
		{"yaml", "", true},
		{"TEXT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
