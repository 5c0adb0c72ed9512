package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  20,
		ValueWidth: 14,
	}
}

// Reporter renders a summary to the console and persists it as a delimited
// artifact in an output directory.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Writer exposes the console destination for status lines.
func (c *Reporter) Writer() io.Writer { return c.writer }

// Handle renders the summary as a human-readable table.
func (c *Reporter) Handle(report domain.SummaryReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value float64) string {
			return fmt.Sprintf("%-*s %*.2f", c.config.NameWidth, name, c.config.ValueWidth, value)
		},
		"header": func() string {
			return fmt.Sprintf("%-*s %*s", c.config.NameWidth, "Metric", c.config.ValueWidth, "Value")
		},
	}

	tmpl := `
=== BUSINESS PERFORMANCE SUMMARY ===

{{header}}
{{range .Metrics}}{{formatRow .Name .Value}}
{{end}}`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// Save writes the summary as a two-column CSV under dir, creating the
// directory tree if needed. An existing same-day artifact is overwritten.
func (c *Reporter) Save(report domain.SummaryReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	path := SummaryPath(dir, report)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	rows := [][]string{{"Metric", "Value"}}
	for _, m := range report.Metrics {
		rows = append(rows, []string{m.Name, strconv.FormatFloat(m.Value, 'f', -1, 64)})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write summary file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close summary file %q: %w", path, err)
	}
	return path, nil
}

// SummaryPath names the summary artifact for the report's generation day.
func SummaryPath(dir string, report domain.SummaryReport) string {
	return filepath.Join(dir, fmt.Sprintf("summary_%s.csv", report.GeneratedAt.Format("20060102")))
}

// ChartPath names the chart artifact for the report's generation day.
func ChartPath(dir string, report domain.SummaryReport) string {
	return filepath.Join(dir, fmt.Sprintf("daily_revenue_%s.png", report.GeneratedAt.Format("20060102")))
}
