package output

import (
	"fmt"

	"github.com/hanmin/dcasim/internal/domain"
)

// Formatter renders a plan result for the caller-facing surface.
type Formatter interface {
	Format(result *domain.PlanResult) (string, error)
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table", "":
		return &TableFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (expected table, csv, or json)", format)
	}
}
