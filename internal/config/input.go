package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hanmin/dcasim/internal/calculation"
	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation input file, applies defaults and rate-model
// presets, and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses raw YAML input, applies defaults and rate-model presets, and
// validates the result.
func (ip *InputParser) Load(data []byte) (*domain.SimulationInputs, error) {
	var inputs domain.SimulationInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.applyDefaults(&inputs); err != nil {
		return nil, err
	}
	if err := calculation.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &inputs, nil
}

// applyDefaults fills in defaults and resolves the rate-model preset. A
// preset overrides the growth and yield fields, matching how the presets are
// meant to be used: pick a model, get its average rates.
func (ip *InputParser) applyDefaults(in *domain.SimulationInputs) error {
	if in.Plan.Currency == "" {
		in.Plan.Currency = "KRW"
	}
	if in.Plan.AssetCurrency == "" {
		in.Plan.AssetCurrency = "USD"
	}
	if in.Exchange.InitialRate.IsZero() {
		// Same-currency plan: the conversion is the identity.
		in.Exchange.InitialRate = decimal.NewFromInt(1)
	}

	switch strings.ToLower(in.Investment.RateModel) {
	case domain.RateModelSCHD:
		in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(7.0)
		in.Investment.AnnualDividendYield = decimal.NewFromFloat(3.5)
	case domain.RateModelJEPI:
		in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(4.0)
		in.Investment.AnnualDividendYield = decimal.NewFromFloat(7.5)
	case domain.RateModelCustom, "":
		// Rates come straight from the file.
	default:
		return fmt.Errorf("rate model must be %q, %q, or %q, got %q",
			domain.RateModelSCHD, domain.RateModelJEPI, domain.RateModelCustom, in.Investment.RateModel)
	}
	return nil
}
