package main

import (
	"encoding/json"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

func writeOutput(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// formatCurrency formats v as Brazilian reais, e.g. R$ 1.234,56.
func formatCurrency(v float64) string {
	return brl.Sprintf("R$ %.2f", v)
}
