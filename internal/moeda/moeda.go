// Package moeda formats monetary values for pt-BR output
// ("R$ 1.234,56"). Aggregation code keeps decimals numeric and calls this
// only at rendering boundaries (JSON responses, PDF documents).
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders v with Brazilian grouping and decimal separators,
// prefixed with the R$ symbol.
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
