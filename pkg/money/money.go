// Package money formatea montos para presentación: moneda local (peso filipino)
// sin dígitos fraccionarios, con separador de miles. Los cálculos siguen siendo
// decimal.Decimal; aquí solo se resuelve la representación.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/shopspring/decimal"
)

var printer = message.NewPrinter(language.English)

// Display devuelve el monto como "₱12,500" (redondeo a entero, sin decimales).
func Display(v decimal.Decimal) string {
	n := v.Round(0).IntPart()
	return printer.Sprintf("₱%v", number.Decimal(n))
}
