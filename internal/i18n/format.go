package i18n

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyLabel is appended to every formatted amount.
const CurrencyLabel = "AMD"

// FormatCount renders n with the language's digit grouping and no decimals.
func FormatCount(n int64, lang Language) string {
	p := message.NewPrinter(lang.Tag())
	return p.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(0)))
}

// FormatCurrency renders an amount as a grouped integer followed by the
// currency label, e.g. "200,000,000 AMD" in English.
func FormatCurrency(amount int64, lang Language) string {
	return FormatCount(amount, lang) + " " + CurrencyLabel
}
