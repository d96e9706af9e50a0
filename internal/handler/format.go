package handler

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// PrinterFor picks a number printer from the request's Accept-Language
func PrinterFor(r *http.Request) *message.Printer {
	tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	tag, _, _ := languageMatcher.Match(tags...)
	return message.NewPrinter(tag)
}

// FormatAmount renders a currency amount with locale digit grouping
func FormatAmount(p *message.Printer, n int64) string {
	return p.Sprintf("%d", n)
}

// FormatMultiplier renders a multiplier such as 1.5 as "×1.50"
func FormatMultiplier(p *message.Printer, m float64) string {
	return p.Sprintf("×%.2f", m)
}
