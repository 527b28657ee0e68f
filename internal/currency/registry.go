// Package currency holds the supported-currency catalog and the
// monetary value formatter used everywhere an amount is rendered.
package currency

// SymbolPosition says where a currency's symbol sits relative to the
// rendered number.
type SymbolPosition int

const (
	SymbolBefore SymbolPosition = iota
	SymbolAfter
)

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	Code           string         `json:"code"`
	Symbol         string         `json:"symbol"`
	DisplayName    string         `json:"display_name"`
	LocaleTag      string         `json:"locale_tag"`
	Position       SymbolPosition `json:"symbol_position"`
	FractionDigits int32          `json:"fraction_digits"`
}

// The catalog order is significant: entry 0 (USD) is the fallback for
// every unrecognized code. Fraction digits are a fixed per-currency
// attribute, not derived; JPY and KRW have no commonly used subdivision.
var catalog = []Descriptor{
	{Code: "USD", Symbol: "$", DisplayName: "US Dollar", LocaleTag: "en-US", Position: SymbolBefore, FractionDigits: 2},
	{Code: "EUR", Symbol: "€", DisplayName: "Euro", LocaleTag: "de-DE", Position: SymbolAfter, FractionDigits: 2},
	{Code: "GBP", Symbol: "£", DisplayName: "British Pound", LocaleTag: "en-GB", Position: SymbolBefore, FractionDigits: 2},
	{Code: "JPY", Symbol: "¥", DisplayName: "Japanese Yen", LocaleTag: "ja-JP", Position: SymbolBefore, FractionDigits: 0},
	{Code: "CAD", Symbol: "CA$", DisplayName: "Canadian Dollar", LocaleTag: "en-CA", Position: SymbolBefore, FractionDigits: 2},
	{Code: "AUD", Symbol: "A$", DisplayName: "Australian Dollar", LocaleTag: "en-AU", Position: SymbolBefore, FractionDigits: 2},
	{Code: "CHF", Symbol: "CHF", DisplayName: "Swiss Franc", LocaleTag: "de-CH", Position: SymbolAfter, FractionDigits: 2},
	{Code: "CNY", Symbol: "¥", DisplayName: "Chinese Yuan", LocaleTag: "zh-CN", Position: SymbolBefore, FractionDigits: 2},
	{Code: "INR", Symbol: "₹", DisplayName: "Indian Rupee", LocaleTag: "en-IN", Position: SymbolBefore, FractionDigits: 2},
	{Code: "MXN", Symbol: "MX$", DisplayName: "Mexican Peso", LocaleTag: "es-MX", Position: SymbolBefore, FractionDigits: 2},
	{Code: "BRL", Symbol: "R$", DisplayName: "Brazilian Real", LocaleTag: "pt-BR", Position: SymbolBefore, FractionDigits: 2},
	{Code: "KRW", Symbol: "₩", DisplayName: "South Korean Won", LocaleTag: "ko-KR", Position: SymbolBefore, FractionDigits: 0},
	{Code: "MYR", Symbol: "RM", DisplayName: "Malaysian Ringgit", LocaleTag: "ms-MY", Position: SymbolBefore, FractionDigits: 2},
	{Code: "EGP", Symbol: "EGP", DisplayName: "Egyptian Pound", LocaleTag: "en-EG", Position: SymbolBefore, FractionDigits: 2},
	{Code: "SAR", Symbol: "SAR", DisplayName: "Saudi Riyal", LocaleTag: "en-SA", Position: SymbolBefore, FractionDigits: 2},
}

var localeToCode = map[string]string{
	"en-US": "USD",
	"en-GB": "GBP",
	"de-DE": "EUR",
	"fr-FR": "EUR",
	"es-ES": "EUR",
	"it-IT": "EUR",
	"ja-JP": "JPY",
	"en-CA": "CAD",
	"en-AU": "AUD",
	"de-CH": "CHF",
	"zh-CN": "CNY",
	"en-IN": "INR",
	"es-MX": "MXN",
	"pt-BR": "BRL",
	"ko-KR": "KRW",
	"ms-MY": "MYR",
	"en-MY": "MYR",
	"en-EG": "EGP",
	"en-SA": "SAR",
}

// DefaultCode is the code returned whenever a lookup misses.
const DefaultCode = "USD"

// List returns the supported currencies in catalog order. The caller
// gets a copy and may mutate it freely.
func List() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// LookupByCode resolves a currency code to its descriptor. Matching is
// exact and case-sensitive; any miss resolves to the default descriptor.
func LookupByCode(code string) Descriptor {
	for _, d := range catalog {
		if d.Code == code {
			return d
		}
	}
	return catalog[0]
}

// IsSupported reports whether code matches a catalog entry exactly.
func IsSupported(code string) bool {
	for _, d := range catalog {
		if d.Code == code {
			return true
		}
	}
	return false
}

// DetectFromLocale maps a runtime locale tag to a currency code.
// Unknown tags resolve to the default code.
func DetectFromLocale(localeTag string) string {
	if code, ok := localeToCode[localeTag]; ok {
		return code
	}
	return DefaultCode
}
