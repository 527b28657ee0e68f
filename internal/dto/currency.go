package dto

// Currency Request DTOs

// SelectCurrencyRequest switches the user's display currency
type SelectCurrencyRequest struct {
	Code string `json:"code" validate:"required,currency_code"`
}

// Currency Response DTOs

// CurrencyResponse describes one supported currency
type CurrencyResponse struct {
	Code           string `json:"code"`
	Symbol         string `json:"symbol"`
	DisplayName    string `json:"displayName"`
	LocaleTag      string `json:"localeTag"`
	SymbolPosition string `json:"symbolPosition"`
	FractionDigits int32  `json:"fractionDigits"`
}

// ActiveCurrencyResponse reports the user's current selection together
// with a formatted sample so clients can preview the rendering
type ActiveCurrencyResponse struct {
	Currency CurrencyResponse `json:"currency"`
	Sample   string           `json:"sample"`
}
