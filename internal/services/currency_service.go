package services

import (
	"fmt"
	"log/slog"

	"payme/internal/currency"
	"payme/internal/dto"
	"payme/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// sampleAmount is rendered alongside the active currency so clients can
// preview the formatting without a round trip.
var sampleAmount = decimal.NewFromFloat(1234.56)

// CurrencyService exposes the currency catalog and per-user selection
type CurrencyService struct {
	preferenceRepo repositories.PreferenceRepositoryInterface
	defaultLocale  string
	metrics        MetricsRecorderInterface
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(preferenceRepo repositories.PreferenceRepositoryInterface, defaultLocale string, metrics MetricsRecorderInterface) CurrencyServiceInterface {
	return &CurrencyService{
		preferenceRepo: preferenceRepo,
		defaultLocale:  defaultLocale,
		metrics:        metrics,
	}
}

// ListCurrencies returns the supported currency catalog
func (cs *CurrencyService) ListCurrencies() []dto.CurrencyResponse {
	descriptors := currency.List()
	out := make([]dto.CurrencyResponse, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, toCurrencyResponse(d))
	}
	return out
}

// ActiveCurrency returns the user's selected currency with a formatted
// sample amount
func (cs *CurrencyService) ActiveCurrency(userID uuid.UUID) (*dto.ActiveCurrencyResponse, error) {
	formatter := cs.formatterFor(userID)
	return cs.activeResponse(formatter), nil
}

// SelectCurrency switches the user's currency. Unrecognized codes fall
// back to the default currency rather than failing.
func (cs *CurrencyService) SelectCurrency(userID uuid.UUID, code string) (*dto.ActiveCurrencyResponse, error) {
	formatter := cs.formatterFor(userID)

	if err := formatter.Select(code); err != nil {
		return nil, fmt.Errorf("failed to persist currency selection: %w", err)
	}

	if cs.metrics != nil {
		cs.metrics.IncrementCounter("currency.selected", map[string]string{"code": formatter.Active().Code})
	}

	slog.Info("currency selected",
		"user_id", userID,
		"code", formatter.Active().Code)

	return cs.activeResponse(formatter), nil
}

// formatterFor builds a formatter backed by the user's preference row.
// Construction reads the persisted code and falls back to locale
// detection when none is stored.
func (cs *CurrencyService) formatterFor(userID uuid.UUID) *currency.Formatter {
	store := repositories.NewUserCurrencyStore(cs.preferenceRepo, userID)
	return currency.NewFormatter(store, cs.defaultLocale)
}

func (cs *CurrencyService) activeResponse(formatter *currency.Formatter) *dto.ActiveCurrencyResponse {
	active := formatter.Active()
	return &dto.ActiveCurrencyResponse{
		Currency: toCurrencyResponse(active),
		Sample:   formatter.Format(sampleAmount),
	}
}

func toCurrencyResponse(d currency.Descriptor) dto.CurrencyResponse {
	position := "before"
	if d.Position == currency.SymbolAfter {
		position = "after"
	}

	return dto.CurrencyResponse{
		Code:           d.Code,
		Symbol:         d.Symbol,
		DisplayName:    d.DisplayName,
		LocaleTag:      d.LocaleTag,
		SymbolPosition: position,
		FractionDigits: d.FractionDigits,
	}
}
