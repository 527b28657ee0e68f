package currency

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Store persists the selected currency code across sessions. Load is
// consulted once at construction; Save runs on every selection and must
// succeed before the selection is considered applied.
type Store interface {
	Load() (string, error)
	Save(code string) error
}

// renderer turns an already-rounded, non-negative value into its bare
// digit string. Two implementations exist: locale-aware grouping via
// x/text, and plain fixed-point assembly. Which one is active is decided
// when a descriptor is activated, so Format itself never branches on
// locale availability.
type renderer interface {
	render(value decimal.Decimal, fractionDigits int32) string
}

type localeRenderer struct {
	printer *message.Printer
}

func (r localeRenderer) render(value decimal.Decimal, fractionDigits int32) string {
	f, _ := value.Float64()
	return r.printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(int(fractionDigits)),
		number.MaxFractionDigits(int(fractionDigits))))
}

type manualRenderer struct{}

func (manualRenderer) render(value decimal.Decimal, fractionDigits int32) string {
	return value.StringFixed(fractionDigits)
}

// Formatter renders monetary values in a single active currency. It is
// constructor-injected wherever amounts are formatted; there is no
// package-level active currency.
type Formatter struct {
	mu     sync.RWMutex
	store  Store
	active Descriptor
	render renderer
}

// NewFormatter builds a formatter whose initial currency comes from the
// persisted store slot when the stored code is recognized, otherwise
// from locale detection, otherwise the default. A nil store disables
// persistence but never formatting.
func NewFormatter(store Store, localeTag string) *Formatter {
	code := ""
	if store != nil {
		if saved, err := store.Load(); err == nil {
			code = saved
		}
	}
	if !IsSupported(code) {
		code = DetectFromLocale(localeTag)
	}

	f := &Formatter{store: store}
	f.activate(LookupByCode(code))
	return f
}

// activate swaps the descriptor and picks the rendering strategy for its
// locale. Callers hold the write lock (or exclusive access during
// construction).
func (f *Formatter) activate(d Descriptor) {
	f.active = d
	if tag, err := language.Parse(d.LocaleTag); err == nil {
		f.render = localeRenderer{printer: message.NewPrinter(tag)}
	} else {
		f.render = manualRenderer{}
	}
}

// Select activates the currency for code, resolving unknown codes to the
// default instead of failing. The resolved code is persisted before the
// swap so a restart always reads back the latest selection.
func (f *Formatter) Select(code string) error {
	d := LookupByCode(code)

	if f.store != nil {
		if err := f.store.Save(d.Code); err != nil {
			return fmt.Errorf("failed to persist currency selection: %w", err)
		}
	}

	f.mu.Lock()
	f.activate(d)
	f.mu.Unlock()
	return nil
}

// Active returns the currently selected descriptor.
func (f *Formatter) Active() Descriptor {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.active
}

// Symbol returns the active currency's symbol.
func (f *Formatter) Symbol() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.active.Symbol
}

type formatOptions struct {
	showSymbol bool
	absolute   bool
}

// FormatOption adjusts a single Format call.
type FormatOption func(*formatOptions)

// WithoutSymbol renders the bare number under the same fraction-digit
// rule, with no symbol attached.
func WithoutSymbol() FormatOption {
	return func(o *formatOptions) { o.showSymbol = false }
}

// Absolute renders the magnitude of the value, dropping the sign.
func Absolute() FormatOption {
	return func(o *formatOptions) { o.absolute = true }
}

// Format renders value in the active currency. The value is rounded to
// the currency's fraction digits before rendering, so the locale and
// manual paths can only differ in grouping and separator style, never in
// magnitude or sign.
func (f *Formatter) Format(value decimal.Decimal, opts ...FormatOption) string {
	o := formatOptions{showSymbol: true}
	for _, opt := range opts {
		opt(&o)
	}

	f.mu.RLock()
	d, r := f.active, f.render
	f.mu.RUnlock()

	v := value
	if o.absolute {
		v = v.Abs()
	}

	negative := v.IsNegative()
	digits := r.render(v.Abs().Round(d.FractionDigits), d.FractionDigits)

	out := digits
	if o.showSymbol {
		out = placeSymbol(digits, d)
	}
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCompact renders value with a magnitude suffix: millions collapse
// to one decimal plus "M", thousands to one decimal plus "K", and
// anything smaller delegates to Format.
func (f *Formatter) FormatCompact(value decimal.Decimal) string {
	f.mu.RLock()
	d := f.active
	f.mu.RUnlock()

	abs := value.Abs()
	switch {
	case abs.GreaterThanOrEqual(compactMillion):
		return compactString(value, compactMillion, "M", d)
	case abs.GreaterThanOrEqual(compactThousand):
		return compactString(value, compactThousand, "K", d)
	default:
		return f.Format(value)
	}
}

var (
	compactMillion  = decimal.NewFromInt(1_000_000)
	compactThousand = decimal.NewFromInt(1_000)
)

func compactString(value, unit decimal.Decimal, suffix string, d Descriptor) string {
	negative := value.IsNegative()
	scaled := value.Abs().DivRound(unit, 1)

	out := placeSymbol(scaled.StringFixed(1)+suffix, d)
	if negative {
		out = "-" + out
	}
	return out
}

func placeSymbol(digits string, d Descriptor) string {
	if d.Position == SymbolAfter {
		return digits + " " + d.Symbol
	}
	return d.Symbol + digits
}
