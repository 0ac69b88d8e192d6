package svg

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/jozzs/svgcast/pkg/errors"
)

// Default configuration values.
const (
	// DefaultUnit is the physical length unit for document dimensions.
	DefaultUnit = "mm"

	// DefaultDecimals is the rounding precision divisor: coordinates are
	// rounded to 1/10000.
	DefaultDecimals = 10000
)

// ValidUnits is the set of supported SVG length units.
var ValidUnits = map[string]bool{
	"em": true,
	"ex": true,
	"px": true,
	"in": true,
	"cm": true,
	"mm": true,
	"pt": true,
	"pc": true,
}

// StatusFunc receives conversion progress in percent (0..100). It is
// invoked synchronously; a slow callback stalls the conversion.
type StatusFunc func(progress float64)

// Options configures a single Serialize call. The zero value is usable:
// defaults are applied by ValidateAndSetDefaults.
type Options struct {
	// Unit is the physical length unit: em, ex, px, in, cm, mm, pt, pc.
	Unit string

	// Decimals is the precision divisor; coordinates and document
	// dimensions are rounded to 1/Decimals.
	Decimals int

	// Status, when set, receives progress notifications at 0, after each
	// converted object, and at 100.
	Status StatusFunc

	// Logger receives the non-fatal partial-input warning. Defaults to a
	// discard logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks option values and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	if !ValidUnits[o.Unit] {
		return errors.New(errors.ErrCodeInvalidUnit,
			"invalid unit: %q (must be one of: em, ex, px, in, cm, mm, pt, pc)", o.Unit)
	}
	if o.Decimals == 0 {
		o.Decimals = DefaultDecimals
	}
	if o.Decimals < 0 {
		return errors.New(errors.ErrCodeInvalidDecimals,
			"decimals must be a positive integer, got %d", o.Decimals)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// status invokes the progress callback when one is configured.
func (o *Options) status(progress float64) {
	if o.Status != nil {
		o.Status(progress)
	}
}
