package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/calebcase/numeral/decimal"
)

// Default is the configuration used when nothing else is set.
var Default = Config{
	Radix:      10,
	Width:      64,
	Encoding:   "twos-complement",
	Profile:    "double",
	Normalized: false,

	Scale:             decimal.DefaultSchema.Scale,
	Precision:         decimal.DefaultSchema.Precision,
	Point:             decimal.DefaultSchema.Point,
	Group:             decimal.DefaultSchema.IntegerGroup,
	GroupSeparator:    decimal.DefaultSchema.IntegerSeparator,
	FractionGroup:     decimal.DefaultSchema.FractionGroup,
	FractionSeparator: decimal.DefaultSchema.FractionSeparator,
	Recurring:         decimal.DefaultSchema.Recurring,
	RecurringOpen:     decimal.DefaultSchema.RecurringOpen,
	RecurringClose:    decimal.DefaultSchema.RecurringClose,
	ExponentMarker:    decimal.DefaultSchema.ExponentMarker,
}

func setDefaults(v *viper.Viper) {
	// Number representation
	v.SetDefault("radix", Default.Radix)
	v.SetDefault("width", Default.Width)
	v.SetDefault("encoding", Default.Encoding)
	v.SetDefault("profile", Default.Profile)
	v.SetDefault("normalized", Default.Normalized)

	// Decimal formatting
	v.SetDefault("scale", Default.Scale)
	v.SetDefault("precision", Default.Precision)
	v.SetDefault("point", Default.Point)
	v.SetDefault("group", Default.Group)
	v.SetDefault("group-separator", Default.GroupSeparator)
	v.SetDefault("fraction-group", Default.FractionGroup)
	v.SetDefault("fraction-separator", Default.FractionSeparator)
	v.SetDefault("recurring", Default.Recurring)
	v.SetDefault("recurring-open", Default.RecurringOpen)
	v.SetDefault("recurring-close", Default.RecurringClose)
	v.SetDefault("exponent-marker", Default.ExponentMarker)
}

// RepresentationFlags registers the radix, integer and float flags on fs.
func RepresentationFlags(fs *pflag.FlagSet) {
	fs.Int("radix", Default.Radix, "radix for input and output (2, 8, 10 or 16)")
	fs.Int("width", Default.Width, "integer width in bits (4, 8, 16, 32, 64, 128, 256 or 0 for unlimited)")
	fs.String("encoding", Default.Encoding, "integer encoding (unbounded, twos-complement, ones-complement, sign-magnitude, excess-n, negabinary, unsigned)")
	fs.String("profile", Default.Profile, "float profile (half, single, double, quadruple, octuple or a registered width)")
	fs.Bool("normalized", Default.Normalized, "read and write floats in normalised 1.fraction p exponent form")
}

// FormatFlags registers the decimal formatting flags on fs.
func FormatFlags(fs *pflag.FlagSet) {
	fs.Int("scale", Default.Scale, "fraction digits searched for a recurring cycle")
	fs.Int("precision", Default.Precision, "significant digits, 0 for exact")
	fs.String("point", Default.Point, "decimal point")
	fs.Int("group", Default.Group, "integer digit group size, 0 to disable")
	fs.String("group-separator", Default.GroupSeparator, "integer digit group separator")
	fs.Int("fraction-group", Default.FractionGroup, "fraction digit group size, 0 to disable")
	fs.String("fraction-separator", Default.FractionSeparator, "fraction digit group separator")
	fs.Bool("recurring", Default.Recurring, "bracket recurring cycles instead of repeating them")
	fs.String("recurring-open", Default.RecurringOpen, "opening bracket of a recurring cycle")
	fs.String("recurring-close", Default.RecurringClose, "closing bracket of a recurring cycle")
	fs.String("exponent-marker", Default.ExponentMarker, "exponent marker in scientific forms")
}
