// Package config resolves the calculator settings from defaults, the
// environment and command line flags.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/decimal"
	"github.com/calebcase/numeral/float"
	"github.com/calebcase/numeral/integer"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// EnvPrefix prefixes every environment variable, e.g. NUMERAL_GROUP_SEPARATOR.
const EnvPrefix = "NUMERAL"

// Config holds every setting in its textual form. The accessors convert
// them into the value types of the core packages.
type Config struct {
	Radix      int    `mapstructure:"radix"`
	Width      int    `mapstructure:"width"`
	Encoding   string `mapstructure:"encoding"`
	Profile    string `mapstructure:"profile"`
	Normalized bool   `mapstructure:"normalized"`

	Scale             int    `mapstructure:"scale"`
	Precision         int    `mapstructure:"precision"`
	Point             string `mapstructure:"point"`
	Group             int    `mapstructure:"group"`
	GroupSeparator    string `mapstructure:"group-separator"`
	FractionGroup     int    `mapstructure:"fraction-group"`
	FractionSeparator string `mapstructure:"fraction-separator"`
	Recurring         bool   `mapstructure:"recurring"`
	RecurringOpen     string `mapstructure:"recurring-open"`
	RecurringClose    string `mapstructure:"recurring-close"`
	ExponentMarker    string `mapstructure:"exponent-marker"`
}

// Load resolves the configuration. Later sources win:
//
//  1. Defaults
//  2. Environment variables (NUMERAL_ prefix)
//  3. Flags in fs that were set on the command line
//
// fs may be nil.
func Load(fs *pflag.FlagSet) (_ Config, err error) {
	defer Error.WrapP(&err)

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, numeral.MalformedNumber.Wrap(err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every setting that can be checked without a float
// profile registry.
func (c Config) Validate() (err error) {
	defer Error.WrapP(&err)

	if _, err := c.RadixValue(); err != nil {
		return err
	}

	if _, err := c.IntegerSchema(); err != nil {
		return err
	}

	return c.DecimalSchema().Validate()
}

// RadixValue returns the configured radix.
func (c Config) RadixValue() (numeral.Radix, error) {
	return numeral.ParseRadix(c.Radix)
}

// IntegerSchema returns the register schema for the configured width and
// encoding.
func (c Config) IntegerSchema() (_ integer.Schema, err error) {
	defer Error.WrapP(&err)

	w, err := integer.ParseWidth(c.Width)
	if err != nil {
		return integer.Schema{}, err
	}

	e, err := integer.ParseEncoding(c.Encoding)
	if err != nil {
		return integer.Schema{}, err
	}

	s := integer.Schema{Width: w, Encoding: e}

	return s, s.Validate()
}

// FloatProfile resolves the configured profile in reg.
func (c Config) FloatProfile(reg *float.Registry) (_ float.Profile, err error) {
	defer Error.WrapP(&err)

	return reg.Named(c.Profile)
}

// DecimalSchema returns the formatter schema.
func (c Config) DecimalSchema() decimal.Schema {
	return decimal.Schema{
		Point:             c.Point,
		IntegerGroup:      c.Group,
		IntegerSeparator:  c.GroupSeparator,
		FractionGroup:     c.FractionGroup,
		FractionSeparator: c.FractionSeparator,
		Recurring:         c.Recurring,
		RecurringOpen:     c.RecurringOpen,
		RecurringClose:    c.RecurringClose,
		Scale:             c.Scale,
		Precision:         c.Precision,
		ExponentMarker:    c.ExponentMarker,
	}
}
