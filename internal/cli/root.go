// Package cli is the numeral command line: a thin inspection surface over
// the rational, integer, float and decimal packages.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/numeral/internal/config"
)

// Error is the error class for this package.
var Error = errs.Class("numeral")

var (
	// Global flags
	debug bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "numeral",
	Short: "numeral - exact number representation workbench",
	Long: `numeral inspects how numbers are represented: exact fractions and their
recurring expansions, fixed width integers under seven encodings, floating
point values with configurable exponent and significand widths, and decimal
strings in plain, scientific, engineering and SI forms.

Every setting can also be given in the environment with the NUMERAL_ prefix,
e.g. NUMERAL_WIDTH=16 or NUMERAL_GROUP_SEPARATOR=_.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetPrefix("numeral: ")
		if debug {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log the resolved configuration and intermediate values to stderr")

	config.RepresentationFlags(rootCmd.PersistentFlags())
	config.FormatFlags(rootCmd.PersistentFlags())
}

// loadConfig resolves the configuration for cmd from the defaults, the
// environment and its flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}

	log.Printf("config: %+v", c)

	return c, nil
}

// field writes one aligned "name: value" line.
func field(w io.Writer, name string, value interface{}) {
	fmt.Fprintf(w, "%-12s %v\n", name+":", value)
}
