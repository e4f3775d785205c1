package cli

import (
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/decimal"
	"github.com/calebcase/numeral/rational"
)

var (
	ratMaxDen string
)

// ratCmd represents the rat command
var ratCmd = &cobra.Command{
	Use:   "rat <value>...",
	Short: "Inspect an exact fraction",
	Long: `Show the exact forms of a rational number: lowest terms, mixed number,
continued fraction, Egyptian fractions, recurring expansion in the selected
radix, and the prime factors of both terms.

Several values may be given; their factorizations run concurrently.
Values are written as a fraction p/q, a decimal with an optional exponent
such as 12.5e-3, or a recurring decimal such as 0.1(6). Flags go before the
values; a leading negative value follows --.

Examples:
    numeral rat 355/113
    numeral rat 1/3 1/7 1/97
    numeral rat 0.1(6)
    numeral rat -- -12.5e-3
    numeral rat --radix 2 22/7
    numeral rat --max-den 1000 3.14159`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRat,
}

func init() {
	ratCmd.Flags().StringVar(&ratMaxDen, "max-den", "", "also show the closest fraction with at most this denominator")
	ratCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(ratCmd)
}

// parseRat reads p/q or a decimal string.
func parseRat(s string) (rational.Rat, error) {
	if strings.Contains(s, "/") {
		return rational.ParseFraction(s)
	}

	return decimal.Parse(s)
}

func runRat(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	radix, err := c.RadixValue()
	if err != nil {
		return err
	}

	rs := make([]rational.Rat, len(args))
	for k, arg := range args {
		rs[k], err = parseRat(arg)
		if err != nil {
			return err
		}
		log.Printf("parsed %q as %s", arg, rs[k])
	}

	factorizer, err := rational.NewFactorizer(rational.DefaultFactorCacheSize)
	if err != nil {
		return err
	}

	factors, err := factorizer.FactorizeAll(cmd.Context(), rs)
	if err != nil {
		return err
	}

	enc := decimal.NewEncoder(c.DecimalSchema())

	w := cmd.OutOrStdout()
	for k, r := range rs {
		if k > 0 {
			fmt.Fprintln(w)
		}

		low := r.LowestTerms()
		whole, frac := low.Mixed()

		field(w, "fraction", r)
		field(w, "lowest", low)
		field(w, "mixed", mixed(whole, frac))
		field(w, "continued", continued(low.ContinuedFraction()))

		field(w, "egyptian", sum(low.EgyptianFractions()))

		x := low.Expand(radix, c.Scale)
		field(w, "expansion", x.String()+" ("+radix.String()+")")
		if x.Complete {
			field(w, "period", x.Period())
		} else {
			field(w, "period", "unknown")
		}

		field(w, "factors", factors[k])

		pair, err := enc.Plain(low)
		if err != nil {
			return err
		}
		field(w, "decimal", pair.Pretty)

		if ratMaxDen != "" {
			maxDen, ok := new(big.Int).SetString(ratMaxDen, 10)
			if !ok {
				return Error.Wrap(numeral.MalformedNumber.New("max-den %q", ratMaxDen))
			}

			approx, err := low.Approximate(maxDen)
			if err != nil {
				return err
			}
			field(w, "approximate", approx)
		}
	}

	return nil
}

func mixed(whole *big.Int, frac rational.Rat) string {
	switch {
	case frac.IsZero():
		return whole.String()
	case whole.Sign() == 0:
		return frac.String()
	}

	return whole.String() + " " + frac.Abs().String()
}

func continued(terms []*big.Int) string {
	var b strings.Builder

	b.WriteByte('[')
	for k, t := range terms {
		switch k {
		case 0:
		case 1:
			b.WriteString("; ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')

	return b.String()
}

func sum(terms []rational.Rat) string {
	if len(terms) == 0 {
		return "0"
	}

	parts := make([]string, len(terms))
	for k, t := range terms {
		parts[k] = t.String()
	}

	return strings.Join(parts, " + ")
}
