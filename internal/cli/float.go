package cli

import (
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/float"
)

var floatBinary = map[string]func(float.Float, float.Float) float.Float{
	"add": float.Float.Add,
	"sub": float.Float.Sub,
	"mul": float.Float.Mul,
	"quo": float.Float.Quo,
}

// floatCmd represents the float command
var floatCmd = &cobra.Command{
	Use:   "float <a> [op b]",
	Short: "Inspect a floating point value",
	Long: `Round a value into the selected float profile and show its bit fields,
its normalised 1.fraction p exponent form and its exact value. With an
operation (add, sub, mul or quo) and a second operand the exact result is
rounded once into the profile.

Values are read in the selected radix with an e (radix 10) or p exponent,
or as nan, inf and -inf. With --normalized they must be in the normalised
form. Flags go before the operands; a leading negative operand follows --.

Examples:
    numeral float 0.1
    numeral float 0.1 add 0.2
    numeral float -- -1.5 mul 2
    numeral float --radix 16 --normalized 1.8p-1
    numeral float --profile half 65504`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return Error.New("expected <a> or <a> <op> <b>, got %d arguments", len(args))
		}

		return nil
	},
	RunE: runFloat,
}

func init() {
	floatCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(floatCmd)
}

func runFloat(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	profile, err := c.FloatProfile(float.NewRegistry())
	if err != nil {
		return err
	}

	radix, err := c.RadixValue()
	if err != nil {
		return err
	}

	f, err := float.Parse(profile, args[0], radix, c.Normalized)
	if err != nil {
		return err
	}
	log.Printf("a = %s", f.Normalise(numeral.Hex))

	if len(args) == 3 {
		op, ok := floatBinary[strings.ToLower(args[1])]
		if !ok {
			return Error.New("unknown operation %q (one of add, sub, mul, quo)", args[1])
		}

		b, err := float.Parse(profile, args[2], radix, c.Normalized)
		if err != nil {
			return err
		}
		log.Printf("b = %s", b.Normalise(numeral.Hex))

		f = op(f, b)
	}

	pair := f.Pair(radix, c.Normalized)

	w := cmd.OutOrStdout()
	field(w, "profile", profile)
	field(w, "class", class(f))
	field(w, "bits", f.Bits().BitText(numeral.Bin))
	field(w, "hex", f.Bits().BitText(numeral.Hex))
	field(w, "sign", sign(f))
	field(w, "exponent", f.Exponent())
	field(w, "biased", f.BiasedExponent())
	field(w, "significand", f.SignificandBits().Text(16))
	field(w, "normalised", f.Normalise(radix))
	field(w, "text", f.Text(radix))
	field(w, "pretty", pair.Pretty)
	field(w, "exact", pair.Canonical)

	return nil
}

func class(f float.Float) string {
	switch {
	case f.IsNaN():
		return "nan"
	case f.IsInf():
		return "infinite"
	case f.IsZero():
		return "zero"
	case f.IsSubnormal():
		return "subnormal"
	}

	return "normal"
}

func sign(f float.Float) int {
	if f.Signbit() {
		return 1
	}

	return 0
}
