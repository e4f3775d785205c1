package cli

import (
	"fmt"
	"log"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/integer"
)

var (
	intBits bool
)

var intUnary = map[string]func(integer.Int) (integer.Int, error){
	"show": func(a integer.Int) (integer.Int, error) { return a, nil },
	"neg":  integer.Int.Neg,
	"abs":  integer.Int.Abs,
	"not":  func(a integer.Int) (integer.Int, error) { return a.Not(), nil },
}

var intBinary = map[string]func(integer.Int, integer.Int) (integer.Int, error){
	"add": integer.Int.Add,
	"sub": integer.Int.Sub,
	"mul": integer.Int.Mul,
	"quo": integer.Int.Quo,
	"rem": integer.Int.Rem,
	"pow": integer.Int.Pow,
	"min": func(a, b integer.Int) (integer.Int, error) { return a.Min(b), nil },
	"max": func(a, b integer.Int) (integer.Int, error) { return a.Max(b), nil },

	"and":  func(a, b integer.Int) (integer.Int, error) { return a.And(b), nil },
	"or":   func(a, b integer.Int) (integer.Int, error) { return a.Or(b), nil },
	"xor":  func(a, b integer.Int) (integer.Int, error) { return a.Xor(b), nil },
	"nand": func(a, b integer.Int) (integer.Int, error) { return a.Nand(b), nil },
	"nor":  func(a, b integer.Int) (integer.Int, error) { return a.Nor(b), nil },
	"xnor": func(a, b integer.Int) (integer.Int, error) { return a.Xnor(b), nil },
}

var intShift = map[string]func(integer.Int, int) (integer.Int, error){
	"shl":  integer.Int.ShiftLeft,
	"shr":  integer.Int.ShiftRight,
	"shrl": integer.Int.ShiftRightLogical,
	"rotl": integer.Int.RotateLeft,
	"rotr": integer.Int.RotateRight,
}

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int <op> <a> [b]",
	Short: "Fixed width integer arithmetic",
	Long: `Apply an operation to integers held in a register of the selected width
and encoding. Operands are read in the selected radix; with --bits they are
raw bit patterns instead of signed values. Flags go before the operation.

Operations:
    show neg abs not                      one operand
    add sub mul quo rem pow min max       two operands
    and or xor nand nor xnor              two operands
    shl shr shrl rotl rotr                operand and a decimal bit count

Examples:
    numeral int --width 8 add 127 1
    numeral int --width 8 --encoding ones-complement neg 0
    numeral int --radix 2 --bits --width 8 rotl 1000_0001 1
    numeral int --encoding negabinary --width 16 show -1`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runInt,
}

func init() {
	intCmd.Flags().BoolVar(&intBits, "bits", false, "read operands as raw bit patterns")
	intCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(intCmd)
}

func runInt(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	schema, err := c.IntegerSchema()
	if err != nil {
		return err
	}

	radix, err := c.RadixValue()
	if err != nil {
		return err
	}

	op := strings.ToLower(args[0])

	parse := integer.Parse
	if intBits {
		parse = integer.ParseBits
	}

	a, err := parse(schema, args[1], radix)
	if err != nil {
		return err
	}
	log.Printf("a = %s (%s)", a, a.BitText(numeral.Bin))

	var result integer.Int

	switch {
	case intUnary[op] != nil:
		if len(args) != 2 {
			return Error.New("%s takes one operand", op)
		}

		result, err = intUnary[op](a)
	case intBinary[op] != nil:
		if len(args) != 3 {
			return Error.New("%s takes two operands", op)
		}

		b, err := parse(schema, args[2], radix)
		if err != nil {
			return err
		}
		log.Printf("b = %s (%s)", b, b.BitText(numeral.Bin))

		result, err = intBinary[op](a, b)
		if err != nil {
			return err
		}
	case intShift[op] != nil:
		if len(args) != 3 {
			return Error.New("%s takes an operand and a bit count", op)
		}

		n, err := strconv.Atoi(args[2])
		if err != nil {
			return numeral.MalformedNumber.New("bit count %q", args[2])
		}

		result, err = intShift[op](a, n)
		if err != nil {
			return err
		}
	default:
		return Error.New("unknown operation %q (one of %s)", op, strings.Join(intOps(), ", "))
	}
	if err != nil {
		return err
	}

	data, err := result.MarshalBinary()
	if err != nil {
		return err
	}

	pair := result.Pair(radix)

	w := cmd.OutOrStdout()
	field(w, "schema", schema)
	field(w, "range", fmt.Sprintf("[%s, %s]", bound(schema.Min()), bound(schema.Max())))
	field(w, "value", pair.Canonical)
	field(w, "pretty", pair.Pretty)
	field(w, "bits", result.BitText(numeral.Bin))
	field(w, "hex", result.BitText(numeral.Hex))
	field(w, "bytes", fmt.Sprintf("%x", data))

	return nil
}

func bound(v *big.Int) string {
	if v == nil {
		return "unlimited"
	}

	return v.String()
}

func intOps() []string {
	ops := []string{}
	for op := range intUnary {
		ops = append(ops, op)
	}
	for op := range intBinary {
		ops = append(ops, op)
	}
	for op := range intShift {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	return ops
}
