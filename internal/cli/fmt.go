package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/calebcase/numeral"
	"github.com/calebcase/numeral/decimal"
	"github.com/calebcase/numeral/rational"
)

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt <value>",
	Short: "Format a value as decimal text",
	Long: `Print a value in the plain, scientific, engineering and SI forms. Each
line shows the pretty string, which follows the formatting flags, and the
canonical string, which reads back exactly. Flags go before the value; a
negative value follows --.

Examples:
    numeral fmt 1234567.5
    numeral fmt 1000/7
    numeral fmt -- -1/3
    numeral fmt --precision 2 0.0000123
    numeral fmt --recurring=false --scale 10 1/3`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r, err := parseRat(args[0])
	if err != nil {
		return err
	}
	log.Printf("parsed %q as %s", args[0], r)

	enc := decimal.NewEncoder(c.DecimalSchema())

	forms := []struct {
		name   string
		format func(rational.Rat) (numeral.Pair, error)
	}{
		{"plain", enc.Plain},
		{"scientific", enc.Scientific},
		{"engineering", enc.Engineering},
		{"si", enc.SI},
	}

	w := cmd.OutOrStdout()
	for _, form := range forms {
		pair, err := form.format(r)
		if err != nil {
			return err
		}

		field(w, form.name, pair.Pretty+"  "+pair.Canonical)
	}

	return nil
}
