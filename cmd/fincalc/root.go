// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mamdani/config"
	"github.com/katalvlaran/mamdani/engine"
	"github.com/katalvlaran/mamdani/finance"
	"github.com/katalvlaran/mamdani/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	income, price, savings, credit float64

	explain   bool
	edgeCases bool
	modelPath string
	logLevel  string
	logFormat string
}

// field ties a flag to its interactive prompt.
type field struct {
	flag   string
	prompt string
	dst    *float64
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "fincalc",
		Short: "Fuzzy affordability and risk assessment for a purchase",
		Long: "fincalc scores how affordable a purchase is and how risky it is for the buyer,\n" +
			"using a Mamdani fuzzy rule base over disposable income, item price, savings\n" +
			"and credit score. Values not given as flags are read from standard input.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.income, "income", 0, "Monthly disposable income")
	fl.Float64Var(&f.price, "price", 0, "Item price")
	fl.Float64Var(&f.savings, "savings", 0, "Savings")
	fl.Float64Var(&f.credit, "credit", 0, "Credit score (300-850)")
	fl.BoolVar(&f.explain, "explain", false, "Print input degrees and fired rules")
	fl.BoolVar(&f.edgeCases, "edge-cases", false, "Run the built-in reference scenarios and exit")
	fl.StringVar(&f.modelPath, "model", "", "Load the rule base from a YAML file instead of the built-in model")
	fl.StringVar(&f.logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "text", "Log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, f *rootFlags) error {
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, f.logFormat, cmd.ErrOrStderr())
	log := logging.New("fincalc")

	m, err := loadModel(f.modelPath, engine.WithLogger(logging.New("engine")))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if f.edgeCases {
		for _, ec := range finance.EdgeCases() {
			fmt.Fprintf(out, "\n# %s\n", ec.Name)
			if err := assess(out, m, ec.Applicant, f.explain); err != nil {
				return err
			}
		}

		return nil
	}

	fields := []field{
		{"income", "Enter Disposable Income: ", &f.income},
		{"price", "Enter Item Price: ", &f.price},
		{"savings", "Enter Savings: ", &f.savings},
		{"credit", "Enter Credit Score: ", &f.credit},
	}
	var missing []field
	for _, fd := range fields {
		if !cmd.Flags().Changed(fd.flag) {
			missing = append(missing, fd)
		}
	}
	if len(missing) > 0 {
		fmt.Fprint(out, banner)
		if err := prompt(cmd.InOrStdin(), out, missing); err != nil {
			return err
		}
	}

	a := finance.Applicant{
		DisposableIncome: f.income,
		ItemPrice:        f.price,
		Savings:          f.savings,
		CreditScore:      f.credit,
	}
	log.Debug("assessing", "income", a.DisposableIncome, "price", a.ItemPrice, "savings", a.Savings, "credit", a.CreditScore)

	return assess(out, m, a, f.explain)
}

func loadModel(path string, opts ...engine.Option) (*finance.Model, error) {
	if path == "" {
		return finance.NewModel(opts...)
	}
	d, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return finance.FromDocument(d, opts...)
}

// errInput is returned for unreadable interactive answers.
var errInput = errors.New("fincalc: invalid number")

// prompt asks for each missing value in turn, one line per answer.
func prompt(in io.Reader, out io.Writer, fields []field) error {
	sc := bufio.NewScanner(in)
	for _, fd := range fields {
		fmt.Fprint(out, fd.prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("fincalc: read %s: %w", fd.flag, err)
			}

			return fmt.Errorf("fincalc: read %s: %w", fd.flag, io.ErrUnexpectedEOF)
		}
		text := strings.ReplaceAll(strings.TrimSpace(sc.Text()), ",", "")
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %q", errInput, fd.flag, sc.Text())
		}
		*fd.dst = v
	}

	return nil
}

func assess(out io.Writer, m *finance.Model, a finance.Applicant, explain bool) error {
	res, err := m.Assess(a)
	if err != nil {
		return err
	}
	writeReport(out, a, res)
	if explain {
		tr, err := m.Engine().Trace(a.Inputs())
		if err != nil {
			return err
		}
		writeTrace(out, m.Engine(), tr)
	}

	return nil
}
