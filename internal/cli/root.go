// Package cli exposes the dough calculator as a cobra command.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Simplici0/bakersmath/internal/config"
	"github.com/Simplici0/bakersmath/internal/dough"
	"github.com/Simplici0/bakersmath/internal/presenter"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f59e0b"))

type options struct {
	params   dough.Params
	currency string
	asJSON   bool
}

// NewRootCommand creates the doughcalc command. defaultCurrency seeds the
// --currency flag.
func NewRootCommand(defaultCurrency string) *cobra.Command {
	opts := options{params: dough.Defaults()}

	cmd := &cobra.Command{
		Use:   "doughcalc",
		Short: "Compute a dough formulation from baker's percentages",
		Long: `doughcalc converts baker's percentages into ingredient weights, the water
temperature needed to reach a desired dough temperature, and a rough cost per unit.

Examples:
  doughcalc --quantity 6 --weight 250 --hydration 62
  doughcalc --preferment 20 --preferment-hydration 100
  doughcalc --target-temp 24 --room-temp 27 --json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	p := &opts.params
	flags := cmd.Flags()
	flags.Float64VarP(&p.Quantity, "quantity", "q", p.Quantity, "Number of dough balls")
	flags.Float64VarP(&p.UnitWeight, "weight", "w", p.UnitWeight, "Weight per ball in grams")
	flags.Float64Var(&p.HydrationPct, "hydration", p.HydrationPct, "Hydration (%)")
	flags.Float64Var(&p.SaltPct, "salt", p.SaltPct, "Salt (%)")
	flags.Float64Var(&p.YeastPct, "yeast", p.YeastPct, "Yeast (%)")
	flags.Float64Var(&p.OilPct, "oil", p.OilPct, "Oil (%)")
	flags.Float64Var(&p.SugarPct, "sugar", p.SugarPct, "Sugar or honey (%)")
	flags.Float64Var(&p.PrefermentPct, "preferment", p.PrefermentPct, "Share of total flour in the preferment (%)")
	flags.Float64Var(&p.PrefermentHydrationPct, "preferment-hydration", p.PrefermentHydrationPct, "Preferment hydration (%)")
	flags.Float64Var(&p.RoomTemp, "room-temp", p.RoomTemp, "Room temperature")
	flags.Float64Var(&p.FlourTemp, "flour-temp", p.FlourTemp, "Flour temperature")
	flags.Float64Var(&p.FrictionFactorTemp, "friction", p.FrictionFactorTemp, "Mixer friction factor")
	flags.Float64Var(&p.TargetDoughTemp, "target-temp", p.TargetDoughTemp, "Desired dough temperature")
	flags.Float64Var(&p.FlourCostPerKg, "flour-cost", p.FlourCostPerKg, "Flour cost per kg")
	flags.Float64Var(&p.ToppingsCostPerUnit, "toppings-cost", p.ToppingsCostPerUnit, "Toppings cost per ball")
	flags.StringVar(&opts.currency, "currency", defaultCurrency, "Currency symbol")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the raw result as JSON")

	return cmd
}

func run(out io.Writer, opts options) error {
	result, err := dough.Compute(opts.params)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(out, titleStyle.Render("Dough formulation")); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	view := presenter.Present(opts.params, result, presenter.Options{CurrencySymbol: opts.currency})
	return presenter.WriteText(out, view)
}

// Execute runs the root command with the configured currency symbol and
// exits non-zero on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := NewRootCommand(cfg.CurrencySymbol).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
