package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/polybox/internal/poly"
	"github.com/san-kum/polybox/internal/viz"
)

func polynomialCommands() []*cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate [polynomial]",
		Short: "check a polynomial against the grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := poly.ValidatePolynomial(args[0])
			if !res.Valid {
				return fmt.Errorf("invalid polynomial: %w", res.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid: %d terms, degree %d\n", res.TermCount, res.Degree)
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse [polynomial]",
		Short: "show the terms as written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPolynomial(cmd.OutOrStdout(), poly.Parse(args[0]))
		},
	}
	parseCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	normalizeCmd := &cobra.Command{
		Use:   "normalize [polynomial]",
		Short: "combine like terms and sort by degree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPolynomial(cmd.OutOrStdout(), poly.NormalizeText(args[0]))
		},
	}
	normalizeCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	inspectCmd := &cobra.Command{
		Use:   "inspect [polynomial]",
		Short: "normalized form, LaTeX, shapes and a coefficient chart",
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}

	suggestCmd := &cobra.Command{
		Use:   "suggest [prefix]",
		Short: "autocomplete suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			for _, s := range poly.Suggest(prefix, suggestLimit) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", poly.DefaultSuggestionLimit, "maximum suggestions")

	return []*cobra.Command{validateCmd, parseCmd, normalizeCmd, inspectCmd, suggestCmd}
}

func printPolynomial(w io.Writer, p poly.Polynomial) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TERM\tCOEFF\tVAR\tEXP\tSHAPE")
	for _, t := range p.Terms() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			t.Format(app.notation),
			poly.FormatNumber(t.Coefficient()),
			t.Variable(),
			t.Exponent(),
			t.Shape(),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s  (degree %d, %d terms)\n", p.Format(app.notation), p.Degree(), p.TermCount())
	return nil
}

func inspect(cmd *cobra.Command, args []string) error {
	res := poly.ValidatePolynomial(args[0])
	if !res.Valid {
		return fmt.Errorf("invalid polynomial: %w", res.Err)
	}
	p := poly.NormalizeText(args[0])
	st := viz.NewStyles(app.theme)
	w := cmd.OutOrStdout()

	row := func(label, value string) {
		fmt.Fprintln(w, st.Label.Render(label)+st.Value.Render(value))
	}
	fmt.Fprintln(w, st.Title.Render("POLYNOMIAL"))
	row("Normalized", p.Format(app.notation))
	row("LaTeX", p.LaTeX())
	row("Degree", fmt.Sprint(p.Degree()))
	row("Variable", orDash(p.Variable()))

	groups := p.ByShape()
	row("Quadratic", joinTerms(groups.Quadratic))
	row("Linear", joinTerms(groups.Linear))
	row("Constant", joinTerms(groups.Constant))
	row("Higher", joinTerms(groups.Higher))

	fmt.Fprintln(w)
	fmt.Fprintln(w, viz.CoefficientChart(p, 8))
	return nil
}

func joinTerms(terms []poly.Term) string {
	if len(terms) == 0 {
		return "-"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Format(app.notation)
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
