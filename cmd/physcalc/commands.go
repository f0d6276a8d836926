package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/catalog"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/history"
	"github.com/san-kum/physcalc/internal/library"
	"github.com/san-kum/physcalc/internal/sweep"
	"github.com/san-kum/physcalc/internal/units"
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

func listChapters(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tSLUG\tTITLE\tEQUATIONS\tSOLVABLE")
	for _, c := range library.New().Chapters() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", c.Number, c.Slug, c.Title, len(c.Equations), len(c.Solvable()))
	}
	return w.Flush()
}

func showChapter(cmd *cobra.Command, args []string) error {
	lib := library.New()
	if len(args) == 2 {
		ch, eq, err := lib.Lookup(args[0], args[1])
		if err != nil {
			return err
		}
		return showEquation(ch, eq)
	}

	ch, err := lib.Chapter(args[0])
	if err != nil {
		return err
	}

	fmt.Println(labelStyle.Render(fmt.Sprintf("Chapter %d: %s", ch.Number, ch.Title)))
	fmt.Println(dimStyle.Render(ch.Description))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EQUATION\tFORMULA\tSOLVER")
	for _, eq := range ch.Equations {
		solver := "-"
		if eq.Solvable() {
			solver = eq.Solver.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", eq.Name, eq.Formula, solver)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(ch.Definitions) > 0 {
		fmt.Println()
		fmt.Println(labelStyle.Render("Definitions"))
		for _, d := range ch.Definitions {
			fmt.Printf("  %s: %s\n", d.Term, dimStyle.Render(d.Meaning))
		}
	}
	return nil
}

func showEquation(ch *catalog.Chapter, eq *catalog.Equation) error {
	fmt.Println(labelStyle.Render(eq.Name) + "  " + eq.Formula)
	if eq.Notes != "" {
		fmt.Println(dimStyle.Render(eq.Notes))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tPARAM\tDESCRIPTION")
	for _, v := range eq.Variables {
		param := "-"
		if eq.Solvable() {
			if p, err := ch.Param(eq, v.Symbol); err == nil {
				param = p
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.Symbol, param, v.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if eq.Solvable() {
		if names := config.ListPresets(eq.Solver.ID); len(names) > 0 {
			fmt.Println()
			fmt.Println(dimStyle.Render("examples: " + strings.Join(names, ", ")))
		}
	}
	return nil
}

// parseSets splits "key=value" flags. Keys may be display symbols or
// parameter names; parameter names are translated to symbols.
func parseSets(ch *catalog.Chapter, eq *catalog.Equation, sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected symbol=value", s)
		}
		sym, err := resolveSymbol(ch, eq, strings.TrimSpace(key))
		if err != nil {
			return nil, err
		}
		out[sym] = value
	}
	return out, nil
}

func resolveSymbol(ch *catalog.Chapter, eq *catalog.Equation, key string) (string, error) {
	if slices.Contains(eq.Symbols(), key) {
		return key, nil
	}
	if sym, ok := ch.Symbol(eq, key); ok {
		return sym, nil
	}
	return "", fmt.Errorf("%w: %q is not a variable of %s (have %s)",
		catalog.ErrUnmappedSymbol, key, eq.Name, strings.Join(eq.Symbols(), ", "))
}

func solveEquation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	calc, closeStore := openCalculator(cfg)
	defer closeStore()

	ch, eq, err := calc.Library().Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	if !eq.Solvable() {
		return fmt.Errorf("%w: %s", catalog.ErrNotSolvable, eq.Name)
	}

	inputs := make(map[string]string)
	if preset != "" {
		p := config.GetPreset(eq.Solver.ID, preset)
		if p == nil {
			return fmt.Errorf("unknown preset %q for %s (have %s)",
				preset, eq.Solver.ID, strings.Join(config.ListPresets(eq.Solver.ID), ", "))
		}
		for param, v := range p {
			if sym, ok := ch.Symbol(eq, param); ok {
				inputs[sym] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		target := eq.Solver.Forward()
		if solveFor != "" {
			target = solveFor
		}
		sym, err := resolveSymbol(ch, eq, target)
		if err != nil {
			return err
		}
		inputs[sym] = ""
	}

	given, err := parseSets(ch, eq, sets)
	if err != nil {
		return err
	}
	maps.Copy(inputs, given)

	res, err := calc.Calculate(context.Background(), calculator.Request{
		Chapter:  ch.Key(),
		Equation: eq.Solver.ID,
		Inputs:   inputs,
	})
	if err != nil {
		return err
	}

	desc := ""
	for _, v := range eq.Variables {
		if v.Symbol == res.Symbol {
			desc = v.Description
		}
	}
	fmt.Printf("%s = %s  %s\n",
		labelStyle.Render(res.Symbol),
		resultStyle.Render(strconv.FormatFloat(res.Value, 'g', -1, 64)),
		dimStyle.Render(desc))
	return nil
}

func plotEquation(cmd *cobra.Command, args []string) error {
	lib := library.New()
	ch, eq, err := lib.Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	if !eq.Solvable() {
		return fmt.Errorf("%w: %s", catalog.ErrNotSolvable, eq.Name)
	}

	given, err := parseSets(ch, eq, sets)
	if err != nil {
		return err
	}
	values, err := calculator.Parse(given)
	if err != nil {
		return err
	}
	fixed := make(map[string]float64, len(values))
	for sym, v := range values {
		if v == nil {
			continue
		}
		p, err := ch.Param(eq, sym)
		if err != nil {
			return err
		}
		fixed[p] = *v
	}

	varySym, err := resolveSymbol(ch, eq, vary)
	if err != nil {
		return err
	}
	varyParam, err := ch.Param(eq, varySym)
	if err != nil {
		return err
	}

	series, err := sweep.Run(cmd.Context(), sweep.Sweep{
		Solver: eq.Solver,
		Fixed:  fixed,
		Param:  varyParam,
		Min:    varyFrom,
		Max:    varyTo,
		Steps:  steps,
	})
	if err != nil {
		return err
	}

	fmt.Println(series.Plot(plotWidth, 12))
	if series.Skipped > 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d of %d points skipped: %v", series.Skipped, steps, series.LastErr)))
	}
	return nil
}

func convertUnits(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q", args[1])
	}
	result, err := units.Convert(args[0], value, args[2], args[3])
	if err != nil {
		return err
	}
	fmt.Printf("%g %s = %s %s\n", value, args[2], resultStyle.Render(strconv.FormatFloat(result, 'g', 10, 64)), args[3])
	return nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tBASE\tUNITS")
	for _, q := range units.Quantities() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", q.Name, q.Base, strings.Join(q.Units(), ", "))
	}
	return w.Flush()
}

func listHistory(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit := historyLimit
	if limit == 0 {
		limit = cfg.History.Limit
	}
	records, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no calculations recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCH\tEQUATION\tRESULT")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s = %g\n",
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Chapter,
			r.Equation,
			r.Symbol,
			r.Value,
		)
	}
	return w.Flush()
}

func showHistory(cmd *cobra.Command, args []string) error {
	store, _, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id:       %s\n", r.ID)
	fmt.Printf("time:     %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("chapter:  %s\n", r.Chapter)
	fmt.Printf("equation: %s (%s)\n", r.Equation, r.Solver)
	for _, k := range slices.Sorted(maps.Keys(r.Inputs)) {
		fmt.Printf("  %-16s %g\n", k, r.Inputs[k])
	}
	fmt.Printf("%s = %s\n", labelStyle.Render(r.Symbol), resultStyle.Render(strconv.FormatFloat(r.Value, 'g', -1, 64)))
	return nil
}

func exportHistory(cmd *cobra.Command, args []string) error {
	store, _, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := history.ExportCSV(out, records); err != nil {
		return err
	}
	if exportPath != "" {
		fmt.Printf("exported %d records to %s\n", len(records), exportPath)
	}
	return nil
}

func clearHistory(cmd *cobra.Command, args []string) error {
	store, _, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("history cleared")
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CH\tSOLVER\tPRESETS")
		for _, e := range library.New().Solvers() {
			id := e.Equation.Solver.ID
			fmt.Fprintf(w, "%d\t%s\t%s\n", e.Chapter.Number, id, strings.Join(config.ListPresets(id), ", "))
		}
		return w.Flush()
	}

	id := args[0]
	presets := config.ListPresets(id)
	if len(presets) == 0 {
		fmt.Printf("no presets for solver: %s\n", id)
		return nil
	}
	fmt.Printf("presets for %s:\n", id)
	for _, name := range presets {
		p := config.GetPreset(id, name)
		var parts []string
		for _, k := range slices.Sorted(maps.Keys(p)) {
			parts = append(parts, fmt.Sprintf("%s=%g", k, p[k]))
		}
		fmt.Printf("  %-12s %s\n", name, dimStyle.Render(strings.Join(parts, " ")))
	}
	return nil
}
