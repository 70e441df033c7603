package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
)

type checkFlags struct {
	min, max   int64
	expected   string
	pattern    string
	extensions []string
	catalog    string
}

type predicate func(c *guard.Checker, f checkFlags, values []any) guard.Outcome

var predicates = map[string]predicate{
	"null_or_empty": func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsNullOrEmpty(v...) },
	"null_or_any":   func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsNullOrAny(v...) },
	"greater":       func(_ *guard.Checker, f checkFlags, v []any) guard.Outcome { return guard.IsGreater(f.max, v...) },
	"less":          func(_ *guard.Checker, f checkFlags, v []any) guard.Outcome { return guard.IsLess(f.min, v...) },
	"range":         func(_ *guard.Checker, f checkFlags, v []any) guard.Outcome { return guard.IsRange(f.min, f.max, v...) },
	"equal": func(_ *guard.Checker, f checkFlags, v []any) guard.Outcome {
		return guard.IsEqual(parseValue(f.expected), v...)
	},
	"regex":     func(c *guard.Checker, f checkFlags, v []any) guard.Outcome { return c.IsRegexMatch(f.pattern, v...) },
	"name":      func(c *guard.Checker, _ checkFlags, v []any) guard.Outcome { return c.IsName(v...) },
	"email":     func(c *guard.Checker, _ checkFlags, v []any) guard.Outcome { return c.IsEmail(v...) },
	"subdomain": func(c *guard.Checker, _ checkFlags, v []any) guard.Outcome { return c.IsSubdomain(v...) },
	"domain":    func(c *guard.Checker, _ checkFlags, v []any) guard.Outcome { return c.IsDomain(v...) },
	"hostname":  func(c *guard.Checker, _ checkFlags, v []any) guard.Outcome { return c.IsHostname(v...) },
	"directory": func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsDirectory(v...) },
	"file":      func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsFile(v...) },
	"extension": func(_ *guard.Checker, f checkFlags, v []any) guard.Outcome {
		return guard.IsFileExtension(f.extensions, v...)
	},
	"digit":     func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsDigit(v...) },
	"lowercase": func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsLowercase(v...) },
	"uppercase": func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsUppercase(v...) },
	"especial":  func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsEspecialChars(v...) },
	"unique":    func(_ *guard.Checker, _ checkFlags, v []any) guard.Outcome { return guard.IsUniqueChars(v...) },
}

func predicateNames() []string {
	return slices.Sorted(maps.Keys(predicates))
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check <predicate> [values...]",
		Short: "Run a guard predicate over values and report failures",
		Long: "Run a guard predicate over values and print has_errors and count.\n" +
			"Values that parse as integers are checked as numbers.\n\n" +
			"Predicates: " + strings.Join(predicateNames(), ", "),
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return predicateNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := predicates[args[0]]
			if !ok {
				return fmt.Errorf("unknown predicate %q, expected one of: %s", args[0], strings.Join(predicateNames(), ", "))
			}

			path := f.catalog
			if path == "" {
				path = a.settings.GuardCatalogPath
			}
			cat, err := a.loadCatalog(path)
			if err != nil {
				return err
			}

			values := make([]any, 0, len(args)-1)
			for _, s := range args[1:] {
				values = append(values, parseValue(s))
			}

			out := p(guard.NewChecker(cat), f, values)
			a.log.Debug("check evaluated", "predicate", args[0], "values", len(values), "count", out.Count)

			fmt.Fprintf(cmd.OutOrStdout(), "has_errors=%t count=%d\n", out.HasErrors, out.Count)
			if out.HasErrors {
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&f.min, "min", 0, "lower bound for less and range")
	cmd.Flags().Int64Var(&f.max, "max", 0, "upper bound for greater and range")
	cmd.Flags().StringVar(&f.expected, "expected", "", "expected value for equal")
	cmd.Flags().StringVar(&f.pattern, "pattern", "", "regular expression for regex")
	cmd.Flags().StringSliceVar(&f.extensions, "ext", nil, "allowed extensions for extension, e.g. .png,.jpg")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "YAML catalog overrides (defaults to GUARD_CATALOG_PATH)")
	return cmd
}

// parseValue treats integer-looking arguments as numbers.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
