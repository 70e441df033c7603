package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sharedkit/pkg/guard"
)

func newCatalogCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective guard message catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.settings.GuardCatalogPath
			}
			cat, err := a.loadCatalog(file)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cat); err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog overrides (defaults to GUARD_CATALOG_PATH)")
	return cmd
}

// loadCatalog returns the default catalog when path is empty.
func (a *app) loadCatalog(path string) (*guard.Catalog, error) {
	if path == "" {
		return guard.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	cat, err := guard.LoadCatalog(f)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalog loaded", "path", path)
	return cat, nil
}
