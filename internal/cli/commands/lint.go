package commands

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"projector/internal/analyze"
	"projector/internal/cli/config"
	"projector/internal/diagnostic"
	"projector/internal/lint"
	"projector/internal/profile"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	var (
		paths       []string
		profileName string
		pkgPath     string
		typeName    string
		dir         string
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check property paths and profiles",
		Long: `Check property paths for malformed segments, duplicates and
leaf/branch conflicts.

With --package and --type the paths are also checked against the fields and
getters of a Go struct, with suggestions for unknown names. Without any path
source the whole profiles file is validated.`,
		Example: `  projector lint -p Address.City -p Address
  projector lint --profiles shapes.yaml
  projector lint --profile customer.card --package ./store --type Customer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			var diags diagnostic.Diagnostics

			selected := append([]string{}, paths...)
			scope := ""

			if profileName != "" {
				f, err := loadProfiles(cfg)
				if err != nil {
					return err
				}

				fromProfile, err := f.Paths(profileName)
				if err != nil {
					return err
				}

				selected = append(selected, fromProfile...)
				scope = profileName
			}

			if (pkgPath == "") != (typeName == "") {
				return errors.New("--package and --type must be used together")
			}

			switch {
			case len(selected) > 0 && pkgPath != "":
				logger.Debug("loading package", "package", pkgPath, "dir", dir)

				info, err := loadStruct(dir, pkgPath, typeName)
				if err != nil {
					return err
				}

				diags.Merge(lint.AgainstSchema(lint.TypeSchema(info), selected))
			case len(selected) > 0:
				diags.Merge(lint.Paths(scope, selected))
			case cfg.Profiles != "":
				f, err := profile.LoadFile(cfg.Profiles)
				if err != nil {
					return err
				}

				diags.Merge(profile.Validate(f))
			default:
				return errors.New("nothing to lint: pass --path, --profile or --profiles")
			}

			return report(cmd.OutOrStdout(), diags)
		},
	}

	cmd.Flags().StringArrayVarP(&paths, "path", "p", nil, "Dotted property path to check (repeatable)")
	cmd.Flags().StringVar(&profileName, "profile", "", "Named path list from the profiles file")
	cmd.Flags().StringVar(&pkgPath, "package", "", "Go package holding the source type")
	cmd.Flags().StringVar(&typeName, "type", "", "Name of the source struct type")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory the package pattern is resolved from")

	return cmd
}

// loadStruct analyzes pattern and returns the named struct. Relative
// patterns like "./store" are mapped to the import path the loader reports.
func loadStruct(dir, pattern, typeName string) (*analyze.TypeInfo, error) {
	a := analyze.NewAnalyzer().WithDir(dir)

	graph, err := a.LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, pkg := range slices.Sorted(maps.Keys(graph.Packages)) {
		info, err := a.GetStruct(pkg, typeName)
		if err == nil {
			return info, nil
		}

		lastErr = err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no packages matched %q", pattern)
	}

	return nil, lastErr
}

// report prints every diagnostic and a summary line. It returns an error
// when any diagnostic is an error.
func report(w io.Writer, diags diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	_, _ = fmt.Fprintf(w, "%d error(s), %d warning(s), %d info\n",
		len(diags.Errors), len(diags.Warnings), len(diags.Infos))

	if diags.HasErrors() {
		return fmt.Errorf("lint found %d error(s)", len(diags.Errors))
	}

	return nil
}
