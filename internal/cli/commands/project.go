package commands

import (
	"github.com/spf13/cobra"

	"projector/internal/cli/config"
	"projector/projection"
)

// NewProjectCommand creates the project command.
func NewProjectCommand() *cobra.Command {
	var (
		paths       []string
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "project [file]",
		Short: "Project a document down to selected paths",
		Long: `Read a YAML or JSON document and keep only the properties named by the
given dotted paths. A top-level list is projected element by element.

Without --path or --profile the document is passed through unchanged,
unless mode is "reduce".`,
		Example: `  projector project customer.yaml -p Email -p Address.City
  cat orders.json | projector project --profile order.summary -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			var name string
			if len(args) > 0 {
				name = args[0]
			}

			doc, err := readDocument(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			// nil selects the mode's no-path behavior; an explicit flag never does
			var selected []string
			if cmd.Flags().Changed("path") {
				selected = append([]string{}, paths...)
			}

			if profileName != "" {
				f, err := loadProfiles(cfg)
				if err != nil {
					return err
				}

				fromProfile, err := f.Paths(profileName)
				if err != nil {
					return err
				}

				selected = append(append([]string{}, selected...), fromProfile...)
			}

			opts, err := cfg.ProjectorOptions(logger)
			if err != nil {
				return err
			}

			p := projection.New(opts...)
			logger.Debug("projecting document",
				"paths", len(selected),
				"mode", p.Mode().String(),
			)

			var result any
			if list, ok := doc.([]any); ok {
				result, err = projection.ProjectListWith(p, list, selected)
			} else {
				result, err = p.Project(doc, selected)
			}

			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), cfg.Output, result)
		},
	}

	cmd.Flags().StringArrayVarP(&paths, "path", "p", nil, "Dotted property path to keep (repeatable)")
	cmd.Flags().StringVar(&profileName, "profile", "", "Named path list from the profiles file")

	return cmd
}
