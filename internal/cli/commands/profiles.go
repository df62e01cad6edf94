package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"projector/internal/cli/config"
)

// NewProfilesCommand creates the profiles command.
func NewProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles [name]",
		Short: "List profiles or show the paths of one",
		Long: `Without arguments, list every profile in the profiles file with its
description, extended profiles first. With a name, print the flattened path list of that profile,
inherited paths first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig(cmd.Context())
			out := cmd.OutOrStdout()

			f, err := loadProfiles(cfg)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				paths, err := f.Paths(args[0])
				if err != nil {
					return err
				}

				for _, p := range paths {
					_, _ = fmt.Fprintln(out, p)
				}

				return nil
			}

			order, err := f.Order()
			if err != nil {
				return err
			}

			for _, name := range order {
				p, _ := f.Get(name)

				line := p.Name
				if len(p.Extends) > 0 {
					line += " (extends " + strings.Join(p.Extends, ", ") + ")"
				}

				if p.Description != "" {
					line += ": " + p.Description
				}

				_, _ = fmt.Fprintln(out, line)
			}

			return nil
		},
	}
}
