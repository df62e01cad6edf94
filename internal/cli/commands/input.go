package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"projector/internal/cli/config"
	"projector/internal/profile"
)

// readDocument decodes a YAML or JSON document from the named file, or from
// stdin when name is empty or "-".
func readDocument(stdin io.Reader, name string) (any, error) {
	r := stdin

	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		r = f
	}

	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	return doc, nil
}

// writeResult renders v in the configured output format.
func writeResult(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	}
}

// loadProfiles reads the profiles file named in the configuration.
func loadProfiles(cfg *config.Config) (*profile.File, error) {
	if cfg.Profiles == "" {
		return nil, errors.New("no profiles file configured (use --profiles or set profiles in projector.yaml)")
	}

	return profile.LoadFile(cfg.Profiles)
}
