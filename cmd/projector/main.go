// Package main provides the CLI entrypoint for projector.
//
// projector reduces YAML or JSON documents to the properties named by dotted
// paths, keeping the nesting of the source:
//   - project: reduce a document or list of documents
//   - lint: check paths and profiles, optionally against a Go struct
//   - profiles: list named path lists
package main

import (
	"os"

	"projector/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
