package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arroyodata/driftdiff"

	"github.com/scott-cotton/cli"
)

// loadDocument reads and parses one input file. format overrides extension
// detection when non-empty; otherwise .yaml/.yml parse as YAML and
// everything else as JSON
func loadDocument(path, format string) (driftdiff.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return driftdiff.Value{}, fmt.Errorf("the file '%s' was not found", path)
		}
		return driftdiff.Value{}, fmt.Errorf("reading '%s': %w", path, err)
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	switch format {
	case "json", "j":
		v, err := driftdiff.ParseJSON(data)
		if err != nil {
			return driftdiff.Value{}, fmt.Errorf("the file '%s' is not a valid JSON document: %w", path, err)
		}
		return v, nil
	case "yaml", "y":
		v, err := driftdiff.ParseYAML(data)
		if err != nil {
			return driftdiff.Value{}, fmt.Errorf("the file '%s' is not a valid YAML document: %w", path, err)
		}
		return v, nil
	default:
		return driftdiff.Value{}, fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, format)
	}
}
