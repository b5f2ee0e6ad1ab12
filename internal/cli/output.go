package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"

	"go.llib.dev/cmpkit/internal/catalog"
)

const ErrUnknownFormat errorkit.Error = "ErrUnknownFormat"

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type writerFunc func(w io.Writer, products []catalog.Product) error

func lookupWriter(format string) (writerFunc, error) {
	switch format {
	case formatText:
		return writeText, nil
	case formatYAML:
		return writeYAML, nil
	case formatJSON:
		return writeJSON, nil
	default:
		return nil, ErrUnknownFormat.F("%q", format)
	}
}

func writeText(w io.Writer, products []catalog.Product) error {
	for _, p := range products {
		line := fmt.Sprintf("%s (%s", p.Name, p.Category.Name)
		if p.Unavailable {
			line += ", unavailable"
		}
		if _, err := fmt.Fprintln(w, line+")"); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, products []catalog.Product) (rErr error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer errorkit.Finish(&rErr, enc.Close)
	return enc.Encode(catalog.Catalog{Products: products})
}

func writeJSON(w io.Writer, products []catalog.Product) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog.Catalog{Products: products})
}
