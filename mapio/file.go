package mapio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// Format names a map document encoding.
type Format int

const (
	// FormatJSON is the canonical map document.
	FormatJSON Format = iota
	// FormatYAML is the hand-editable rendition.
	FormatYAML
)

// FormatOf picks the format from the file extension (.json, .yaml, .yml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the map document at path.
func Load(path string, opts ...Option) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: %w", err)
	}
	defer f.Close()

	var g *core.Graph
	if format == FormatYAML {
		g, err = DecodeYAML(f, opts...)
	} else {
		g, err = Decode(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Graph) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == FormatYAML {
		return EncodeYAML(f, g)
	}

	return Encode(f, g)
}
