package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

// Built-in asset references.
const (
	AssetDefault     = "adhan_default"
	AssetMakkah      = "adhan_makkah"
	AssetMadinah     = "adhan_madinah"
	AssetTraditional = "adhan_traditional"
)

// ErrAssetNotFound is returned when a reference resolves to no file.
var ErrAssetNotFound = adhan.ErrAssetNotFound

// DefaultExtensions are tried when a reference has no extension.
func DefaultExtensions() []string {
	return []string{".mp3", ".ogg", ".wav", ".flac"}
}

// BuiltinAssets lists the recordings shipped with the application.
func BuiltinAssets() []string {
	return []string{AssetDefault, AssetMakkah, AssetMadinah, AssetTraditional}
}

// Catalog maps asset references to files in a directory.
type Catalog struct {
	dir        string
	extensions []string
}

// NewCatalog creates a catalog over dir.
func NewCatalog(dir string, extensions []string) *Catalog {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}

	return &Catalog{
		dir:        dir,
		extensions: extensions,
	}
}

// Dir returns the assets directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// List returns the built-in references followed by every other audio file in the directory.
func (c *Catalog) List() ([]string, error) {
	result := BuiltinAssets()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}

		return nil, fmt.Errorf("failed to read assets directory %s: %w", c.dir, err)
	}

	var found []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		ext := strings.ToLower(filepath.Ext(name))
		if !slices.Contains(c.extensions, ext) {
			continue
		}

		ref := strings.TrimSuffix(name, filepath.Ext(name))
		if slices.Contains(result, ref) || slices.Contains(found, ref) {
			continue
		}

		found = append(found, ref)
	}

	slices.Sort(found)

	return append(result, found...), nil
}

// Resolve returns the file for ref. Absolute paths are used as is.
func (c *Catalog) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty reference: %w", ErrAssetNotFound)
	}

	var candidates []string

	if filepath.IsAbs(ref) {
		candidates = append(candidates, ref)
	} else {
		if strings.Contains(ref, "..") {
			return "", fmt.Errorf("%q: %w", ref, ErrAssetNotFound)
		}

		base := filepath.Join(c.dir, ref)
		candidates = append(candidates, base)

		if filepath.Ext(ref) == "" {
			for _, ext := range c.extensions {
				candidates = append(candidates, base+ext)
			}
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%q: %w", ref, ErrAssetNotFound)
}
