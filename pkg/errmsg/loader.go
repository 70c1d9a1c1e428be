package errmsg

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithYAMLDir returns an Option that loads templates from YAML files in an fs.FS.
// Each file at the root holds a flat id-to-template map and is named after
// its locale: {locale}.yaml or {locale}.yml. Other files are ignored.
//
// Example structure:
//
//	en.yaml
//	pt-BR.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, true)
	}
}

func loadDir(c *Catalog, fsys fs.FS, override bool) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading message dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		locale, err := canonical(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			return fmt.Errorf("%w: file %q is not named after a locale", ErrInvalidFile, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}

		c.add(locale, messages, override)
	}

	return nil
}
