package catalog

import (
	"embed"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
)

//go:embed data/*.yaml
var embedded embed.FS

// LoadDefault builds the Catalog from the ruleset shipped with the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return Load(sub)
}

// Load builds a Catalog from every *.yaml file at the root of fsys. Each file
// may contribute any of the top level sections of Data; files are read in
// name order and their sections appended.
func Load(fsys fs.FS) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog files")
	}
	if len(names) == 0 {
		return nil, errors.FailedPrecondition("no catalog files found")
	}
	sort.Strings(names)

	var data Data
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog file %s", name)
		}

		var part Data
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition,
				"failed to parse catalog file %s", path.Base(name))
		}

		data.Races = append(data.Races, part.Races...)
		data.Classes = append(data.Classes, part.Classes...)
		data.Backgrounds = append(data.Backgrounds, part.Backgrounds...)
		data.Alignments = append(data.Alignments, part.Alignments...)
		data.Conditions = append(data.Conditions, part.Conditions...)
		data.Spells = append(data.Spells, part.Spells...)
	}

	return New(data)
}
