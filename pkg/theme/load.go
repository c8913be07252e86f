package theme

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a theme overlay:
//
//	themes:
//	  - id: acme
//	    name: Acme
//	    category: brand
//	    header: {bg: "#112233", fg: "#FFFFFF", primary600: "#223344"}
//	    body:   {bg: "#FFFFFF", fg: "#112233"}
//	    footer: {bg: "#F9FAFB", fg: "#475467"}
type catalogFile struct {
	Themes []Definition `yaml:"themes"`
}

// LoadYAML decodes theme definitions. Definitions are not validated here;
// validation happens when they are added to a catalog.
func LoadYAML(r io.Reader) ([]Definition, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrParsingCatalog, err)
	}
	return f.Themes, nil
}

// LoadCatalogFile extends base with the themes defined in the YAML file at path.
// An empty path returns base unchanged.
func LoadCatalogFile(base *Catalog, path string) (*Catalog, error) {
	if path == "" {
		return base, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingCatalog, err)
	}
	defer fh.Close()

	defs, err := LoadYAML(fh)
	if err != nil {
		return nil, err
	}
	return base.Extend(defs...)
}
