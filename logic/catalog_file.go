package logic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// LoadCatalog reads a catalog from a YAML file of the form:
//
//	products:
//	  - name: Widget
//	    unit_price: 10
//	    description: A widget
//	    image: https://example.com/widget.jpg
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s has no products", path)
	}

	return NewCatalog(f.Products)
}
