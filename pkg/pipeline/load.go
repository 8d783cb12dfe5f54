package pipeline

import (
	"github.com/matzehuels/tierpyramid/pkg/tier"
)

// LoadCatalog returns the catalog stored at path, or the built-in catalog
// when path is empty.
func LoadCatalog(path string) (tier.Catalog, error) {
	if path == "" {
		return tier.Default(), nil
	}
	return tier.Load(path)
}
