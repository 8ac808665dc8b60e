package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed templates.yaml
var builtinTemplates []byte

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return LoadBytes(builtinTemplates, "yaml")
})

// Default returns the built-in template catalog.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("built-in template catalog is invalid: %v", err))
	}
	return c
}
