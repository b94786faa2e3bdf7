package systemformatter

import (
	"github.com/go-errors/errors"
)

// dependencyMetadata pairs, index-aligned, the setter identifiers and the
// authored dependency paths of one module's registration.
type dependencyMetadata struct {
	modules     []*Module
	setterNames []string
	paths       []string
}

// buildDependencyMetadata deduplicates the modules a given module depends on,
// via imports and via sourced re-exports, into one ordered list. First
// occurrence wins across imports then exports; the first declaration in
// source order citing a dependency supplies the authored path. A dependency
// with no citing specifier means the collections were built inconsistently
// upstream and is fatal.
func buildDependencyMetadata(module *Module) *dependencyMetadata {
	metadata := &dependencyMetadata{
		modules:     make([]*Module, 0),
		setterNames: make([]string, 0),
		paths:       make([]string, 0),
	}

	seen := make(map[*Module]bool)
	add := func(dependency *Module) {
		if seen[dependency] {
			return
		}
		seen[dependency] = true

		specifier := module.Imports().firstSpecifierFromModule(dependency)
		if specifier == nil {
			specifier = module.Exports().firstSpecifierFromModule(dependency)
		}
		if specifier == nil {
			panic(errors.Errorf("Formatter: no specifier cites dependency %s of %s",
				dependency.Name(), module.Name()))
		}

		metadata.modules = append(metadata.modules, dependency)
		metadata.setterNames = append(metadata.setterNames, dependency.ID())
		metadata.paths = append(metadata.paths, specifier.Path)
	}

	for _, dependency := range module.Imports().Modules() {
		add(dependency)
	}
	for _, dependency := range module.Exports().Modules() {
		add(dependency)
	}

	return metadata
}
