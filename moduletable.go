package systemformatter

import (
	"github.com/apex/log"
	"github.com/go-errors/errors"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// ModuleTable is the analyzer-side registry mapping authored dependency paths
// to Module records. It also carries the declaration collector that fills a
// module's import/export collections from its already-built tree, linking
// every specifier to its source module through the table.
type ModuleTable struct {
	modules []*Module
	byPath  map[string]*Module
}

func NewModuleTable() *ModuleTable {
	return &ModuleTable{
		modules: make([]*Module, 0),
		byPath:  make(map[string]*Module),
	}
}

// AddModule registers an analyzed module under the paths other modules use to
// reference it.
func (t *ModuleTable) AddModule(module *Module, paths ...string) {
	t.modules = append(t.modules, module)
	for _, path := range paths {
		t.byPath[path] = module
	}
}

// CreateModule builds a module with a table-generated unique identifier and
// registers it. Callers supplying their own id scheme use NewModule and
// AddModule directly.
func (t *ModuleTable) CreateModule(name string, body *jsast.Program, paths ...string) (*Module, error) {
	module, err := NewModule(generateModuleIdentifier(), name, body)
	if err != nil {
		return nil, err
	}
	t.AddModule(module, paths...)
	return module, nil
}

// GetModule resolves an authored dependency path, nil when unknown.
func (t *ModuleTable) GetModule(path string) *Module {
	return t.byPath[path]
}

func (t *ModuleTable) Modules() []*Module {
	return t.modules
}

// CollectDeclarations scans the module's top-level tree and records every
// import/export binding in the module's declaration collections.
func (t *ModuleTable) CollectDeclarations(module *Module) error {
	for _, statement := range module.Body().Statements {
		switch s := statement.(type) {
		case *jsast.ImportDeclaration:
			source, err := t.sourceModule(module, s.Source.Value)
			if err != nil {
				return err
			}
			for _, specifier := range s.Specifiers {
				from := ""
				if specifier.Imported != nil {
					from = specifier.Imported.Name
				}
				module.Imports().Add(&Specifier{
					Name:   specifier.Local.Name,
					From:   from,
					Source: source,
					Path:   s.Source.Value,
					Node:   s,
				})
			}

		case *jsast.ExportNamedDeclaration:
			if err := t.collectNamedExport(module, s); err != nil {
				return err
			}

		case *jsast.ExportDefaultDeclaration:
			module.Exports().Add(&Specifier{
				Name: "default",
				From: "default",
				Node: s,
			})
		}
	}
	return nil
}

func (t *ModuleTable) collectNamedExport(module *Module, decl *jsast.ExportNamedDeclaration) error {
	if decl.Source != nil {
		source, err := t.sourceModule(module, decl.Source.Value)
		if err != nil {
			return err
		}
		for _, specifier := range decl.Specifiers {
			module.Exports().Add(&Specifier{
				Name:   exportedName(specifier),
				From:   specifier.Local.Name,
				Source: source,
				Path:   decl.Source.Value,
				Node:   decl,
			})
		}
		return nil
	}

	if decl.Declaration != nil {
		names, err := declaredNames(decl.Declaration)
		if err != nil {
			return err
		}
		for _, name := range names {
			module.Exports().Add(&Specifier{
				Name: name,
				From: name,
				Node: decl,
			})
		}
		return nil
	}

	for _, specifier := range decl.Specifiers {
		module.Exports().Add(&Specifier{
			Name: exportedName(specifier),
			From: specifier.Local.Name,
			Node: decl,
		})
	}
	return nil
}

func (t *ModuleTable) sourceModule(module *Module, path string) (*Module, error) {
	source := t.GetModule(path)
	if source == nil {
		return nil, errors.Errorf("ModuleTable: unresolved module path %s referenced by %s",
			path, module.Name())
	}

	log.Debugf("ModuleTable: Resolved dependency %s of %s to %s", path, module.Name(), source.Name())
	return source, nil
}

func exportedName(specifier *jsast.ExportSpecifier) string {
	if specifier.Exported != nil {
		return specifier.Exported.Name
	}
	return specifier.Local.Name
}

// declaredNames lists the local bindings an export-bearing declaration
// introduces.
func declaredNames(declaration jsast.Statement) ([]string, error) {
	switch d := declaration.(type) {
	case *jsast.FunctionDeclaration:
		return []string{d.Name.Name}, nil
	case *jsast.ClassDeclaration:
		return []string{d.Name.Name}, nil
	case *jsast.VariableDeclaration:
		names := make([]string, len(d.Declarators))
		for i, declarator := range d.Declarators {
			names[i] = declarator.Name.Name
		}
		return names, nil
	default:
		return nil, errors.Errorf("ModuleTable: unsupported exported declaration %T", d)
	}
}
