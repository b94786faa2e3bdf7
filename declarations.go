package systemformatter

import (
	"github.com/go-errors/errors"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// Specifier is one named binding crossing a module boundary.
//
// For an import, Name is the local binding and From the remote export key;
// an empty From marks a namespace-style binding capturing the whole export
// object. For an export, Name is the published key and From the binding it is
// sourced from (the remote key when Source is set, otherwise the local
// identifier). Path carries the dependency path exactly as authored.
type Specifier struct {
	Name   string
	From   string
	Source *Module
	Path   string
	Node   jsast.Node
}

// DeclarationCollection is the shape shared by a module's imports and
// exports: the ordered binding names, the distinct dependency modules, and
// the individual specifier records.
type DeclarationCollection struct {
	names        []string
	modules      []*Module
	declarations []*Specifier
}

func newDeclarationCollection() *DeclarationCollection {
	return &DeclarationCollection{
		names:        make([]string, 0),
		modules:      make([]*Module, 0),
		declarations: make([]*Specifier, 0),
	}
}

func (dc *DeclarationCollection) Names() []string {
	return dc.names
}

func (dc *DeclarationCollection) Modules() []*Module {
	return dc.modules
}

func (dc *DeclarationCollection) Declarations() []*Specifier {
	return dc.declarations
}

// Add appends a specifier record, tracking its name and, when present, its
// source module (first occurrence only).
func (dc *DeclarationCollection) Add(specifier *Specifier) {
	dc.names = append(dc.names, specifier.Name)
	dc.declarations = append(dc.declarations, specifier)
	if specifier.Source != nil && !dc.containsModule(specifier.Source) {
		dc.modules = append(dc.modules, specifier.Source)
	}
}

func (dc *DeclarationCollection) containsModule(module *Module) bool {
	for _, m := range dc.modules {
		if m == module {
			return true
		}
	}
	return false
}

// FindSpecifierByName returns the specifier record for a binding name, or nil
// when the collection carries none.
func (dc *DeclarationCollection) FindSpecifierByName(name string) *Specifier {
	for _, specifier := range dc.declarations {
		if specifier.Name == name {
			return specifier
		}
	}
	return nil
}

// mustFindSpecifierByName asserts the collection invariant: every tracked
// name resolves to exactly one specifier record. Absence is an upstream
// analysis bug, not a recoverable condition.
func (dc *DeclarationCollection) mustFindSpecifierByName(name string) *Specifier {
	specifier := dc.FindSpecifierByName(name)
	if specifier == nil {
		panic(errors.Errorf("Formatter: no specifier record for binding %s", name))
	}
	return specifier
}

// firstSpecifierFromModule returns the first declaration in source order
// citing module as its source, or nil.
func (dc *DeclarationCollection) firstSpecifierFromModule(module *Module) *Specifier {
	for _, specifier := range dc.declarations {
		if specifier.Source == module {
			return specifier
		}
	}
	return nil
}

func (dc *DeclarationCollection) verify() {
	for _, name := range dc.names {
		dc.mustFindSpecifierByName(name)
	}
}
