package systemformatter

import (
	"github.com/go-errors/errors"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// Module is one compilation unit as delivered by the upstream analyzer: a
// globally unique id (used as a bare identifier in generated code), the
// registration key, the module's syntax tree, and the import/export
// declaration collections. The formatter only ever mutates the tree.
type Module struct {
	id      string
	name    string
	body    *jsast.Program
	imports *DeclarationCollection
	exports *DeclarationCollection
}

func NewModule(id, name string, body *jsast.Program) (*Module, error) {
	if !isValidIdentifier(id) {
		return nil, errors.Errorf("Module id is not a valid identifier: %s", id)
	}
	return &Module{
		id:      id,
		name:    name,
		body:    body,
		imports: newDeclarationCollection(),
		exports: newDeclarationCollection(),
	}, nil
}

func (m *Module) ID() string {
	return m.id
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Body() *jsast.Program {
	return m.body
}

func (m *Module) Imports() *DeclarationCollection {
	return m.imports
}

func (m *Module) Exports() *DeclarationCollection {
	return m.exports
}

func (m *Module) setBody(body *jsast.Program) {
	m.body = body
}
