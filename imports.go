package systemformatter

import (
	"github.com/apex/log"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// eraseImports removes every import declaration from the body. Imports carry
// no executable semantics, only static binding metadata already captured in
// the module's import collection. Sibling statements keep their order.
func eraseImports(module *Module, statements []jsast.Statement) []jsast.Statement {
	remaining := make([]jsast.Statement, 0, len(statements))
	erased := 0
	for _, statement := range statements {
		if _, ok := statement.(*jsast.ImportDeclaration); ok {
			erased++
			continue
		}
		remaining = append(remaining, statement)
	}
	if erased > 0 {
		log.Debugf("Formatter: Erased %d import declarations from %s", erased, module.Name())
	}
	return remaining
}
