package systemformatter

import (
	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// ExportedReference builds the access expression outside code uses to read an
// exported binding of a module: a two-part member access rooted at the
// module's id. Local reference sites inside the module itself never need
// rewriting; exported values are captured by closures inside the generated
// execute function, and imported bindings become ordinary local variables
// assigned by setters.
func ExportedReference(module *Module, name string) *jsast.MemberExpression {
	return jsast.Member(jsast.Ident(module.ID()), name)
}
