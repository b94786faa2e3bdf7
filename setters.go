package systemformatter

import (
	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// synthesizeSetters builds one named function declaration per dependency
// module, invoked by the loader with that dependency's live export object.
// Each setter assigns the local bindings imported from its dependency and
// republishes the re-exports sourced from it, in declaration order. A
// dependency with only re-exports still gets a setter so the setters array
// stays index-aligned with the dependency path list.
func synthesizeSetters(module *Module, metadata *dependencyMetadata, notify string) []jsast.Statement {
	setters := make([]jsast.Statement, 0, len(metadata.modules))

	for i, dependency := range metadata.modules {
		body := make([]jsast.Statement, 0)

		for _, specifier := range module.Imports().Declarations() {
			if specifier.Source != dependency {
				continue
			}
			value := bindingValue(specifier)
			body = append(body,
				jsast.ExprStmt(jsast.Assign(jsast.Ident(specifier.Name), value)))
		}

		for _, specifier := range module.Exports().Declarations() {
			if specifier.Source != dependency {
				continue
			}
			value := bindingValue(specifier)
			body = append(body,
				jsast.ExprStmt(jsast.Call(jsast.Ident(notify), jsast.Str(specifier.Name), value)))
		}

		setters = append(setters, &jsast.FunctionDeclaration{
			Name:   jsast.Ident(metadata.setterNames[i]),
			Params: []*jsast.Identifier{jsast.Ident(setterParam)},
			Body:   jsast.Block(body...),
		})
	}

	return setters
}

// bindingValue resolves a specifier against the setter's binding parameter:
// a named key reads one property, a namespace binding takes the whole export
// object.
func bindingValue(specifier *Specifier) jsast.Expression {
	if specifier.From == "" {
		return jsast.Ident(setterParam)
	}
	return jsast.Index(jsast.Ident(setterParam), jsast.Str(specifier.From))
}
