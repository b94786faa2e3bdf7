package systemformatter

import (
	"github.com/apex/log"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// Formatter rewrites an analyzed module's syntax tree into a single
// System.register call with deferred execution and setter-based dependency
// wiring, preserving module semantics (lazy execution, circular tolerance,
// live bindings) in pre-module-syntax form.
type Formatter struct {
	options Options
}

func NewFormatter(options Options) *Formatter {
	if options.NotifyParam == "" {
		options.NotifyParam = DefaultNotifyParam
	}
	return &Formatter{options: options}
}

// FormatModule replaces the module's entire top-level tree with the
// registration call and returns the new tree. Contract violations in the
// analyzed metadata are fatal and panic immediately; no partial registration
// is produced.
func (f *Formatter) FormatModule(module *Module) *jsast.Program {
	log.Debugf("Formatter: Formatting module %s (%s)", module.Name(), module.ID())

	module.Imports().verify()
	module.Exports().verify()

	notify := f.options.NotifyParam

	body := eraseImports(module, module.Body().Statements)
	body = newExportRewriter(module, notify).rewriteStatements(body)

	metadata := buildDependencyMetadata(module)
	setters := synthesizeSetters(module, metadata, notify)

	// The rewritten body becomes the deferred execute entry point, running in
	// strict mode.
	executeBody := append([]jsast.Statement{jsast.ExprStmt(jsast.Str("use strict"))}, body...)
	execute := jsast.Func("", nil, jsast.Block(executeBody...))

	declareBody := make([]jsast.Statement, 0, len(setters)+2)
	if hoisted := hoistedImportDeclaration(module); hoisted != nil {
		declareBody = append(declareBody, hoisted)
	}
	declareBody = append(declareBody, setters...)

	setterRefs := make([]jsast.Expression, len(metadata.setterNames))
	for i, name := range metadata.setterNames {
		setterRefs[i] = jsast.Ident(name)
	}
	descriptor := &jsast.ObjectLiteral{
		Properties: []*jsast.Property{
			{Key: jsast.Ident("setters"), Value: jsast.Array(setterRefs...)},
			{Key: jsast.Ident("execute"), Value: execute},
		},
	}
	declareBody = append(declareBody, jsast.Return(descriptor))

	declare := jsast.Func("", []*jsast.Identifier{jsast.Ident(notify)}, jsast.Block(declareBody...))

	dependencyPaths := make([]jsast.Expression, len(metadata.paths))
	for i, path := range metadata.paths {
		dependencyPaths[i] = jsast.Str(path)
	}

	arguments := make([]jsast.Expression, 0, 3)
	if !f.options.Anonymous {
		arguments = append(arguments, jsast.Str(module.Name()))
	}
	arguments = append(arguments, jsast.Array(dependencyPaths...), declare)

	registration := jsast.Call(jsast.Member(jsast.Ident("System"), "register"), arguments...)

	program := &jsast.Program{
		Statements: []jsast.Statement{jsast.ExprStmt(registration)},
	}
	module.setBody(program)
	return program
}

// hoistedImportDeclaration declares every locally-imported binding once,
// ahead of the setters that assign them. Nil when the module imports nothing.
func hoistedImportDeclaration(module *Module) jsast.Statement {
	names := module.Imports().Names()
	if len(names) == 0 {
		return nil
	}
	declarators := make([]*jsast.VariableDeclarator, len(names))
	for i, name := range names {
		declarators[i] = jsast.Declarator(name, nil)
	}
	return jsast.Var(declarators...)
}
