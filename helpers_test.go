package systemformatter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

func analyzedModule(t *testing.T, table *ModuleTable, id, name string, body *jsast.Program, paths ...string) *Module {
	t.Helper()
	module, err := NewModule(id, name, body)
	require.NoError(t, err)
	table.AddModule(module, paths...)
	return module
}

func collectAll(t *testing.T, table *ModuleTable) {
	t.Helper()
	for _, module := range table.Modules() {
		require.NoError(t, table.CollectDeclarations(module))
	}
}

func rewriteModuleBody(t *testing.T, module *Module) string {
	t.Helper()
	body := eraseImports(module, module.Body().Statements)
	body = newExportRewriter(module, DefaultNotifyParam).rewriteStatements(body)
	return jsast.Print(&jsast.Program{Statements: body})
}

func named(local string) *jsast.ImportSpecifier {
	return &jsast.ImportSpecifier{Local: jsast.Ident(local), Imported: jsast.Ident(local)}
}

func aliased(local, imported string) *jsast.ImportSpecifier {
	return &jsast.ImportSpecifier{Local: jsast.Ident(local), Imported: jsast.Ident(imported)}
}

func namespace(local string) *jsast.ImportSpecifier {
	return &jsast.ImportSpecifier{Local: jsast.Ident(local)}
}

func exported(local string) *jsast.ExportSpecifier {
	return &jsast.ExportSpecifier{Local: jsast.Ident(local)}
}

func exportedAs(local, name string) *jsast.ExportSpecifier {
	return &jsast.ExportSpecifier{Local: jsast.Ident(local), Exported: jsast.Ident(name)}
}

func importDecl(source string, specifiers ...*jsast.ImportSpecifier) *jsast.ImportDeclaration {
	return &jsast.ImportDeclaration{Specifiers: specifiers, Source: jsast.Str(source)}
}

func exportDecl(declaration jsast.Statement) *jsast.ExportNamedDeclaration {
	return &jsast.ExportNamedDeclaration{Declaration: declaration}
}

func exportList(specifiers ...*jsast.ExportSpecifier) *jsast.ExportNamedDeclaration {
	return &jsast.ExportNamedDeclaration{Specifiers: specifiers}
}

func reExport(source string, specifiers ...*jsast.ExportSpecifier) *jsast.ExportNamedDeclaration {
	return &jsast.ExportNamedDeclaration{Specifiers: specifiers, Source: jsast.Str(source)}
}

func program(statements ...jsast.Statement) *jsast.Program {
	return &jsast.Program{Statements: statements}
}
