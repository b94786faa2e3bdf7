package systemformatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

func TestFormatModuleWireShape(t *testing.T) {
	table := NewModuleTable()
	analyzedModule(t, table, "_dep", "dep", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(40)))),
	), "./dep")
	main := analyzedModule(t, table, "_main", "main", program(
		importDecl("./dep", named("x")),
		exportDecl(jsast.Var(jsast.Declarator("y", &jsast.BinaryExpression{
			Operator: "+", Left: jsast.Ident("x"), Right: jsast.Num(1),
		}))),
	))
	collectAll(t, table)

	output := jsast.Print(NewFormatter(Options{}).FormatModule(main))

	expected := "System.register(\"main\", [\"./dep\"], function(_export) {\n" +
		"  var x;\n" +
		"  function _dep(_m) {\n" +
		"    x = _m[\"x\"];\n" +
		"  }\n" +
		"  return {\n" +
		"    setters: [_dep],\n" +
		"    execute: function() {\n" +
		"      \"use strict\";\n" +
		"      var y = _export(\"y\", (x + 1));\n" +
		"    }\n" +
		"  };\n" +
		"});\n"
	assert.Equal(t, expected, output)
}

func TestFormatModuleWithoutImportsOrExports(t *testing.T) {
	table := NewModuleTable()
	empty := analyzedModule(t, table, "_empty", "empty", program(
		jsast.Var(jsast.Declarator("local", jsast.Num(1))),
	))
	collectAll(t, table)

	output := jsast.Print(NewFormatter(Options{}).FormatModule(empty))

	expected := "System.register(\"empty\", [], function(_export) {\n" +
		"  return {\n" +
		"    setters: [],\n" +
		"    execute: function() {\n" +
		"      \"use strict\";\n" +
		"      var local = 1;\n" +
		"    }\n" +
		"  };\n" +
		"});\n"
	assert.Equal(t, expected, output)
}

func TestFormatAnonymousModeOmitsNameLiteral(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_mod", "mod", program())
	collectAll(t, table)

	output := jsast.Print(NewFormatter(Options{Anonymous: true}).FormatModule(module))

	assert.True(t, strings.HasPrefix(output, "System.register([], function(_export) {"))
	assert.NotContains(t, output, "\"mod\"")
}

func TestFormatReplacesModuleTree(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_mod", "mod", program(
		jsast.Var(jsast.Declarator("a", jsast.Num(1))),
	))
	collectAll(t, table)

	formatted := NewFormatter(Options{}).FormatModule(module)

	assert.Same(t, formatted, module.Body())
	require.Len(t, formatted.Statements, 1)
}

func TestFormatAnonymousDefaultFunctionModule(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_mod", "mod", program(
		&jsast.ExportDefaultDeclaration{Declaration: &jsast.FunctionDeclaration{
			Params: []*jsast.Identifier{jsast.Ident("a"), jsast.Ident("b")},
			Body: jsast.Block(jsast.Return(
				&jsast.BinaryExpression{Operator: "+", Left: jsast.Ident("a"), Right: jsast.Ident("b")},
			)),
		}},
	))
	collectAll(t, table)

	output := jsast.Print(NewFormatter(Options{}).FormatModule(module))

	assert.Equal(t, 1, strings.Count(output, "_export(\"default\""))
	assert.Contains(t, output, "setters: []")
	assert.NotContains(t, output, "var ")
}

func TestFormatCircularModulesStayIndexAligned(t *testing.T) {
	table := NewModuleTable()
	a := analyzedModule(t, table, "_a", "a", program(
		importDecl("./b", named("x")),
		exportDecl(jsast.Var(jsast.Declarator("y", jsast.Num(1)))),
	), "./a")
	b := analyzedModule(t, table, "_b", "b", program(
		importDecl("./a", named("y")),
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(2)))),
	), "./b")
	collectAll(t, table)

	formatter := NewFormatter(Options{})
	outputA := jsast.Print(formatter.FormatModule(a))
	outputB := jsast.Print(formatter.FormatModule(b))

	assert.Contains(t, outputA, "System.register(\"a\", [\"./b\"], ")
	assert.Contains(t, outputA, "function _b(_m) {\n    x = _m[\"x\"];\n  }")
	assert.Contains(t, outputA, "setters: [_b]")

	assert.Contains(t, outputB, "System.register(\"b\", [\"./a\"], ")
	assert.Contains(t, outputB, "function _a(_m) {\n    y = _m[\"y\"];\n  }")
	assert.Contains(t, outputB, "setters: [_a]")
}

func TestFormatCustomNotifyParam(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_mod", "mod", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(1)))),
	))
	collectAll(t, table)

	output := jsast.Print(NewFormatter(Options{NotifyParam: "__es6Export"}).FormatModule(module))

	assert.Contains(t, output, "function(__es6Export) {")
	assert.Contains(t, output, "__es6Export(\"x\", 1)")
	assert.NotContains(t, output, "_export(")
}

func TestExportedReference(t *testing.T) {
	module, err := NewModule("_dep", "dep", program())
	require.NoError(t, err)

	assert.Equal(t, "_dep.x", ExportedReference(module, "x").String())
}
