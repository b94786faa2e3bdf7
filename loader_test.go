package systemformatter

import (
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

func callExport(t *testing.T, exports *goja.Object, name string, arguments ...goja.Value) goja.Value {
	t.Helper()
	fn, ok := goja.AssertFunction(exports.Get(name))
	require.True(t, ok, "export %s is not callable", name)
	result, err := fn(goja.Undefined(), arguments...)
	require.NoError(t, err)
	return result
}

func TestLoaderExecutesGeneratedModules(t *testing.T) {
	table := NewModuleTable()
	dep := analyzedModule(t, table, "_dep", "dep", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(40)))),
	), "./dep")
	main := analyzedModule(t, table, "_main", "main", program(
		importDecl("./dep", named("x")),
		exportDecl(jsast.Var(jsast.Declarator("y", &jsast.BinaryExpression{
			Operator: "+", Left: jsast.Ident("x"), Right: jsast.Num(2),
		}))),
	))
	collectAll(t, table)

	formatter := NewFormatter(Options{})
	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(formatter, dep))
	require.NoError(t, loader.RegisterModule(formatter, main))

	exports, err := loader.Import("main")
	require.NoError(t, err)
	assert.Equal(t, int64(42), exports.Get("y").ToInteger())

	depExports, err := loader.Import("dep")
	require.NoError(t, err)
	assert.Equal(t, int64(40), depExports.Get("x").ToInteger())
}

func TestLoaderRepublishesLiveBindings(t *testing.T) {
	table := NewModuleTable()
	producer := analyzedModule(t, table, "_producer", "producer", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(1)))),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("bump"),
			Body: jsast.Block(jsast.ExprStmt(jsast.Assign(jsast.Ident("x"),
				&jsast.BinaryExpression{Operator: "+", Left: jsast.Ident("x"), Right: jsast.Num(1)},
			))),
		}),
	))
	collectAll(t, table)

	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(NewFormatter(Options{}), producer))

	// A handwritten consumer records every value its setter observes, giving
	// the notification sequence of the producer.
	spySource := `System.register("spy", ["./producer"], function(_export) {
  var seen = [];
  function producerSetter(_m) { seen.push(_m.x); }
  return {
    setters: [producerSetter],
    execute: function() {
      "use strict";
      _export("seen", seen);
    }
  };
});`
	require.NoError(t, loader.Register("spy", spySource))

	spyExports, err := loader.Import("spy")
	require.NoError(t, err)

	producerExports, err := loader.Import("producer")
	require.NoError(t, err)
	callExport(t, producerExports, "bump")
	callExport(t, producerExports, "bump")

	loader.Runtime().Set("spySeen", spyExports.Get("seen"))
	observed, err := loader.Runtime().RunString("JSON.stringify(spySeen)")
	require.NoError(t, err)

	// Initial wiring sees nothing yet, the two execute-time notifications
	// deliver 1 twice (x, then bump republishing nothing new about x), and
	// each reassignment notifies exactly once with the fresh value.
	assert.Equal(t, "[null,1,1,2,3]", observed.String())
}

func TestLoaderChainedAssignmentNotifiesEveryBinding(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_pair", "pair", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(1)))),
		exportDecl(jsast.Var(jsast.Declarator("y", jsast.Num(1)))),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("both"),
			Body: jsast.Block(jsast.ExprStmt(
				jsast.Assign(jsast.Ident("x"), jsast.Assign(jsast.Ident("y"), jsast.Num(2))),
			)),
		}),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("readX"),
			Body: jsast.Block(jsast.Return(jsast.Ident("x"))),
		}),
	))
	collectAll(t, table)

	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(NewFormatter(Options{}), module))

	exports, err := loader.Import("pair")
	require.NoError(t, err)
	callExport(t, exports, "both")

	// Both sides of x = y = 2 republish, and the inner notification still
	// yields the assigned value for the outer assignment.
	assert.Equal(t, int64(2), exports.Get("x").ToInteger())
	assert.Equal(t, int64(2), exports.Get("y").ToInteger())
	assert.Equal(t, int64(2), callExport(t, exports, "readX").ToInteger())
}

func TestLoaderToleratesCircularDependencies(t *testing.T) {
	table := NewModuleTable()
	a := analyzedModule(t, table, "_a", "a", program(
		importDecl("./b", named("b")),
		exportDecl(jsast.Var(jsast.Declarator("a", jsast.Str("a")))),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("readB"),
			Body: jsast.Block(jsast.Return(jsast.Ident("b"))),
		}),
	), "./a")
	b := analyzedModule(t, table, "_b", "b", program(
		importDecl("./a", named("a")),
		exportDecl(jsast.Var(jsast.Declarator("b", jsast.Str("b")))),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("readA"),
			Body: jsast.Block(jsast.Return(jsast.Ident("a"))),
		}),
	), "./b")
	collectAll(t, table)

	formatter := NewFormatter(Options{})
	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(formatter, a))
	require.NoError(t, loader.RegisterModule(formatter, b))

	aExports, err := loader.Import("a")
	require.NoError(t, err)
	bExports, err := loader.Import("b")
	require.NoError(t, err)

	// Both sides observe the other's final bindings despite the cycle.
	assert.Equal(t, "b", callExport(t, aExports, "readB").String())
	assert.Equal(t, "a", callExport(t, bExports, "readA").String())
}

func TestLoaderPostfixUpdateSemantics(t *testing.T) {
	table := NewModuleTable()
	counter := analyzedModule(t, table, "_counter", "counter", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(5)))),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("post"),
			Body: jsast.Block(jsast.Return(&jsast.UpdateExpression{
				Operator: "++", Argument: jsast.Ident("x"),
			})),
		}),
		exportDecl(&jsast.FunctionDeclaration{
			Name: jsast.Ident("pre"),
			Body: jsast.Block(jsast.Return(&jsast.UpdateExpression{
				Operator: "++", Prefix: true, Argument: jsast.Ident("x"),
			})),
		}),
	))
	collectAll(t, table)

	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(NewFormatter(Options{}), counter))

	exports, err := loader.Import("counter")
	require.NoError(t, err)

	// Postfix yields the original value while the export observes the
	// updated one.
	assert.Equal(t, int64(5), callExport(t, exports, "post").ToInteger())
	assert.Equal(t, int64(6), exports.Get("x").ToInteger())

	// Prefix yields the updated value.
	assert.Equal(t, int64(7), callExport(t, exports, "pre").ToInteger())
	assert.Equal(t, int64(7), exports.Get("x").ToInteger())
}

func TestLoaderNamespaceImport(t *testing.T) {
	table := NewModuleTable()
	dep := analyzedModule(t, table, "_dep", "dep", program(
		exportDecl(jsast.Var(jsast.Declarator("a", jsast.Num(1)), jsast.Declarator("b", jsast.Num(2)))),
	), "./m")
	main := analyzedModule(t, table, "_main", "main", program(
		importDecl("./m", namespace("ns")),
		exportDecl(jsast.Var(jsast.Declarator("total", &jsast.BinaryExpression{
			Operator: "+",
			Left:     jsast.Member(jsast.Ident("ns"), "a"),
			Right:    jsast.Member(jsast.Ident("ns"), "b"),
		}))),
	))
	collectAll(t, table)

	formatter := NewFormatter(Options{})
	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(formatter, dep))
	require.NoError(t, loader.RegisterModule(formatter, main))

	loader.SetPathResolver(func(path string) string {
		if path == "./m" {
			return "dep"
		}
		return defaultPathResolver(path)
	})

	exports, err := loader.Import("main")
	require.NoError(t, err)
	assert.Equal(t, int64(3), exports.Get("total").ToInteger())
}

func TestLoaderDefaultExport(t *testing.T) {
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

	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(NewFormatter(Options{}), module))

	exports, err := loader.Import("mod")
	require.NoError(t, err)
	sum := callExport(t, exports, "default",
		loader.Runtime().ToValue(2), loader.Runtime().ToValue(3))
	assert.Equal(t, int64(5), sum.ToInteger())
}

func TestLoaderReExportFacade(t *testing.T) {
	table := NewModuleTable()
	dep := analyzedModule(t, table, "_dep", "dep", program(
		exportDecl(jsast.Var(jsast.Declarator("v", jsast.Num(7)))),
	), "./dep")
	facade := analyzedModule(t, table, "_facade", "facade", program(
		reExport("./dep", exported("v")),
	))
	collectAll(t, table)

	formatter := NewFormatter(Options{})
	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(formatter, dep))
	require.NoError(t, loader.RegisterModule(formatter, facade))

	exports, err := loader.Import("facade")
	require.NoError(t, err)
	assert.Equal(t, int64(7), exports.Get("v").ToInteger())
}

func TestLoaderUnknownModule(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Import("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestLoaderUnresolvedDependency(t *testing.T) {
	loader := NewLoader()
	source := `System.register("broken", ["./missing"], function(_export) {
  return { setters: [function(_m) {}], execute: function() {} };
});`
	require.NoError(t, loader.Register("broken", source))

	_, err := loader.Import("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "./missing")
}

func TestLoaderAnonymousRegistrationAdoptsName(t *testing.T) {
	table := NewModuleTable()
	module := analyzedModule(t, table, "_mod", "lonely", program(
		exportDecl(jsast.Var(jsast.Declarator("x", jsast.Num(1)))),
	))
	collectAll(t, table)

	loader := NewLoader()
	require.NoError(t, loader.RegisterModule(NewFormatter(Options{Anonymous: true}), module))

	exports, err := loader.Import("lonely")
	require.NoError(t, err)
	assert.Equal(t, int64(1), exports.Get("x").ToInteger())
}
