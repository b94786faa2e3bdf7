package systemformatter

import (
	"github.com/go-errors/errors"

	"github.com/caridy/es6-module-transpiler-system-formatter/jsast"
)

// exportRewriter turns every export-bearing statement into equivalent
// non-exporting code plus explicit notify calls, and re-notifies on every
// later mutation of an exported binding so consumers holding a live view stay
// current.
type exportRewriter struct {
	module *Module
	notify string

	// bindings maps a local binding name to its canonical export record.
	// Mutation sites anywhere in the body are a many-to-one relation onto the
	// exported name; building the map once avoids re-deriving export status
	// per statement.
	bindings map[string]*Specifier
}

func newExportRewriter(module *Module, notify string) *exportRewriter {
	bindings := make(map[string]*Specifier)
	for _, specifier := range module.Exports().Declarations() {
		if specifier.Source != nil {
			continue
		}
		local := specifier.From
		if local == "" {
			local = specifier.Name
		}
		if _, ok := bindings[local]; !ok {
			bindings[local] = specifier
		}
	}
	return &exportRewriter{
		module:   module,
		notify:   notify,
		bindings: bindings,
	}
}

func (er *exportRewriter) notifyCall(name string, value jsast.Expression) *jsast.CallExpression {
	return jsast.Call(jsast.Ident(er.notify), jsast.Str(name), value)
}

// rewriteStatements replaces export statements in place and then rewrites
// reassignment sites across the remaining body.
func (er *exportRewriter) rewriteStatements(statements []jsast.Statement) []jsast.Statement {
	rewritten := make([]jsast.Statement, 0, len(statements))
	for _, statement := range statements {
		switch s := statement.(type) {
		case *jsast.ExportNamedDeclaration:
			rewritten = append(rewritten, er.rewriteNamed(s)...)
		case *jsast.ExportDefaultDeclaration:
			rewritten = append(rewritten, er.rewriteDefault(s)...)
		default:
			rewritten = append(rewritten, statement)
		}
	}
	er.rewriteMutations(rewritten)
	return rewritten
}

func (er *exportRewriter) rewriteNamed(decl *jsast.ExportNamedDeclaration) []jsast.Statement {
	if decl.Source != nil {
		// Sourced re-exports carry no body code; the setter synthesized for
		// the source module republishes them.
		return nil
	}

	if decl.Declaration == nil {
		// Bare specifier list: one notify call per listed name, each
		// referencing the pre-existing local identifier.
		statements := make([]jsast.Statement, 0, len(decl.Specifiers))
		for _, specifier := range decl.Specifiers {
			exported := specifier.Local.Name
			if specifier.Exported != nil {
				exported = specifier.Exported.Name
			}
			statements = append(statements,
				jsast.ExprStmt(er.notifyCall(exported, jsast.Ident(specifier.Local.Name))))
		}
		return statements
	}

	switch d := decl.Declaration.(type) {
	case *jsast.FunctionDeclaration:
		return []jsast.Statement{
			d,
			jsast.ExprStmt(er.notifyCall(d.Name.Name, jsast.Ident(d.Name.Name))),
		}
	case *jsast.ClassDeclaration:
		return []jsast.Statement{
			d,
			jsast.ExprStmt(er.notifyCall(d.Name.Name, jsast.Ident(d.Name.Name))),
		}
	case *jsast.VariableDeclaration:
		// Wrapping the initializer keeps assignment and notification atomic
		// in one expression; declarators without initializer stay plain.
		for _, declarator := range d.Declarators {
			if declarator.Init != nil {
				declarator.Init = er.notifyCall(declarator.Name.Name, declarator.Init)
			}
		}
		return []jsast.Statement{d}
	default:
		panic(errors.Errorf("Formatter: unsupported export declaration %T in %s", d, er.module.Name()))
	}
}

func (er *exportRewriter) rewriteDefault(decl *jsast.ExportDefaultDeclaration) []jsast.Statement {
	switch d := decl.Declaration.(type) {
	case *jsast.FunctionDeclaration:
		if d.Name == nil {
			expression := &jsast.FunctionExpression{Params: d.Params, Body: d.Body}
			return []jsast.Statement{jsast.ExprStmt(er.notifyCall("default", expression))}
		}
		return []jsast.Statement{
			d,
			jsast.ExprStmt(er.notifyCall("default", jsast.Ident(d.Name.Name))),
		}
	case *jsast.ClassDeclaration:
		if d.Name == nil {
			expression := &jsast.ClassExpression{SuperClass: d.SuperClass, Methods: d.Methods}
			return []jsast.Statement{jsast.ExprStmt(er.notifyCall("default", expression))}
		}
		return []jsast.Statement{
			d,
			jsast.ExprStmt(er.notifyCall("default", jsast.Ident(d.Name.Name))),
		}
	case jsast.Expression:
		return []jsast.Statement{jsast.ExprStmt(er.notifyCall("default", d))}
	default:
		panic(errors.Errorf("Formatter: unsupported default export declaration %T in %s", d, er.module.Name()))
	}
}

// rewriteMutations wraps assignments and updates targeting exported bindings
// in notify calls, anywhere in the body.
func (er *exportRewriter) rewriteMutations(statements []jsast.Statement) {
	jsast.RewriteExpressions(statements, func(expression jsast.Expression) jsast.Expression {
		switch e := expression.(type) {
		case *jsast.AssignmentExpression:
			target, ok := e.Target.(*jsast.Identifier)
			if !ok {
				return expression
			}
			specifier := er.bindings[target.Name]
			if specifier == nil {
				return expression
			}
			// The assignment stays the call argument, so the expression still
			// yields the assigned value.
			return er.notifyCall(specifier.Name, e)
		case *jsast.UpdateExpression:
			target, ok := e.Argument.(*jsast.Identifier)
			if !ok {
				return expression
			}
			specifier := er.bindings[target.Name]
			if specifier == nil {
				return expression
			}
			if e.Prefix {
				// The prefix form already yields the updated value.
				return er.notifyCall(specifier.Name, e)
			}
			// Postfix must keep yielding the original value while notifying
			// with the updated one: publish a freshly computed x + 1 first
			// (no second mutation of the operand), then run the real postfix
			// operation as the sequence result.
			operator := "+"
			if e.Operator == "--" {
				operator = "-"
			}
			updated := &jsast.BinaryExpression{
				Operator: operator,
				Left:     jsast.Ident(target.Name),
				Right:    jsast.Num(1),
			}
			return jsast.Sequence(er.notifyCall(specifier.Name, updated), e)
		}
		return expression
	})
}
