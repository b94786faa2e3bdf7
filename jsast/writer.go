package jsast

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer renders a syntax tree back into JavaScript source.
type Writer struct {
	indentLevel int
	buffer      bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

// Print renders program with a throwaway Writer.
func Print(program *Program) string {
	return NewWriter().Write(program)
}

// Write renders a whole program.
func (w *Writer) Write(program *Program) string {
	w.buffer.Reset()
	w.indentLevel = 0

	for _, stmt := range program.Statements {
		w.writeStatement(stmt)
	}

	return w.buffer.String()
}

func (w *Writer) indent() {
	w.indentLevel++
}

func (w *Writer) dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indentLevel; i++ {
		w.buffer.WriteString("  ")
	}
}

func (w *Writer) write(format string, args ...interface{}) {
	fmt.Fprintf(&w.buffer, format, args...)
}

func (w *Writer) writeStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		w.writeIndent()
		// A leading function keyword or brace would be parsed as a
		// declaration or block, so those expressions get parenthesized.
		switch s.Expression.(type) {
		case *FunctionExpression, *ObjectLiteral:
			w.write("(")
			w.writeExpression(s.Expression)
			w.write(")")
		default:
			w.writeExpression(s.Expression)
		}
		w.write(";\n")
	case *VariableDeclaration:
		w.writeIndent()
		w.writeVariableDeclaration(s)
		w.write(";\n")
	case *FunctionDeclaration:
		w.writeIndent()
		w.write("function %s", s.Name.Name)
		w.writeFunctionRest(s.Params, s.Body)
		w.write("\n")
	case *ClassDeclaration:
		w.writeIndent()
		w.write("class %s ", s.Name.Name)
		if s.SuperClass != nil {
			w.write("extends ")
			w.writeExpression(s.SuperClass)
			w.write(" ")
		}
		w.writeClassBody(s.Methods)
		w.write("\n")
	case *BlockStatement:
		w.writeIndent()
		w.writeBlock(s)
		w.write("\n")
	case *ReturnStatement:
		w.writeIndent()
		w.write("return")
		if s.Argument != nil {
			w.write(" ")
			w.writeExpression(s.Argument)
		}
		w.write(";\n")
	case *IfStatement:
		w.writeIndent()
		w.write("if (")
		w.writeExpression(s.Test)
		w.write(") ")
		w.writeNestedStatement(s.Consequent)
		if s.Alternate != nil {
			w.writeIndent()
			w.write("else ")
			w.writeNestedStatement(s.Alternate)
		}
	case *WhileStatement:
		w.writeIndent()
		w.write("while (")
		w.writeExpression(s.Test)
		w.write(") ")
		w.writeNestedStatement(s.Body)
	case *ForStatement:
		w.writeIndent()
		w.write("for (")
		switch init := s.Init.(type) {
		case *VariableDeclaration:
			w.writeVariableDeclaration(init)
		case *ExpressionStatement:
			w.writeExpression(init.Expression)
		}
		w.write("; ")
		if s.Test != nil {
			w.writeExpression(s.Test)
		}
		w.write("; ")
		if s.Update != nil {
			w.writeExpression(s.Update)
		}
		w.write(") ")
		w.writeNestedStatement(s.Body)
	case *ImportDeclaration, *ExportNamedDeclaration, *ExportDefaultDeclaration:
		// Module declarations never survive formatting; rendering them is a
		// debugging aid only.
		w.writeIndent()
		w.write("/* %s */\n", stmt.String())
	default:
		panic(fmt.Sprintf("jsast: unsupported statement type %T", s))
	}
}

func (w *Writer) writeNestedStatement(stmt Statement) {
	if block, ok := stmt.(*BlockStatement); ok {
		w.writeBlock(block)
		w.write("\n")
		return
	}
	w.write("\n")
	w.indent()
	w.writeStatement(stmt)
	w.dedent()
}

func (w *Writer) writeVariableDeclaration(decl *VariableDeclaration) {
	w.write("%s ", decl.Kind)
	for i, d := range decl.Declarators {
		if i > 0 {
			w.write(", ")
		}
		w.write("%s", d.Name.Name)
		if d.Init != nil {
			w.write(" = ")
			w.writeExpression(d.Init)
		}
	}
}

func (w *Writer) writeBlock(block *BlockStatement) {
	w.write("{\n")
	w.indent()
	for _, s := range block.Statements {
		w.writeStatement(s)
	}
	w.dedent()
	w.writeIndent()
	w.write("}")
}

func (w *Writer) writeFunctionRest(params []*Identifier, body *BlockStatement) {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	w.write("(%s) ", strings.Join(names, ", "))
	w.writeBlock(body)
}

func (w *Writer) writeClassBody(methods []*MethodDefinition) {
	w.write("{\n")
	w.indent()
	for _, m := range methods {
		w.writeIndent()
		if m.Static {
			w.write("static ")
		}
		w.write("%s", m.Name)
		w.writeFunctionRest(m.Value.Params, m.Value.Body)
		w.write("\n")
	}
	w.dedent()
	w.writeIndent()
	w.write("}")
}

func (w *Writer) writeExpression(expr Expression) {
	switch e := expr.(type) {
	case *Identifier:
		w.write("%s", e.Name)
	case *StringLiteral:
		w.write("%s", e.String())
	case *NumberLiteral:
		w.write("%s", e.String())
	case *BooleanLiteral:
		w.write("%s", e.String())
	case *NullLiteral:
		w.write("null")
	case *FunctionExpression:
		w.write("function")
		if e.Name != nil {
			w.write(" %s", e.Name.Name)
		}
		w.writeFunctionRest(e.Params, e.Body)
	case *ClassExpression:
		w.write("class ")
		if e.Name != nil {
			w.write("%s ", e.Name.Name)
		}
		if e.SuperClass != nil {
			w.write("extends ")
			w.writeExpression(e.SuperClass)
			w.write(" ")
		}
		w.writeClassBody(e.Methods)
	case *MemberExpression:
		w.writeExpression(e.Object)
		if e.Computed {
			w.write("[")
			w.writeExpression(e.Property)
			w.write("]")
		} else {
			w.write(".")
			w.writeExpression(e.Property)
		}
	case *CallExpression:
		w.writeExpression(e.Callee)
		w.write("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				w.write(", ")
			}
			w.writeExpression(arg)
		}
		w.write(")")
	case *AssignmentExpression:
		w.writeExpression(e.Target)
		w.write(" %s ", e.Operator)
		w.writeExpression(e.Value)
	case *UpdateExpression:
		if e.Prefix {
			w.write("%s", e.Operator)
			w.writeExpression(e.Argument)
		} else {
			w.writeExpression(e.Argument)
			w.write("%s", e.Operator)
		}
	case *BinaryExpression:
		w.write("(")
		w.writeExpression(e.Left)
		w.write(" %s ", e.Operator)
		w.writeExpression(e.Right)
		w.write(")")
	case *SequenceExpression:
		w.write("(")
		for i, sub := range e.Expressions {
			if i > 0 {
				w.write(", ")
			}
			w.writeExpression(sub)
		}
		w.write(")")
	case *ConditionalExpression:
		w.write("(")
		w.writeExpression(e.Test)
		w.write(" ? ")
		w.writeExpression(e.Consequent)
		w.write(" : ")
		w.writeExpression(e.Alternate)
		w.write(")")
	case *ArrayLiteral:
		w.write("[")
		for i, elem := range e.Elements {
			if i > 0 {
				w.write(", ")
			}
			w.writeExpression(elem)
		}
		w.write("]")
	case *ObjectLiteral:
		w.writeObjectLiteral(e)
	default:
		panic(fmt.Sprintf("jsast: unsupported expression type %T", e))
	}
}

func (w *Writer) writeObjectLiteral(obj *ObjectLiteral) {
	if len(obj.Properties) == 0 {
		w.write("{}")
		return
	}
	w.write("{\n")
	w.indent()
	for i, prop := range obj.Properties {
		w.writeIndent()
		if key, ok := prop.Key.(*Identifier); ok {
			w.write("%s", key.Name)
		} else {
			w.writeExpression(prop.Key)
		}
		w.write(": ")
		w.writeExpression(prop.Value)
		if i < len(obj.Properties)-1 {
			w.write(",")
		}
		w.write("\n")
	}
	w.dedent()
	w.writeIndent()
	w.write("}")
}
