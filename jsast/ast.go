package jsast

import (
	"bytes"
	"strconv"
	"strings"
)

// Node is the base interface for all syntax tree nodes.
type Node interface {
	String() string // Returns a string representation of the node (for debugging)
}

// Statement represents a statement node in the tree.
type Statement interface {
	Node
	statementNode()
}

// Expression represents an expression node in the tree.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node of a module's syntax tree.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// --- Statement nodes ---

type ExpressionStatement struct {
	Expression Expression
}

func (es *ExpressionStatement) statementNode() {}
func (es *ExpressionStatement) String() string { return es.Expression.String() + ";" }

// VariableDeclaration covers var/let/const statements with one or more declarators.
type VariableDeclaration struct {
	Kind        string // "var", "let" or "const"
	Declarators []*VariableDeclarator
}

type VariableDeclarator struct {
	Name *Identifier
	Init Expression // nil for a plain declaration without initializer
}

func (vd *VariableDeclaration) statementNode() {}
func (vd *VariableDeclaration) String() string {
	parts := make([]string, len(vd.Declarators))
	for i, d := range vd.Declarators {
		if d.Init != nil {
			parts[i] = d.Name.Name + " = " + d.Init.String()
		} else {
			parts[i] = d.Name.Name
		}
	}
	return vd.Kind + " " + strings.Join(parts, ", ") + ";"
}

type FunctionDeclaration struct {
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (fd *FunctionDeclaration) statementNode() {}
func (fd *FunctionDeclaration) String() string {
	if fd.Name == nil {
		return "function (...) {...}"
	}
	return "function " + fd.Name.Name + "(...) {...}"
}

type ClassDeclaration struct {
	Name       *Identifier
	SuperClass Expression // nil when the class has no extends clause
	Methods    []*MethodDefinition
}

type MethodDefinition struct {
	Name   string
	Static bool
	Value  *FunctionExpression
}

func (cd *ClassDeclaration) statementNode() {}
func (cd *ClassDeclaration) String() string {
	if cd.Name == nil {
		return "class {...}"
	}
	return "class " + cd.Name.Name + " {...}"
}

type BlockStatement struct {
	Statements []Statement
}

func (bs *BlockStatement) statementNode() {}
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

type ReturnStatement struct {
	Argument Expression // nil for a bare return
}

func (rs *ReturnStatement) statementNode() {}
func (rs *ReturnStatement) String() string {
	if rs.Argument == nil {
		return "return;"
	}
	return "return " + rs.Argument.String() + ";"
}

type IfStatement struct {
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil without an else branch
}

func (is *IfStatement) statementNode() {}
func (is *IfStatement) String() string { return "if (" + is.Test.String() + ") ..." }

type WhileStatement struct {
	Test Expression
	Body Statement
}

func (ws *WhileStatement) statementNode() {}
func (ws *WhileStatement) String() string { return "while (" + ws.Test.String() + ") ..." }

type ForStatement struct {
	Init   Statement // VariableDeclaration or ExpressionStatement, nil if omitted
	Test   Expression
	Update Expression
	Body   Statement
}

func (fs *ForStatement) statementNode() {}
func (fs *ForStatement) String() string { return "for (...) ..." }

// --- Module declaration nodes ---

// ImportDeclaration carries the static binding metadata of one import statement.
// It produces no runtime code; the formatter erases it from the body.
type ImportDeclaration struct {
	Specifiers []*ImportSpecifier
	Source     *StringLiteral // the dependency path exactly as authored
}

// ImportSpecifier binds one local name to a remote export key. A nil Imported
// marks a namespace-style binding capturing the entire export object.
type ImportSpecifier struct {
	Local    *Identifier
	Imported *Identifier
}

func (id *ImportDeclaration) statementNode() {}
func (id *ImportDeclaration) String() string { return "import ... from " + id.Source.String() + ";" }

// ExportNamedDeclaration covers `export <declaration>`, `export { a, b }` and
// the sourced re-export form `export { a } from './dep'`.
type ExportNamedDeclaration struct {
	Declaration Statement // nil for a bare specifier list
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral // nil unless this is a re-export
}

// ExportSpecifier publishes Local under the Exported name; a nil Exported
// reuses the local name.
type ExportSpecifier struct {
	Local    *Identifier
	Exported *Identifier
}

func (ed *ExportNamedDeclaration) statementNode() {}
func (ed *ExportNamedDeclaration) String() string { return "export ...;" }

// ExportDefaultDeclaration wraps either a function/class declaration (possibly
// anonymous) or an arbitrary expression.
type ExportDefaultDeclaration struct {
	Declaration Node
}

func (ed *ExportDefaultDeclaration) statementNode() {}
func (ed *ExportDefaultDeclaration) String() string { return "export default ...;" }

// --- Expression nodes ---

type Identifier struct {
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Name }

type StringLiteral struct {
	Value string
}

func (sl *StringLiteral) expressionNode() {}
func (sl *StringLiteral) String() string  { return strconv.Quote(sl.Value) }

type NumberLiteral struct {
	Value float64
}

func (nl *NumberLiteral) expressionNode() {}
func (nl *NumberLiteral) String() string {
	return strconv.FormatFloat(nl.Value, 'f', -1, 64)
}

type BooleanLiteral struct {
	Value bool
}

func (bl *BooleanLiteral) expressionNode() {}
func (bl *BooleanLiteral) String() string  { return strconv.FormatBool(bl.Value) }

type NullLiteral struct{}

func (nl *NullLiteral) expressionNode() {}
func (nl *NullLiteral) String() string  { return "null" }

type FunctionExpression struct {
	Name   *Identifier // nil for an anonymous function
	Params []*Identifier
	Body   *BlockStatement
}

func (fe *FunctionExpression) expressionNode() {}
func (fe *FunctionExpression) String() string  { return "function (...) {...}" }

type ClassExpression struct {
	Name       *Identifier
	SuperClass Expression
	Methods    []*MethodDefinition
}

func (ce *ClassExpression) expressionNode() {}
func (ce *ClassExpression) String() string  { return "class {...}" }

type MemberExpression struct {
	Object   Expression
	Property Expression
	Computed bool // true for obj[expr], false for obj.name
}

func (me *MemberExpression) expressionNode() {}
func (me *MemberExpression) String() string {
	if me.Computed {
		return me.Object.String() + "[" + me.Property.String() + "]"
	}
	return me.Object.String() + "." + me.Property.String()
}

type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode() {}
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

type AssignmentExpression struct {
	Operator string // "=", "+=", ...
	Target   Expression
	Value    Expression
}

func (ae *AssignmentExpression) expressionNode() {}
func (ae *AssignmentExpression) String() string {
	return ae.Target.String() + " " + ae.Operator + " " + ae.Value.String()
}

type UpdateExpression struct {
	Operator string // "++" or "--"
	Prefix   bool
	Argument Expression
}

func (ue *UpdateExpression) expressionNode() {}
func (ue *UpdateExpression) String() string {
	if ue.Prefix {
		return ue.Operator + ue.Argument.String()
	}
	return ue.Argument.String() + ue.Operator
}

type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpression) expressionNode() {}
func (be *BinaryExpression) String() string {
	return be.Left.String() + " " + be.Operator + " " + be.Right.String()
}

// SequenceExpression evaluates its members left to right and yields the value
// of the last one.
type SequenceExpression struct {
	Expressions []Expression
}

func (se *SequenceExpression) expressionNode() {}
func (se *SequenceExpression) String() string {
	parts := make([]string, len(se.Expressions))
	for i, e := range se.Expressions {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

type ConditionalExpression struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (ce *ConditionalExpression) expressionNode() {}
func (ce *ConditionalExpression) String() string {
	return ce.Test.String() + " ? " + ce.Consequent.String() + " : " + ce.Alternate.String()
}

type ArrayLiteral struct {
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode() {}
func (al *ArrayLiteral) String() string {
	parts := make([]string, len(al.Elements))
	for i, e := range al.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type ObjectLiteral struct {
	Properties []*Property
}

type Property struct {
	Key   Expression
	Value Expression
}

func (ol *ObjectLiteral) expressionNode() {}
func (ol *ObjectLiteral) String() string  { return "{...}" }
