package jsast

// Shorthand constructors for the node shapes the formatter synthesizes.

func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func Str(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

func Num(value float64) *NumberLiteral {
	return &NumberLiteral{Value: value}
}

func ExprStmt(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expression}
}

func Block(statements ...Statement) *BlockStatement {
	return &BlockStatement{Statements: statements}
}

func Return(argument Expression) *ReturnStatement {
	return &ReturnStatement{Argument: argument}
}

func Call(callee Expression, arguments ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: arguments}
}

// Member builds the non-computed access object.property.
func Member(object Expression, property string) *MemberExpression {
	return &MemberExpression{Object: object, Property: Ident(property)}
}

// Index builds the computed access object[property].
func Index(object Expression, property Expression) *MemberExpression {
	return &MemberExpression{Object: object, Property: property, Computed: true}
}

func Assign(target Expression, value Expression) *AssignmentExpression {
	return &AssignmentExpression{Operator: "=", Target: target, Value: value}
}

func Sequence(expressions ...Expression) *SequenceExpression {
	return &SequenceExpression{Expressions: expressions}
}

func Array(elements ...Expression) *ArrayLiteral {
	return &ArrayLiteral{Elements: elements}
}

func Func(name string, params []*Identifier, body *BlockStatement) *FunctionExpression {
	var ident *Identifier
	if name != "" {
		ident = Ident(name)
	}
	return &FunctionExpression{Name: ident, Params: params, Body: body}
}

func Declarator(name string, init Expression) *VariableDeclarator {
	return &VariableDeclarator{Name: Ident(name), Init: init}
}

func Var(declarators ...*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Kind: "var", Declarators: declarators}
}
