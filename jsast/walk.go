package jsast

// RewriteFunc inspects an expression and either returns it unchanged or
// returns a replacement. The replacement itself is never re-inspected, so a
// rewrite that re-embeds its input cannot loop; the original node's children
// are still visited, keeping rewrite sites nested inside a replaced node
// reachable.
type RewriteFunc func(Expression) Expression

// RewriteExpressions applies fn to every expression reachable from the given
// statements, including expressions nested inside function bodies. Statements
// are updated in place.
func RewriteExpressions(statements []Statement, fn RewriteFunc) {
	for _, stmt := range statements {
		rewriteStatement(stmt, fn)
	}
}

func rewriteStatement(stmt Statement, fn RewriteFunc) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		s.Expression = rewriteExpression(s.Expression, fn)
	case *VariableDeclaration:
		for _, d := range s.Declarators {
			if d.Init != nil {
				d.Init = rewriteExpression(d.Init, fn)
			}
		}
	case *FunctionDeclaration:
		RewriteExpressions(s.Body.Statements, fn)
	case *ClassDeclaration:
		for _, m := range s.Methods {
			RewriteExpressions(m.Value.Body.Statements, fn)
		}
	case *BlockStatement:
		RewriteExpressions(s.Statements, fn)
	case *ReturnStatement:
		if s.Argument != nil {
			s.Argument = rewriteExpression(s.Argument, fn)
		}
	case *IfStatement:
		s.Test = rewriteExpression(s.Test, fn)
		rewriteStatement(s.Consequent, fn)
		if s.Alternate != nil {
			rewriteStatement(s.Alternate, fn)
		}
	case *WhileStatement:
		s.Test = rewriteExpression(s.Test, fn)
		rewriteStatement(s.Body, fn)
	case *ForStatement:
		if s.Init != nil {
			rewriteStatement(s.Init, fn)
		}
		if s.Test != nil {
			s.Test = rewriteExpression(s.Test, fn)
		}
		if s.Update != nil {
			s.Update = rewriteExpression(s.Update, fn)
		}
		rewriteStatement(s.Body, fn)
	case *ExportNamedDeclaration:
		if s.Declaration != nil {
			rewriteStatement(s.Declaration, fn)
		}
	case *ExportDefaultDeclaration:
		if expr, ok := s.Declaration.(Expression); ok {
			s.Declaration = rewriteExpression(expr, fn)
		}
	}
}

func rewriteExpression(expr Expression, fn RewriteFunc) Expression {
	replaced := fn(expr)

	switch e := expr.(type) {
	case *FunctionExpression:
		RewriteExpressions(e.Body.Statements, fn)
	case *ClassExpression:
		for _, m := range e.Methods {
			RewriteExpressions(m.Value.Body.Statements, fn)
		}
	case *MemberExpression:
		e.Object = rewriteExpression(e.Object, fn)
		if e.Computed {
			e.Property = rewriteExpression(e.Property, fn)
		}
	case *CallExpression:
		e.Callee = rewriteExpression(e.Callee, fn)
		for i, arg := range e.Arguments {
			e.Arguments[i] = rewriteExpression(arg, fn)
		}
	case *AssignmentExpression:
		e.Target = rewriteTarget(e.Target, fn)
		e.Value = rewriteExpression(e.Value, fn)
	case *UpdateExpression:
		e.Argument = rewriteTarget(e.Argument, fn)
	case *BinaryExpression:
		e.Left = rewriteExpression(e.Left, fn)
		e.Right = rewriteExpression(e.Right, fn)
	case *SequenceExpression:
		for i, sub := range e.Expressions {
			e.Expressions[i] = rewriteExpression(sub, fn)
		}
	case *ConditionalExpression:
		e.Test = rewriteExpression(e.Test, fn)
		e.Consequent = rewriteExpression(e.Consequent, fn)
		e.Alternate = rewriteExpression(e.Alternate, fn)
	case *ArrayLiteral:
		for i, elem := range e.Elements {
			e.Elements[i] = rewriteExpression(elem, fn)
		}
	case *ObjectLiteral:
		for _, prop := range e.Properties {
			prop.Value = rewriteExpression(prop.Value, fn)
		}
	}
	return replaced
}

// rewriteTarget visits the value positions inside an assignment or update
// target. The target itself is a reference, not a value, so an identifier
// leaf stays untouched; a member target carries rewritable sub-expressions.
func rewriteTarget(expr Expression, fn RewriteFunc) Expression {
	if member, ok := expr.(*MemberExpression); ok {
		member.Object = rewriteExpression(member.Object, fn)
		if member.Computed {
			member.Property = rewriteExpression(member.Property, fn)
		}
	}
	return expr
}
