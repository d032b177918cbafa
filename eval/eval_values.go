/*
File    : eye/eval/eval_values.go
Project : Eye Language Interpreter
*/
package eval

import (
	"fmt"

	"github.com/eye-lang/eye/objects"
	"github.com/eye-lang/eye/parser"
	"github.com/eye-lang/eye/scope"
)

// ValueFromAST extracts a primitive value from a node that is expected to
// *be* a value: a literal, a symbol lookup, a binary expression, or a
// call whose result is required. It fails with a runtime error describing
// the offending node when the node has no value.
func (e *Evaluator) ValueFromAST(node parser.StatementNode, symbols *scope.Scope) (objects.EyeObject, error) {
	switch n := node.(type) {
	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: n.Value}, nil
	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: n.Value}, nil
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}, nil
	case *parser.BinaryExpressionNode:
		return e.applyBinaryOperator(n, symbols)
	case *parser.CallExpressionNode:
		value, err := e.RunAST(n, symbols)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, &RuntimeError{Message: fmt.Sprintf("Function %s didn't return value", n.Identifier)}
		}
		return value, nil
	case *parser.SymbolExpressionNode:
		if value, ok := symbols.LookUp(n.Name); ok {
			return value, nil
		}
		return nil, &RuntimeError{Message: fmt.Sprintf("Could not get value from Symbol: %s", n.Name)}
	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("Value of AST could not be determined %s", node.Literal())}
	}
}

// applyBinaryOperator evaluates both operands - left fully before right -
// and applies the operator from the value model. An operator undefined
// for the operand types converts into a runtime error.
func (e *Evaluator) applyBinaryOperator(node *parser.BinaryExpressionNode, symbols *scope.Scope) (objects.EyeObject, error) {
	left, err := e.ValueFromAST(node.Left, symbols)
	if err != nil {
		return nil, err
	}
	right, err := e.ValueFromAST(node.Right, symbols)
	if err != nil {
		return nil, err
	}

	result, err := objects.ApplyBinaryOperator(node.Operator, left, right)
	if err != nil {
		return nil, &RuntimeError{Message: err.Error()}
	}
	return result, nil
}
