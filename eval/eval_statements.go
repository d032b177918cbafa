/*
File    : eye/eval/eval_statements.go
Project : Eye Language Interpreter
*/
package eval

import (
	"fmt"

	"github.com/eye-lang/eye/function"
	"github.com/eye-lang/eye/objects"
	"github.com/eye-lang/eye/parser"
	"github.com/eye-lang/eye/scope"
)

// RunBodyAndReturn executes a block of statements in order with
// early-return semantics:
//   - a Return node evaluates its value and returns it immediately;
//   - an If or Do node that yields a value (an inner Return fired)
//     propagates that value;
//   - every other node executes for its side effects only.
//
// It returns nil when the block finishes without returning.
func (e *Evaluator) RunBodyAndReturn(body parser.Block, symbols *scope.Scope) (objects.EyeObject, error) {
	for _, node := range body {
		switch node.(type) {
		case *parser.ReturnStatementNode:
			return e.RunAST(node, symbols)
		case *parser.IfStatementNode, *parser.DoStatementNode:
			value, err := e.RunAST(node, symbols)
			if err != nil {
				return nil, err
			}
			if value != nil {
				return value, nil
			}
		default:
			if _, err := e.RunAST(node, symbols); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil
}

// RunAST executes a single node against the given scope. It returns the
// node's value when it has one (literals, symbols, binary expressions,
// calls that return) and nil otherwise; runtime errors propagate to the
// caller.
func (e *Evaluator) RunAST(node parser.StatementNode, symbols *scope.Scope) (objects.EyeObject, error) {
	switch n := node.(type) {
	case *parser.NumberLiteralExpressionNode:
		return &objects.Number{Value: n.Value}, nil

	case *parser.BooleanLiteralExpressionNode:
		return &objects.Boolean{Value: n.Value}, nil

	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}, nil

	case *parser.BinaryExpressionNode:
		return e.applyBinaryOperator(n, symbols)

	case *parser.ProcStatementNode:
		symbols.Bind(n.Identifier, &function.Function{
			Args: n.Args,
			Body: n.Body,
		})
		return nil, nil

	case *parser.CallExpressionNode:
		return e.runCall(n, symbols)

	case *parser.ReturnStatementNode:
		return e.RunAST(n.Value, symbols)

	case *parser.AssignStatementNode:
		value, err := e.RunAST(n.Value, symbols)
		if err != nil {
			return nil, err
		}
		if value != nil {
			symbols.Bind(n.Identifier, value)
		}
		return nil, nil

	case *parser.PrintStatementNode:
		value, err := e.RunAST(n.Value, symbols)
		if err != nil {
			return nil, err
		}
		if value != nil {
			e.print(value)
		} else {
			fmt.Fprintln(e.Writer, "''")
		}
		return nil, nil

	case *parser.SymbolExpressionNode:
		if value, ok := symbols.LookUp(n.Name); ok {
			return value, nil
		}
		return nil, &RuntimeError{Message: fmt.Sprintf("Tried to access undefined symbol: %s", n.Name)}

	case *parser.IfStatementNode:
		return e.runIf(n, symbols)

	case *parser.DoStatementNode:
		return e.runDo(n, symbols)

	case *parser.ThrowStatementNode:
		return nil, &RuntimeError{Message: n.Message}

	case *parser.SemicolonStatementNode:
		return nil, nil

	case *parser.EOFNode:
		return nil, nil

	case *parser.RootNode:
		return nil, &RuntimeError{Message: "Found program in AST."}

	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("Value of AST could not be determined %s", node.Literal())}
	}
}

// runCall executes a function call: it requires the identifier to be
// bound to a function, checks the argument count, evaluates each
// argument in a clone of the caller's scope, binds the results to the
// formal names in the call scope (itself a clone), and runs the body.
// The caller's scope is never modified by the callee.
func (e *Evaluator) runCall(node *parser.CallExpressionNode, symbols *scope.Scope) (objects.EyeObject, error) {
	obj, ok := symbols.LookUp(node.Identifier)
	if !ok {
		return nil, &RuntimeError{Message: fmt.Sprintf("Symbol %s does not exist.", node.Identifier)}
	}

	fn, ok := obj.(*function.Function)
	if !ok {
		return nil, nil
	}

	if len(node.Args) != len(fn.Args) {
		return nil, &RuntimeError{Message: fmt.Sprintf(
			"Function %s expected %d arguments, got %d", node.Identifier, len(fn.Args), len(node.Args))}
	}

	// this sets up the function's "scope"
	callScope := symbols.Clone()

	for i, arg := range node.Args {
		value, err := e.RunAST(arg, symbols.Clone())
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, &RuntimeError{Message: fmt.Sprintf("Could not evaluate argument %s", arg.Literal())}
		}
		callScope.Bind(fn.Args[i], value)
	}

	return e.RunBodyAndReturn(fn.Body, callScope)
}

// runIf evaluates an if/elif/else conditional.
//
// The leading conditional is evaluated in a clone; when it is not a
// boolean the whole statement yields nothing and no other arm is
// considered. When it is false, the elif conditionals are tried in order
// and the first true one runs its body; when none match, the else block
// (if present) runs. Every conditional and every body executes in its
// own clone of the enclosing scope.
func (e *Evaluator) runIf(node *parser.IfStatementNode, symbols *scope.Scope) (objects.EyeObject, error) {
	conditional, err := e.RunAST(node.This.Conditional, symbols.Clone())
	if err != nil {
		return nil, err
	}

	if value, ok := conditional.(*objects.Boolean); ok {
		if value.Value {
			return e.RunBodyAndReturn(node.This.Body, symbols.Clone())
		}

		// go through each elif
		for _, elif := range node.Elifs {
			elifConditional, err := e.RunAST(elif.Conditional, symbols.Clone())
			if err != nil {
				return nil, err
			}
			if elifValue, ok := elifConditional.(*objects.Boolean); ok && elifValue.Value {
				return e.RunBodyAndReturn(elif.Body, symbols.Clone())
			}
		}

		// nothing matched; fall through to the else block when present
		if node.Else != nil {
			return e.RunBodyAndReturn(node.Else, symbols.Clone())
		}
	}

	return nil, nil
}

// runDo evaluates a counted loop.
//
// The count expression is evaluated once in a clone; an error from that
// evaluation propagates, and a count whose value is not a number runs the
// body zero times. The loop body runs
// in a single cloned scope shared across iterations, with the optional
// loop variable rebound to the iteration index each time. A value
// produced by the body (an inner Return) short-circuits the loop; the
// loop scope is never merged back into the caller.
func (e *Evaluator) runDo(node *parser.DoStatementNode, symbols *scope.Scope) (objects.EyeObject, error) {
	count, err := e.ValueFromAST(node.Count, symbols.Clone())
	if err != nil {
		return nil, err
	}

	number, ok := count.(*objects.Number)
	if !ok {
		return nil, nil
	}

	loopScope := symbols.Clone()
	for i := int32(0); i < number.Value; i++ {
		if node.Identifier != "" {
			loopScope.Bind(node.Identifier, &objects.Number{Value: i})
		}
		value, err := e.RunBodyAndReturn(node.Body, loopScope)
		if err != nil {
			return nil, err
		}
		if value != nil {
			return value, nil
		}
	}

	return nil, nil
}
