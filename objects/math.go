/*
File    : eye/objects/math.go
Project : Eye Language Interpreter
*/
package objects

import (
	"fmt"
	"math"

	"github.com/eye-lang/eye/lexer"
)

// NotImplemented reports that a binary operator is undefined for the
// combination of operand types it was applied to. It carries the rendered
// forms of both operands.
type NotImplemented struct {
	A string // Rendered form of the left operand
	B string // Rendered form of the right operand
}

// Error returns the runtime-error message for an undefined operator
// application.
func (e *NotImplemented) Error() string {
	return fmt.Sprintf("Operator not implemented for %s and %s.", e.A, e.B)
}

// notImplemented builds the error value for an operand pair.
func notImplemented(a, b EyeObject) *NotImplemented {
	return &NotImplemented{A: a.ToString(), B: b.ToString()}
}

// ApplyBinaryOperator applies a binary operator to two evaluated operands.
// Every operator either returns a defined result or an error - never a
// panic, for any pair of operand types.
//
// Defined combinations:
//   - Add:      Num+Num -> Num, Str+Str -> Str (left then right)
//   - Subtract: Num-Num -> Num
//   - Multiply: Num*Num -> Num
//   - Divide:   Num/Num -> Num (truncating toward zero; zero divisor errors)
//   - IsEq:     Num==Num, Bool==Bool, Str==Str -> Bool
//   - IsNEq:    negation of IsEq over the same combinations
//
// Comparing values of different kinds is an error, not false. Assignment
// is not a value operator (the parser never folds it into a Binary node)
// and fails like any other undefined combination.
func ApplyBinaryOperator(op lexer.BinaryOperator, left, right EyeObject) (EyeObject, error) {
	switch op {
	case lexer.ADD_OP:
		return Add(left, right)
	case lexer.SUB_OP:
		return Subtract(left, right)
	case lexer.MUL_OP:
		return Multiply(left, right)
	case lexer.DIV_OP:
		return Divide(left, right)
	case lexer.ISEQ_OP:
		return IsEqual(left, right)
	case lexer.ISNEQ_OP:
		return IsNotEqual(left, right)
	default:
		return nil, notImplemented(left, right)
	}
}

// Add adds two numbers (wrapping 32-bit arithmetic) or concatenates two
// strings (left then right). All other combinations fail.
func Add(left, right EyeObject) (EyeObject, error) {
	switch a := left.(type) {
	case *Number:
		if b, ok := right.(*Number); ok {
			return &Number{Value: a.Value + b.Value}, nil
		}
	case *String:
		if b, ok := right.(*String); ok {
			return &String{Value: a.Value + b.Value}, nil
		}
	}
	return nil, notImplemented(left, right)
}

// Subtract subtracts two numbers. All other combinations fail.
func Subtract(left, right EyeObject) (EyeObject, error) {
	if a, ok := left.(*Number); ok {
		if b, ok := right.(*Number); ok {
			return &Number{Value: a.Value - b.Value}, nil
		}
	}
	return nil, notImplemented(left, right)
}

// Multiply multiplies two numbers. All other combinations fail.
func Multiply(left, right EyeObject) (EyeObject, error) {
	if a, ok := left.(*Number); ok {
		if b, ok := right.(*Number); ok {
			return &Number{Value: a.Value * b.Value}, nil
		}
	}
	return nil, notImplemented(left, right)
}

// Divide divides two numbers, truncating toward zero.
// A zero divisor is an error; MinInt32 / -1 wraps instead of trapping so
// that the operator stays total. All non-number combinations fail.
func Divide(left, right EyeObject) (EyeObject, error) {
	if a, ok := left.(*Number); ok {
		if b, ok := right.(*Number); ok {
			if b.Value == 0 {
				return nil, fmt.Errorf("Division by zero.")
			}
			if a.Value == math.MinInt32 && b.Value == -1 {
				return &Number{Value: math.MinInt32}, nil
			}
			return &Number{Value: a.Value / b.Value}, nil
		}
	}
	return nil, notImplemented(left, right)
}

// IsEqual compares two values of the same kind for equality.
// Both numbers, both booleans, or both strings yield a Boolean; mixed
// kinds fail - comparing across types is an error, not false.
func IsEqual(left, right EyeObject) (EyeObject, error) {
	switch a := left.(type) {
	case *Number:
		if b, ok := right.(*Number); ok {
			return &Boolean{Value: a.Value == b.Value}, nil
		}
	case *Boolean:
		if b, ok := right.(*Boolean); ok {
			return &Boolean{Value: a.Value == b.Value}, nil
		}
	case *String:
		if b, ok := right.(*String); ok {
			return &Boolean{Value: a.Value == b.Value}, nil
		}
	}
	return nil, notImplemented(left, right)
}

// IsNotEqual is the negation of IsEqual. Mixed kinds fail the same way.
func IsNotEqual(left, right EyeObject) (EyeObject, error) {
	result, err := IsEqual(left, right)
	if err != nil {
		return nil, err
	}
	return Not(result), nil
}

// Not negates a boolean. Any other kind yields Boolean(false) - a
// tolerant negation used by test helpers.
func Not(obj EyeObject) EyeObject {
	if b, ok := obj.(*Boolean); ok {
		return &Boolean{Value: !b.Value}
	}
	return &Boolean{Value: false}
}
