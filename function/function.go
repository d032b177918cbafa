/*
File    : eye/function/function.go
Project : Eye Language Interpreter
*/
package function

import (
	"fmt"
	"strings"

	"github.com/eye-lang/eye/objects"
	"github.com/eye-lang/eye/parser"
)

// Function represents a user-defined procedure value in Eye.
// It captures the procedure's positional parameter names and its body
// block. Binding a procedure with `define f to be { ... } given (a, b)`
// stores a Function in the symbol scope; `run f given (...)` and
// `f(...)` look it up and execute the body.
//
// The body is shared syntax: the evaluator runs it against a fresh clone
// of the calling scope on every invocation, so calls never observe each
// other's bindings.
//
// Fields:
//   - Args: The parameter names, bound positionally at call time.
//   - Body: The statement block executed when the function is invoked.
type Function struct {
	Args []string     // Positional parameter names
	Body parser.Block // Statements to execute on invocation
}

// GetType returns the type identifier for this Function object.
// This implements the objects.EyeObject interface.
func (f *Function) GetType() objects.EyeType {
	return objects.FunctionType
}

// ToString returns the debug rendering of the function value:
// "(<args>):{<body>}". This is what `print` produces when handed a
// function.
//
// Example:
//
//	define f to be { return n } given (n)
//	renders as: (n):{return n;}
func (f *Function) ToString() string {
	body := ""
	for _, stmt := range f.Body {
		body += stmt.Literal()
		body += ";"
	}
	return fmt.Sprintf("(%s):{%s}", strings.Join(f.Args, ", "), body)
}

// ToObject returns a detailed representation including type information,
// e.g. "<func[(n)]>". Used for debugging and inspection.
func (f *Function) ToObject() string {
	return fmt.Sprintf("<func[(%s)]>", strings.Join(f.Args, ", "))
}
