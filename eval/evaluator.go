/*
File    : eye/eval/evaluator.go
Project : Eye Language Interpreter
*/

// Package eval implements the tree-walking evaluator for Eye programs.
// It executes a parsed program AST against a symbol scope, producing side
// effects through a pluggable print function and reporting either the
// elapsed wall-clock time or a runtime error on completion.
package eval

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eye-lang/eye/objects"
	"github.com/eye-lang/eye/parser"
	"github.com/eye-lang/eye/scope"
)

// RuntimeError surfaces during evaluation and propagates by early return
// up through RunAST and RunBodyAndReturn. It is caught only at the
// top-level Interpret entry, which reports it on the output writer.
type RuntimeError struct {
	Message string // The error message
}

// Error returns the runtime error message.
func (e *RuntimeError) Error() string {
	return e.Message
}

// PrintFn is the type of the pluggable print function invoked by the
// `print` statement. It must be synchronous and report no errors.
type PrintFn func(obj objects.EyeObject)

// Options configures the evaluator: the print function used by `print`
// statements and a debug flag. Tests install their own print function to
// capture program output.
type Options struct {
	PrintFn PrintFn // Print hook; nil selects the default writer-based printer
	Debug   bool    // Debug flag; the evaluator itself does not read it
}

// DefaultOptions returns the options used for normal file execution.
func DefaultOptions() Options {
	return Options{}
}

// DebugOptions returns options with the debug flag set.
func DebugOptions() Options {
	return Options{Debug: true}
}

// Evaluator holds the state for executing Eye AST nodes: the configured
// options and the output writer used for `print` results and the final
// status line.
//
// The symbol scope is not part of the evaluator; it is threaded through
// the Run methods explicitly because nested scopes are clones of their
// parents, not a mutable field.
type Evaluator struct {
	Options Options   // Print hook and debug configuration
	Writer  io.Writer // Output destination (default: os.Stdout)
}

// NewEvaluator creates an evaluator with default options writing to
// standard output.
//
// Example usage:
//
//	ev := eval.NewEvaluator()
//	ev.Interpret(rootNode, scope.NewScope())
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Options: DefaultOptions(),
		Writer:  os.Stdout,
	}
}

// SetWriter redirects all evaluator output - printed values and the final
// status line - to the given writer. This is how tests capture program
// output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetPrintFn installs a custom print function for `print` statements.
// Passing nil restores the default printer, which writes the value's
// string form and a newline to the Writer.
func (e *Evaluator) SetPrintFn(fn PrintFn) {
	e.Options.PrintFn = fn
}

// print routes an evaluated value through the configured print hook.
func (e *Evaluator) print(obj objects.EyeObject) {
	if e.Options.PrintFn != nil {
		e.Options.PrintFn(obj)
		return
	}
	fmt.Fprintln(e.Writer, obj.ToString())
}

// Interpret runs a program AST against the given symbol scope.
//
// It records a wall-clock start time, executes the program block, and
// prints exactly one terminal line on the writer:
//
//	Done in <N>ms                   on success
//	Runtime Error! <message>        when evaluation failed
//
// No recovery occurs: the first runtime error aborts the program.
func (e *Evaluator) Interpret(root *parser.RootNode, symbols *scope.Scope) {
	start := time.Now()
	_, err := e.RunBodyAndReturn(root.Statements, symbols)
	if err != nil {
		fmt.Fprintf(e.Writer, "Runtime Error! %s\n", err.Error())
		return
	}
	fmt.Fprintf(e.Writer, "Done in %dms\n", time.Since(start).Milliseconds())
}
