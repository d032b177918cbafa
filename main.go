/*
File    : eye/main.go
Project : Eye Language Interpreter

Package main is the entry point for the Eye interpreter.
It executes Eye source files from the command line through the
lexer-parser-evaluator pipeline:

	eye <path-to-file>        Execute an Eye source file (.eye)
	eye --ast <path-to-file>  Execute a file, printing the parsed AST first
	eye --help                Display help information
	eye --version             Display version information
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/eye-lang/eye/eval"
	"github.com/eye-lang/eye/file"
	"github.com/eye-lang/eye/lexer"
	"github.com/eye-lang/eye/parser"
	"github.com/eye-lang/eye/scope"
)

// VERSION represents the current version of the Eye interpreter
var VERSION = "v1.0.0"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// Color definitions for CLI output
// These colors provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - yellowColor: Usage lines
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Eye interpreter.
// When no argument is supplied it prints a usage hint and exits normally;
// otherwise it dispatches on flags or treats the first argument as a
// source file path relative to the current working directory.
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// Handle --ast flag: dump the parsed tree before executing
		if arg == "--ast" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing source file. Usage: eye --ast <path-to-file>\n")
				os.Exit(1)
			}
			runFile(os.Args[2], true)
			return
		}

		runFile(arg, false)
	} else {
		fmt.Println("First argument must be a source file.")
	}
}

// showHelp displays the help information for the Eye interpreter
func showHelp() {
	cyanColor.Println("Eye - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  eye <path-to-file>        Execute an Eye file (.eye)")
	yellowColor.Println("  eye --ast <path-to-file>  Execute a file and print its AST")
	yellowColor.Println("  eye --help                Display this help message")
	yellowColor.Println("  eye --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  eye samples/fib           # .eye extension is appended")
	yellowColor.Println("  eye samples/fib.eye")
}

// showVersion displays the version information for the Eye interpreter
func showVersion() {
	cyanColor.Println("Eye - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
}

// runFile reads and executes an Eye source file.
// It handles the complete execution pipeline:
//  1. Read the file from disk (resolving against the working directory)
//  2. Tokenize the source text
//  3. Parse the tokens into an AST
//  4. Evaluate the AST against a fresh symbol scope
//
// Error Handling:
//   - File read errors: red [FILE ERROR] on stderr, exit code 1
//   - Lexing errors: red [LEXER ERROR] on stderr, exit code 1; nothing executes
//   - Parse errors: red [PARSE ERROR] lines on stderr, exit code 1; nothing executes
//   - Runtime errors: reported by the evaluator itself as `Runtime Error! ...`
func runFile(fileName string, showAST bool) {
	workDir, err := os.Getwd()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not determine working directory: %v\n", err)
		os.Exit(1)
	}

	source, err := file.ReadSourceFile(fileName, workDir)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LEXER ERROR] %v\n", err)
		os.Exit(1)
	}

	root, par := parser.BuildProgram(tokens)
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", parseErr)
		}
		os.Exit(1)
	}

	if showAST {
		printAST(root)
	}

	evaluator := eval.NewEvaluator()
	evaluator.Interpret(root, scope.NewScope())
}

// printAST displays the AST structure for debugging.
// It recursively prints the tree with indentation to show hierarchy.
func printAST(root *parser.RootNode) {
	visitor := &PrintingVisitor{}
	visitor.VisitRootNode(*root)
	fmt.Println(visitor)
}
