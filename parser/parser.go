/*
File    : eye/parser/parser.go
Project : Eye Language Interpreter
*/

/*
Package parser implements a precedence-climbing (Pratt) parser for the Eye
programming language.

The parser converts the token stream produced by the lexer into an
Abstract Syntax Tree (AST). It handles:
- Expressions (binary operations, literals, symbols, calls)
- Statements (define/to be bindings, print, throw, return)
- Control flow (if / else if / else, counted do loops)
- Operator precedence and left associativity

Errors are collected instead of panicking: a token stream that cannot be
parsed yields a parser with a non-empty error list, and such a program is
never executed.
*/
package parser

import (
	"fmt"

	"github.com/eye-lang/eye/lexer"
)

// Parser represents the parser state: the token sequence, a cursor into
// it, and the collected errors.
//
// The cursor obeys two laws the rest of the parser relies on:
//   - hasNext() is true while at least one token follows the cursor, so
//     the final token of the stream (conventionally `;`) acts as a
//     sentinel and is never parsed as its own atom;
//   - current() is total - past the end it reports an EOF token rather
//     than panicking.
type Parser struct {
	Tokens []lexer.Token // The token sequence being parsed
	pos    int           // Cursor into Tokens

	// Collect parsing errors instead of panicking
	// This allows reporting multiple problems and guarantees the caller
	// can refuse to execute a broken program
	Errors []string
}

// New creates a Parser over a token sequence produced by lexer.Tokenize.
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
}

// Parse is the main parsing function that converts the token sequence
// into a program AST. It repeatedly parses atoms until the sentinel
// position is reached, skipping one optional semicolon between atoms.
//
// Returns:
//
//	A pointer to a RootNode containing all parsed top-level statements.
//	When HasErrors() reports true afterwards the tree is partial and must
//	not be executed.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{}
	root.Statements = make(Block, 0)

	for par.hasNext() && !par.HasErrors() {
		root.Statements = append(root.Statements, par.parseAtom())
		par.skip(lexer.SEMICOLON_DELIM)
	}

	return root
}

// BuildProgram parses a token sequence into a program AST, returning the
// root node together with the parser so the caller can inspect errors.
// It is the convenience entry point matching the shape `tokens -> program`.
func BuildProgram(tokens []lexer.Token) (*RootNode, *Parser) {
	par := New(tokens)
	return par.Parse(), par
}

// addError adds an error message to the parser's error list.
func (par *Parser) addError(format string, a ...interface{}) {
	par.Errors = append(par.Errors, fmt.Sprintf("PARSER ERROR: "+format, a...))
}

// HasErrors returns true if there are parsing errors.
// This should be checked after parsing to determine if the parse was
// successful; a program with errors is never executed.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// next moves the cursor forward by one token.
func (par *Parser) next() {
	par.pos++
}

// hasNext reports whether at least one token follows the cursor.
// The final token of the stream is deliberately unreachable as an atom;
// it serves as the end-of-program sentinel.
func (par *Parser) hasNext() bool {
	return par.pos+1 < len(par.Tokens)
}

// current returns the token under the cursor, or an EOF token when the
// cursor has moved past the end of the stream.
func (par *Parser) current() lexer.Token {
	if par.pos >= len(par.Tokens) {
		return lexer.NewToken(lexer.EOF_TYPE, "EOF")
	}
	return par.Tokens[par.pos]
}

// isTok reports whether the current token has the given type and is not
// the sentinel (last) token of the stream.
func (par *Parser) isTok(tokenType lexer.TokenType) bool {
	if par.hasNext() {
		return par.current().Type == tokenType
	}
	return false
}

// skip advances past the current token when it has the given type.
func (par *Parser) skip(tokenType lexer.TokenType) {
	if par.isTok(tokenType) {
		par.next()
	}
}

// isOp reports whether the current token is a binary operator.
func (par *Parser) isOp() bool {
	return par.current().Type == lexer.OPERATOR
}

// maybeBinary greedily extends a parsed left operand with binary operator
// tails of higher precedence than the caller's bound.
//
// If the current token is an operator whose precedence exceeds the bound,
// it is consumed, the right operand is built from the next primary with
// the operator's own precedence as the new bound, and the resulting
// Binary node re-enters with the original bound. This yields
// left-associative grouping at equal precedence and correct
// mixed-precedence nesting:
//
//	10 + 20 * 1  =>  Binary{+, 10, Binary{*, 20, 1}}
//	1 - 2 - 3    =>  Binary{-, Binary{-, 1, 2}, 3}
func (par *Parser) maybeBinary(left StatementNode, precedence int) StatementNode {
	if par.isOp() {
		operator := par.current().Op
		newPrecedence := operator.Precedence()
		if newPrecedence > precedence {
			par.next()
			right := par.maybeBinary(par.parsePrimary(), newPrecedence)
			return par.maybeBinary(&BinaryExpressionNode{
				Operator: operator,
				Left:     left,
				Right:    right,
			}, precedence)
		}
	}
	return left
}

// parseAtom reads one primary - a literal, a symbol, a call, or a
// statement keyword construct - and then folds any binary operator tail
// onto it via maybeBinary. A bare semicolon takes no binary extension.
func (par *Parser) parseAtom() StatementNode {
	primary := par.parsePrimary()

	switch primary.(type) {
	case *SemicolonStatementNode, *EOFNode:
		return primary
	}

	return par.maybeBinary(primary, lexer.MINIMUM_PRIORITY)
}

// parsePrimary reads exactly one primary from the token stream and
// consumes it, without folding any operator tail onto it.
func (par *Parser) parsePrimary() StatementNode {
	if !par.hasNext() {
		return &EOFNode{}
	}

	switch tok := par.current(); tok.Type {
	case lexer.RETURN_KEY:
		par.next()
		return &ReturnStatementNode{Value: par.parseAtom()}
	case lexer.NUMBER_LIT:
		par.next()
		return &NumberLiteralExpressionNode{Value: tok.Number}
	case lexer.BOOL_LIT:
		par.next()
		return &BooleanLiteralExpressionNode{Value: tok.Value}
	case lexer.STR_LIT:
		par.next()
		return &StringLiteralExpressionNode{Value: tok.Literal}
	case lexer.SEMICOLON_DELIM:
		par.next()
		return &SemicolonStatementNode{}
	case lexer.SYMBOL_TOK:
		par.next()
		if par.isTok(lexer.LPAREN) {
			par.next()
			return par.parseCall(tok.Literal)
		}
		return &SymbolExpressionNode{Name: tok.Literal}
	case lexer.PRINT_KEY:
		par.next()
		return &PrintStatementNode{Value: par.parseAtom()}
	case lexer.DEFINE_KEY:
		par.next()
		return par.parseDefine()
	case lexer.IF_KEY:
		par.next()
		return par.parseIf()
	case lexer.DO_KEY:
		par.next()
		return par.parseDo()
	case lexer.RUN_KEY:
		par.next()
		return par.parseRun()
	case lexer.THROW_KEY:
		par.next()
		if par.current().Type == lexer.STR_LIT {
			message := par.current().Literal
			par.next()
			return &ThrowStatementNode{Message: message}
		}
		par.addError("can't find message to throw, found %s", par.current().Type)
		return &EOFNode{}
	case lexer.OPERATOR:
		// handle negative number literals: `- 1` folds to Number(-1)
		if tok.Op == lexer.SUB_OP {
			par.next()
			if par.current().Type == lexer.NUMBER_LIT {
				value := par.current().Number
				par.next()
				return &NumberLiteralExpressionNode{Value: -value}
			}
		}
		par.addError("can't apply operator %s", tok.Op.String())
		return &EOFNode{}
	default:
		par.addError("parsePrimary unimplemented for %s", tok.Type)
		return &EOFNode{}
	}
}
