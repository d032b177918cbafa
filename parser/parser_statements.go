/*
File    : eye/parser/parser_statements.go
Project : Eye Language Interpreter
*/
package parser

import "github.com/eye-lang/eye/lexer"

// parseDefine parses the tail of `define <sym> to be ...`.
// When the token after `to be` opens a brace the definition is a
// procedure; otherwise it binds a value:
//
//	define a to be { return false; }    -> ProcStatementNode
//	define x to be 10 + 20              -> AssignStatementNode
func (par *Parser) parseDefine() StatementNode {
	if par.current().Type != lexer.SYMBOL_TOK {
		par.addError("could not get symbol for define, found %s", par.current().Type)
		return &EOFNode{}
	}
	symbol := par.current().Literal
	par.next()

	if !par.isTok(lexer.TOBE_KEY) {
		par.addError("expected 'to be' after define %s, found %s", symbol, par.current().Type)
		return &EOFNode{}
	}
	par.next()

	if par.current().Type == lexer.LBRACE {
		return par.parseProc(symbol)
	}
	return par.parseSet(symbol)
}

// parseProc parses a procedure body and its optional parameter list:
// `{ ... } given (a, b)`.
func (par *Parser) parseProc(symbol string) StatementNode {
	return &ProcStatementNode{
		Identifier: symbol,
		Body:       par.parseBlock(),
		Args:       par.parseFuncArgs(),
	}
}

// parseSet parses a value binding: the bound expression is a single atom.
func (par *Parser) parseSet(symbol string) StatementNode {
	return &AssignStatementNode{
		Identifier: symbol,
		Value:      par.parseAtom(),
	}
}

// parseIf parses the tail of `if <cond> { body }` with zero or more
// `else if <cond> { body }` arms and an optional trailing `else { body }`.
//
// Elifs is non-nil exactly when at least one `else` token was seen; an
// `else` directly followed by `{` terminates elif parsing and its block
// becomes the else branch.
func (par *Parser) parseIf() StatementNode {
	this := IfArm{
		Conditional: par.parseAtom(),
		Body:        par.parseBlock(),
	}
	elifs, el := par.parseElifs()
	return &IfStatementNode{
		This:  this,
		Elifs: elifs,
		Else:  el,
	}
}

// parseElifs parses the else-if chain and the optional final else block.
// It returns (nil, nil) when no `else` follows the if body at all.
func (par *Parser) parseElifs() ([]IfArm, Block) {
	if !par.isTok(lexer.ELSE_KEY) {
		return nil, nil
	}

	elifs := make([]IfArm, 0)
	for par.isTok(lexer.ELSE_KEY) {
		par.skip(lexer.ELSE_KEY)

		// a plain `else {` ends the chain; its block is the else branch
		if par.isTok(lexer.LBRACE) {
			return elifs, par.parseBlock()
		}

		if par.current().Type != lexer.IF_KEY {
			par.addError("expected 'if' or a block after else, found %s", par.current().Type)
			return elifs, nil
		}
		par.next()
		elifs = append(elifs, IfArm{
			Conditional: par.parseAtom(),
			Body:        par.parseBlock(),
		})
	}

	return elifs, nil
}

// parseDo parses the tail of `do <count-expr> [<sym>] { body }`.
// The loop variable is absent when the token after the count expression
// is not a symbol.
func (par *Parser) parseDo() StatementNode {
	count := par.parseAtom()

	identifier := ""
	if par.current().Type == lexer.SYMBOL_TOK {
		identifier = par.current().Literal
		par.next()
	}

	return &DoStatementNode{
		Count:      count,
		Identifier: identifier,
		Body:       par.parseBlock(),
	}
}

// parseRun parses the tail of `run <sym> [given ( args )]`.
// The argument list is empty when `given` is absent.
func (par *Parser) parseRun() StatementNode {
	if par.current().Type != lexer.SYMBOL_TOK {
		par.addError("could not find function name to call, found %s", par.current().Type)
		return &EOFNode{}
	}
	symbol := par.current().Literal
	par.next()

	args := make(Block, 0)
	if par.isTok(lexer.GIVEN_KEY) {
		par.next()
		par.skip(lexer.LPAREN)
		args = par.parseCallArgs()
	}

	return &CallExpressionNode{
		Identifier: symbol,
		Args:       args,
	}
}

// parseCall parses the argument list of `<sym>( args )`; the opening
// parenthesis has already been consumed by the caller.
func (par *Parser) parseCall(symbol string) StatementNode {
	par.skip(lexer.LPAREN)
	return &CallExpressionNode{
		Identifier: symbol,
		Args:       par.parseCallArgs(),
	}
}

// parseCallArgs parses comma-separated argument expressions until the
// matching close parenthesis.
func (par *Parser) parseCallArgs() Block {
	args := make(Block, 0)

	for !par.isTok(lexer.RPAREN) {
		if !par.hasNext() || par.HasErrors() {
			par.addError("expected ) to close argument list")
			return args
		}
		args = append(args, par.parseAtom())
		par.skip(lexer.COMMA_DELIM)
	}

	par.skip(lexer.RPAREN)

	return args
}

// parseFuncArgs parses an optional parameter list after a procedure body:
// `given ( sym (, sym)* )`. It returns the positional parameter names in
// order, or an empty list when `given` is absent.
func (par *Parser) parseFuncArgs() []string {
	names := make([]string, 0)

	if par.isTok(lexer.GIVEN_KEY) {
		par.next()
		par.skip(lexer.LPAREN)
		for par.current().Type == lexer.SYMBOL_TOK {
			names = append(names, par.current().Literal)
			par.next()
			par.skip(lexer.COMMA_DELIM)
		}
		par.skip(lexer.RPAREN)
	}

	return names
}

// parseBlock parses `{ atom* }`. The opening brace is required; atoms are
// parsed until the closing brace is seen.
func (par *Parser) parseBlock() Block {
	body := make(Block, 0)

	if par.current().Type != lexer.LBRACE {
		par.addError("expecting { found %s", par.current().Type)
		return body
	}
	par.next()

	for par.current().Type != lexer.RBRACE {
		if par.HasErrors() {
			return body
		}
		if !par.hasNext() {
			par.addError("expected } to close block")
			return body
		}
		body = append(body, par.parseAtom())
	}
	par.skip(lexer.RBRACE)

	return body
}
