/*
File    : eye/lexer/lexer_utils.go
Project : Eye Language Interpreter
*/
package lexer

import (
	"strconv"
	"strings"
)

// isWhitespace reports whether the byte is a whitespace character
// (space, newline, tab or carriage return).
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

// isNumeric reports whether the byte is a decimal digit.
func isNumeric(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether the byte is an ASCII letter.
// Identifiers must start with a letter; '_' is only valid inside them.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentChar reports whether the byte may appear inside an identifier.
func isIdentChar(c byte) bool {
	return isAlpha(c) || isNumeric(c) || c == '_'
}

// readNumber reads a decimal integer literal from the current position.
// The value is decoded as a signed 32-bit integer; a literal that does
// not fit yields an INVALID token carrying the unconsumed prefix.
// A leading '-' is never part of a number token: it is lexed as the
// subtract operator and folded back into a negative literal by the parser.
func readNumber(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	value, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return NewToken(INVALID_TYPE, lex.Src[start:])
	}

	token := NewNumberToken(literal, int32(value))
	token.Line = line
	token.Column = column
	return token
}

// readWord reads an identifier-shaped word ([A-Za-z][A-Za-z0-9_]*) and
// classifies it as a keyword, operator keyword, boolean literal or symbol.
//
// Classification rules:
//   - "is"          -> Operator(IsEq)
//   - "true"/"false" -> Bool literal
//   - "with"        -> ToBe (alias kept from the source grammar)
//   - "to" followed by " be" at a word boundary -> ToBe (both words consumed)
//   - keyword map hit -> the keyword token
//   - anything else -> Symbol
//
// Keywords are only recognized as whole words: "ifthen" is a Symbol, not
// `if` followed by `then`.
func readWord(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isIdentChar(lex.Current) {
		lex.Advance()
	}

	word := lex.Src[start:lex.Position]

	var token Token
	switch word {
	case "is":
		token = NewOperatorToken(ISEQ_OP)
	case "true":
		token = NewBoolToken(true)
	case "false":
		token = NewBoolToken(false)
	case "with":
		// `with` aliases `to be`
		token = NewToken(TOBE_KEY, "with")
	case "to":
		if strings.HasPrefix(lex.Remaining(), " be") && !followedByIdentChar(lex, 3) {
			// consume " be"
			lex.Advance()
			lex.Advance()
			lex.Advance()
			token = NewToken(TOBE_KEY, "to be")
		} else {
			token = NewToken(SYMBOL_TOK, word)
		}
	default:
		if keyword, ok := KEYWORDS_MAP[word]; ok {
			token = NewToken(keyword, word)
		} else {
			token = NewToken(SYMBOL_TOK, word)
		}
	}

	token.Line = line
	token.Column = column
	return token
}

// followedByIdentChar reports whether the character at the given offset
// from the current position would extend an identifier. Used to enforce
// word boundaries for multi-word keywords.
func followedByIdentChar(lex *Lexer, offset int) bool {
	pos := lex.Position + offset
	if pos >= lex.SrcLength {
		return false
	}
	return isIdentChar(lex.Src[pos])
}

// readStringLiteral reads a double-quoted string literal.
// The only recognized escape is `\"`, which prevents the quote from
// terminating the literal; no unescaping is performed, so the token's
// payload is the raw text between the surrounding quotes.
// An unterminated string yields an INVALID token.
func readStringLiteral(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	// Skip the opening quote
	lex.Advance()
	contentStart := lex.Position

	for {
		if lex.Current == 0 {
			// Unterminated string literal
			return NewToken(INVALID_TYPE, lex.Src[start:])
		}
		if lex.Current == '\\' && lex.Peek() == '"' {
			// Escaped quote: keep both characters, keep scanning
			lex.Advance()
			lex.Advance()
			continue
		}
		if lex.Current == '"' {
			break
		}
		lex.Advance()
	}

	content := lex.Src[contentStart:lex.Position]
	// Skip the closing quote
	lex.Advance()

	token := NewToken(STR_LIT, content)
	token.Line = line
	token.Column = column
	return token
}

// readTypeAnnotation reads a `: name` type annotation.
// The colon must be followed by exactly one space and at least one
// alphanumeric character; the token's payload drops the leading
// colon and space.
func readTypeAnnotation(lex *Lexer) Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	if lex.Peek() != ' ' {
		return NewToken(INVALID_TYPE, lex.Src[start:])
	}

	// Skip ': '
	lex.Advance()
	lex.Advance()

	nameStart := lex.Position
	for isAlpha(lex.Current) || isNumeric(lex.Current) {
		lex.Advance()
	}

	if lex.Position == nameStart {
		return NewToken(INVALID_TYPE, lex.Src[start:])
	}

	token := NewToken(TYPE_TOK, lex.Src[nameStart:lex.Position])
	token.Line = line
	token.Column = column
	return token
}
