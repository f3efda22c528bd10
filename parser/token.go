package parser

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	NUMBER  // decimal literal, e.g. 2 or 0.5
	IDENT   // bare name: variable, symbol or function
	COMMAND // backslash command, e.g. \sin or \pi

	// Operators
	PLUS  // +
	MINUS // -
	STAR  // * (also emitted for \cdot)
	SLASH // /
	CARET // ^

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
)

var tokenNames = [...]string{
	EOF:     "EOF",
	NUMBER:  "NUMBER",
	IDENT:   "IDENT",
	COMMAND: "COMMAND",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	STAR:    "STAR",
	SLASH:   "SLASH",
	CARET:   "CARET",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
	LBRACE:  "LBRACE",
	RBRACE:  "RBRACE",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Col    int    // 0-based rune offset into the formula
}

func (t Token) String() string {
	return fmt.Sprintf("%-8s %-10q  col %d", t.Type, t.Lexeme, t.Col)
}
