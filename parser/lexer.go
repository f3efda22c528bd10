package parser

import (
	"fmt"
	"unicode"
)

// lexer holds all mutable state for a single scanning pass over src.
type lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// scanNumber collects a decimal literal with at most one '.'.
// The first digit must still be at l.peek().
func (l *lexer) scanNumber() (Token, error) {
	start := l.pos
	seenDot := false
	for l.pos < len(l.src) {
		r := l.peek()
		if r == '.' {
			if seenDot {
				return Token{}, fmt.Errorf("second '.' in number at col %d", l.pos)
			}
			seenDot = true
			l.advance()
			continue
		}
		if !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if lexeme == "." {
		return Token{}, fmt.Errorf("bare '.' at col %d", start)
	}
	// Normalize .5 to 0.5 and 5. to 5.0 so number lexemes always start
	// and end with a digit.
	if lexeme[0] == '.' {
		lexeme = "0" + lexeme
	}
	if lexeme[len(lexeme)-1] == '.' {
		lexeme += "0"
	}
	return Token{Type: NUMBER, Lexeme: lexeme, Col: start}, nil
}

// scanIdent collects a run of letters. The first letter must still be at
// l.peek().
func (l *lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && unicode.IsLetter(l.peek()) {
		l.advance()
	}
	return Token{Type: IDENT, Lexeme: string(l.src[start:l.pos]), Col: start}
}

// scanCommand collects a backslash command: '\' followed by letters. The
// lexeme keeps the backslash so \pi matches the reserved number lexeme
// directly. \cdot is folded into STAR here so the parser sees one
// multiplication token.
func (l *lexer) scanCommand() (Token, error) {
	start := l.pos
	l.advance() // consume the backslash
	if !unicode.IsLetter(l.peek()) {
		return Token{}, fmt.Errorf("expected name after '\\' at col %d", start)
	}
	for l.pos < len(l.src) && unicode.IsLetter(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if lexeme == `\cdot` {
		return Token{Type: STAR, Lexeme: lexeme, Col: start}, nil
	}
	return Token{Type: COMMAND, Lexeme: lexeme, Col: start}, nil
}

// nextToken skips whitespace and returns the next Token.
func (l *lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Col: l.pos}, nil
	}

	ch := l.peek()
	col := l.pos

	if unicode.IsDigit(ch) || ch == '.' {
		return l.scanNumber()
	}
	if unicode.IsLetter(ch) {
		return l.scanIdent(), nil
	}
	if ch == '\\' {
		return l.scanCommand()
	}

	l.advance()
	switch ch {
	case '+':
		return Token{PLUS, "+", col}, nil
	case '-':
		return Token{MINUS, "-", col}, nil
	case '*':
		return Token{STAR, "*", col}, nil
	case '/':
		return Token{SLASH, "/", col}, nil
	case '^':
		return Token{CARET, "^", col}, nil
	case '(':
		return Token{LPAREN, "(", col}, nil
	case ')':
		return Token{RPAREN, ")", col}, nil
	case '{':
		return Token{LBRACE, "{", col}, nil
	case '}':
		return Token{RBRACE, "}", col}, nil
	default:
		return Token{}, fmt.Errorf("unexpected character %q at col %d", ch, col)
	}
}

// lex tokenizes src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal character.
func lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
