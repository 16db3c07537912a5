package lexer

// Lexer scans Wolfram-style expression source and produces tokens
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII code for NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar returns the next character without advancing the position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// skipBlockComment skips a (* ... *) comment. Comments nest: every inner
// (* raises the depth and only the matching *) closes it. Returns false if
// the input ends before the comment is closed.
func (l *Lexer) skipBlockComment() bool {
	l.readChar() // consume '('
	l.readChar() // consume '*'
	depth := 1
	for depth > 0 {
		switch {
		case l.ch == 0:
			return false
		case l.ch == '\n':
			l.line++
			l.column = 0
			l.readChar()
		case l.ch == '(' && l.peekChar() == '*':
			depth++
			l.readChar()
			l.readChar()
		case l.ch == '*' && l.peekChar() == ')':
			depth--
			l.readChar()
			l.readChar()
		default:
			l.readChar()
		}
	}
	return true
}

// readIdentifier reads an identifier: a letter followed by letters/digits
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a numeric literal. The caller guarantees the current
// char is a digit, or a '.' followed by a digit. The leading sign is never
// part of the lexeme; the parser folds a prefix minus into the literal.
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	// Exponent suffix, only when well formed; otherwise the 'e' is left
	// for the next token (greedy match of the number alone).
	if l.ch == 'e' || l.ch == 'E' {
		j := l.readPosition
		if j < len(l.input) && (l.input[j] == '+' || l.input[j] == '-') {
			j++
		}
		if j < len(l.input) && isDigit(l.input[j]) {
			l.readChar() // consume 'e'/'E'
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[position:l.position]
}

// readString reads a string literal and decodes its escapes. The opening
// quote is the current char. Decoding: \" -> ", \\ -> \, \n -> newline,
// \t -> tab; any other \X passes X through unchanged.
func (l *Lexer) readString() (string, bool) {
	result := ""
	for {
		l.readChar()
		if l.ch == 0 {
			return "", false
		}
		if l.ch == '"' {
			l.readChar() // consume closing quote
			return result, true
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
			result += "\n"
			continue
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return "", false
			}
			switch l.ch {
			case 'n':
				result += "\n"
			case 't':
				result += "\t"
			case '\n':
				// a literal newline after '\' still advances the line counter
				l.line++
				l.column = 0
				result += "\n"
			default:
				// covers \" and \\ as well
				result += string(l.ch)
			}
		} else {
			result += string(l.ch)
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	for {
		l.skipWhitespace()
		if l.ch == '(' && l.peekChar() == '*' {
			line, col := l.line, l.column
			if !l.skipBlockComment() {
				return Token{Type: ILLEGAL, Literal: "unterminated comment", Line: line, Column: col}
			}
			continue
		}
		break
	}

	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case '+':
		tok = Token{Type: PLUS, Literal: "+", Line: tok.Line, Column: tok.Column}
	case '-':
		tok = Token{Type: MINUS, Literal: "-", Line: tok.Line, Column: tok.Column}
	case '*':
		tok = Token{Type: STAR, Literal: "*", Line: tok.Line, Column: tok.Column}
	case '/':
		tok = Token{Type: SLASH, Literal: "/", Line: tok.Line, Column: tok.Column}
	case '^':
		tok = Token{Type: CARET, Literal: "^", Line: tok.Line, Column: tok.Column}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NEQ, Literal: "!=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: BANG, Literal: "!", Line: tok.Line, Column: tok.Column}
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = Token{Type: ANDAND, Literal: "&&", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ILLEGAL, Literal: "unexpected character '&'", Line: tok.Line, Column: tok.Column}
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = Token{Type: OROR, Literal: "||", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ILLEGAL, Literal: "unexpected character '|'", Line: tok.Line, Column: tok.Column}
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: EQ, Literal: "==", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ILLEGAL, Literal: "unexpected character '='", Line: tok.Line, Column: tok.Column}
		}
	case '<':
		tok = Token{Type: LT, Literal: "<", Line: tok.Line, Column: tok.Column}
	case '>':
		tok = Token{Type: GT, Literal: ">", Line: tok.Line, Column: tok.Column}
	case ';':
		if l.peekChar() == ';' {
			l.readChar()
			tok = Token{Type: SEMISEMI, Literal: ";;", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: ILLEGAL, Literal: "unexpected character ';'", Line: tok.Line, Column: tok.Column}
		}
	case '(':
		tok = Token{Type: LPAREN, Literal: "(", Line: tok.Line, Column: tok.Column}
	case ')':
		tok = Token{Type: RPAREN, Literal: ")", Line: tok.Line, Column: tok.Column}
	case '{':
		tok = Token{Type: LBRACE, Literal: "{", Line: tok.Line, Column: tok.Column}
	case '}':
		tok = Token{Type: RBRACE, Literal: "}", Line: tok.Line, Column: tok.Column}
	case '[':
		if l.peekChar() == '[' {
			l.readChar()
			tok = Token{Type: LLBRACKET, Literal: "[[", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: LBRACKET, Literal: "[", Line: tok.Line, Column: tok.Column}
		}
	case ']':
		if l.peekChar() == ']' {
			l.readChar()
			tok = Token{Type: RRBRACKET, Literal: "]]", Line: tok.Line, Column: tok.Column}
		} else {
			tok = Token{Type: RBRACKET, Literal: "]", Line: tok.Line, Column: tok.Column}
		}
	case ',':
		tok = Token{Type: COMMA, Literal: ",", Line: tok.Line, Column: tok.Column}
	case '"':
		str, ok := l.readString()
		if !ok {
			return Token{Type: ILLEGAL, Literal: "unterminated string", Line: tok.Line, Column: tok.Column}
		}
		return Token{Type: STRING, Literal: str, Line: tok.Line, Column: tok.Column}
	case 0:
		tok = Token{Type: EOF, Literal: "", Line: tok.Line, Column: tok.Column}
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return Token{Type: IDENT, Literal: ident, Line: tok.Line, Column: tok.Column}
		}
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			literal := l.readNumber()
			return Token{Type: NUMBER, Literal: literal, Line: tok.Line, Column: tok.Column}
		}
		tok = Token{Type: ILLEGAL, Literal: "unexpected character " + quoteChar(l.ch), Line: tok.Line, Column: tok.Column}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input. Scanning stops after the
// first ILLEGAL token, which the parser reports as a positioned failure.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF || tok.Type == ILLEGAL {
			break
		}
	}
	return tokens
}

// Helper functions

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func quoteChar(ch byte) string {
	return "'" + string(ch) + "'"
}
