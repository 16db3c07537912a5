package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT  // x, foo2
	NUMBER // 123, 1.5, .5, 2e-3
	STRING // "hello" (Literal holds the decoded payload)

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	CARET    // ^
	BANG     // !
	ANDAND   // &&
	OROR     // ||
	EQ       // ==
	NEQ      // !=
	LT       // <
	GT       // >
	SEMISEMI // ;;

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	LLBRACKET // [[
	RRBRACKET // ]]
	COMMA     // ,
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "end of input"
	case IDENT:
		return "identifier"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case PLUS:
		return "'+'"
	case MINUS:
		return "'-'"
	case STAR:
		return "'*'"
	case SLASH:
		return "'/'"
	case CARET:
		return "'^'"
	case BANG:
		return "'!'"
	case ANDAND:
		return "'&&'"
	case OROR:
		return "'||'"
	case EQ:
		return "'=='"
	case NEQ:
		return "'!='"
	case LT:
		return "'<'"
	case GT:
		return "'>'"
	case SEMISEMI:
		return "';;'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case LBRACE:
		return "'{'"
	case RBRACE:
		return "'}'"
	case LBRACKET:
		return "'['"
	case RBRACKET:
		return "']'"
	case LLBRACKET:
		return "'[['"
	case RRBRACKET:
		return "']]'"
	case COMMA:
		return "','"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}
