package ast

import "strings"

// Pretty returns the human-readable serialization of an expression:
// Head[arg1, arg2, ...] for applications and operator forms, bare names for
// symbols and singletons, literal text for numbers, and quoted text for
// strings. Operator symbols do not round-trip: "a+b" renders as
// "Plus[a, b]". The form is for inspection, not reparse.
func Pretty(e Expr) string {
	var sb strings.Builder
	writePretty(&sb, e)
	return sb.String()
}

func writePretty(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Symbol:
		sb.WriteString(n.Name)
	case *Number:
		sb.WriteString(n.Text)
	case *String:
		sb.WriteString(Quote(n.Value))
	case *Apply:
		writePretty(sb, n.Head)
		sb.WriteByte('[')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writePretty(sb, arg)
		}
		sb.WriteByte(']')
	case *Form:
		sb.WriteString(n.Op.Name())
		if n.Op.Singleton() {
			return
		}
		sb.WriteByte('[')
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writePretty(sb, arg)
		}
		sb.WriteByte(']')
	}
}

// FullForm returns the uniform bracketed serialization [head, arg1, ...]
// with the head serialized recursively. Atoms and singletons render bare.
func FullForm(e Expr) string {
	var sb strings.Builder
	writeFull(&sb, e)
	return sb.String()
}

func writeFull(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Symbol:
		sb.WriteString(n.Name)
	case *Number:
		sb.WriteString(n.Text)
	case *String:
		sb.WriteString(Quote(n.Value))
	case *Apply:
		sb.WriteByte('[')
		writeFull(sb, n.Head)
		for _, arg := range n.Args {
			sb.WriteString(", ")
			writeFull(sb, arg)
		}
		sb.WriteByte(']')
	case *Form:
		if n.Op.Singleton() {
			sb.WriteString(n.Op.Name())
			return
		}
		sb.WriteByte('[')
		sb.WriteString(n.Op.Name())
		for _, arg := range n.Args {
			sb.WriteString(", ")
			writeFull(sb, arg)
		}
		sb.WriteByte(']')
	}
}

// Quote re-escapes a decoded string value for serialization. The escape
// table mirrors the scanner's: quote, backslash, newline, and tab.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
