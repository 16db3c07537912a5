package ast

// Expr is the interface implemented by all expression nodes. Nodes are
// immutable once constructed and carry no source positions; trees built by
// the parser are safe to share by reference.
type Expr interface {
	exprNode()
}

// Op identifies the recognized operator forms. An operator form is
// semantically an application whose head is fixed to the operator's
// canonical name, so "a+b" and "Plus[a,b]" are indistinguishable once
// parsed.
type Op int

const (
	// Arithmetic
	OpPlus Op = iota
	OpSubtract
	OpTimes
	OpDivide
	OpPower

	// Logical
	OpAnd
	OpOr
	OpNot

	// Relational
	OpEqual
	OpUnequal
	OpLess
	OpGreater

	// Structural
	OpList
	OpPart
	OpSpan

	// Nullary singletons
	OpAll
	OpTrue
	OpFalse
)

// Name returns the operator's canonical head name
func (op Op) Name() string {
	switch op {
	case OpPlus:
		return "Plus"
	case OpSubtract:
		return "Subtract"
	case OpTimes:
		return "Times"
	case OpDivide:
		return "Divide"
	case OpPower:
		return "Power"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpNot:
		return "Not"
	case OpEqual:
		return "Equal"
	case OpUnequal:
		return "Unequal"
	case OpLess:
		return "Less"
	case OpGreater:
		return "Greater"
	case OpList:
		return "List"
	case OpPart:
		return "Part"
	case OpSpan:
		return "Span"
	case OpAll:
		return "All"
	case OpTrue:
		return "True"
	case OpFalse:
		return "False"
	default:
		return "Unknown"
	}
}

// Singleton reports whether the operator is a nullary named constant
func (op Op) Singleton() bool {
	return op == OpAll || op == OpTrue || op == OpFalse
}

// Symbol is a bare identifier
type Symbol struct {
	Name string
}

func (s *Symbol) exprNode() {}

// Number is a numeric literal preserved as decoded text. The text carries
// the sign when the parser folds a prefix minus into the literal.
type Number struct {
	Text string
}

func (n *Number) exprNode() {}

// String is a decoded string value; quotes and escapes are stripped on
// parse and re-applied on serialization
type String struct {
	Value string
}

func (s *String) exprNode() {}

// Apply is the generic Head[arg1, arg2, ...] shape. Head is itself an
// expression, which admits curried heads such as f[x][y].
type Apply struct {
	Head Expr
	Args []Expr
}

func (a *Apply) exprNode() {}

// Form is an operator form: a recognized operator plus its ordered
// arguments. Singletons are forms with a statically empty argument list.
type Form struct {
	Op   Op
	Args []Expr
}

func (f *Form) exprNode() {}

// NewForm builds an operator form
func NewForm(op Op, args ...Expr) *Form {
	return &Form{Op: op, Args: args}
}

// Equal reports structural equality: two nodes are equal iff their variant
// tag and all fields are equal, recursively
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Text == y.Text
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Apply:
		y, ok := b.(*Apply)
		return ok && Equal(x.Head, y.Head) && equalArgs(x.Args, y.Args)
	case *Form:
		y, ok := b.(*Form)
		return ok && x.Op == y.Op && equalArgs(x.Args, y.Args)
	default:
		return false
	}
}

func equalArgs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
