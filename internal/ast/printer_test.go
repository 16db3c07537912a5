package ast

import (
	"testing"
)

func TestPretty(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "symbol",
			expr:     &Symbol{Name: "x"},
			expected: "x",
		},
		{
			name:     "number keeps literal text",
			expr:     &Number{Text: "1.50"},
			expected: "1.50",
		},
		{
			name:     "negative number is one literal",
			expr:     &Number{Text: "-5"},
			expected: "-5",
		},
		{
			name:     "string is quoted and escaped",
			expr:     &String{Value: `say "hi"` + "\n"},
			expected: `"say \"hi\"\n"`,
		},
		{
			name:     "operator form uses canonical head",
			expr:     NewForm(OpPlus, &Symbol{Name: "a"}, &Symbol{Name: "b"}),
			expected: "Plus[a, b]",
		},
		{
			name: "nested forms",
			expr: NewForm(OpPlus,
				NewForm(OpTimes, &Number{Text: "2"}, &Symbol{Name: "x"}),
				&Number{Text: "1"}),
			expected: "Plus[Times[2, x], 1]",
		},
		{
			name:     "singletons render bare",
			expr:     NewForm(OpSpan, &Number{Text: "1"}, NewForm(OpAll)),
			expected: "Span[1, All]",
		},
		{
			name:     "empty list",
			expr:     NewForm(OpList),
			expected: "List[]",
		},
		{
			name:     "application",
			expr:     &Apply{Head: &Symbol{Name: "f"}, Args: []Expr{&Symbol{Name: "x"}}},
			expected: "f[x]",
		},
		{
			name: "curried head",
			expr: &Apply{
				Head: &Apply{Head: &Symbol{Name: "f"}, Args: []Expr{&Symbol{Name: "x"}}},
				Args: []Expr{&Symbol{Name: "y"}},
			},
			expected: "f[x][y]",
		},
		{
			name:     "niladic application",
			expr:     &Apply{Head: &Symbol{Name: "f"}},
			expected: "f[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pretty(tt.expr)
			if got != tt.expected {
				t.Errorf("wrong pretty form. expected=%q, got=%q", tt.expected, got)
			}
		})
	}
}

func TestFullForm(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name:     "atom",
			expr:     &Number{Text: "2"},
			expected: "2",
		},
		{
			name:     "form",
			expr:     NewForm(OpTimes, &Number{Text: "2"}, &Symbol{Name: "x"}),
			expected: "[Times, 2, x]",
		},
		{
			name:     "application head serialized recursively",
			expr:     &Apply{Head: &Symbol{Name: "f"}, Args: []Expr{&Number{Text: "1"}}},
			expected: "[f, 1]",
		},
		{
			name: "curried head",
			expr: &Apply{
				Head: &Apply{Head: &Symbol{Name: "f"}, Args: []Expr{&Symbol{Name: "x"}}},
				Args: []Expr{&Symbol{Name: "y"}},
			},
			expected: "[[f, x], y]",
		},
		{
			name:     "singleton bare",
			expr:     NewForm(OpAll),
			expected: "All",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FullForm(tt.expr)
			if got != tt.expected {
				t.Errorf("wrong full form. expected=%q, got=%q", tt.expected, got)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewForm(OpPlus, &Number{Text: "1"}, &Symbol{Name: "x"})
	b := NewForm(OpPlus, &Number{Text: "1"}, &Symbol{Name: "x"})
	if !Equal(a, b) {
		t.Error("structurally identical forms compare unequal")
	}

	tests := []struct {
		name string
		x, y Expr
	}{
		{"different op", NewForm(OpPlus), NewForm(OpTimes)},
		{"different variant", &Symbol{Name: "1"}, &Number{Text: "1"}},
		{"different arity", NewForm(OpList, &Number{Text: "1"}), NewForm(OpList)},
		{"different text", &Number{Text: "1"}, &Number{Text: "1.0"}},
		{
			"nested difference",
			NewForm(OpPlus, NewForm(OpTimes, &Number{Text: "2"}, &Symbol{Name: "x"})),
			NewForm(OpPlus, NewForm(OpTimes, &Number{Text: "2"}, &Symbol{Name: "y"})),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(tt.x, tt.y) {
				t.Errorf("expected %s != %s", Pretty(tt.x), Pretty(tt.y))
			}
		})
	}
}
