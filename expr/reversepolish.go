package expr

// Token is one element of a reverse-polish sequence: either a numeric
// value or an operator tag.
type Token struct {
	isOperator bool
	value      float64
	operator   Operator
}

// Val wraps a catalogue value as a reverse-polish value token.
func Val(v float64) Token { return Token{value: v} }

// Op wraps an operator as a reverse-polish operator token.
func Op(o Operator) Token { return Token{isOperator: true, operator: o} }

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool { return t.isOperator }

// Value returns the token's numeric value. Only meaningful when
// IsOperator is false.
func (t Token) Value() float64 { return t.value }

// Operator returns the token's operator. Only meaningful when IsOperator
// is true.
func (t Token) Operator() Operator { return t.operator }

// ReversePolish is a flat sequence that reduces to one value when scanned
// right to left by a stack machine: a value token pushes, an operator
// token pops two operands and pushes their combination.
type ReversePolish []Token

// FromReversePolish materializes an Expression tree from a well-formed
// reverse-polish sequence. The caller guarantees well-formedness (operator
// count equals value count minus one, valid reverse order); malformed
// input is a programming error and panics rather than returning a
// sentinel, matching the "caller guarantees" contract of the Polish
// Evaluator this sequence format also feeds (see package polish).
//
// The returned tree is not yet simplified; call Simplify before relying
// on the canonical-form invariants.
func FromReversePolish(rp ReversePolish) *Expression {
	stack := make([]*Expression, 0, len(rp))
	for i := len(rp) - 1; i >= 0; i-- {
		tok := rp[i]
		if !tok.IsOperator() {
			stack = append(stack, Leaf(tok.Value()))
			continue
		}
		if len(stack) < 2 {
			panic("expr: malformed reverse-polish sequence")
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, Node(tok.Operator(), left, right))
	}
	if len(stack) != 1 {
		panic("expr: malformed reverse-polish sequence")
	}

	return stack[0]
}
