package rational

import "fmt"

// Op enumerates the closed operator token set. Tokens are validated once
// at the boundary by ParseOp; past that point an unknown operator cannot
// occur.
type Op int

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpEq            // ==
	OpLt            // <
	OpGt            // >
	OpLe            // <=
	OpGe            // >=
	OpNe            // !=
)

// OperatorError reports a token outside the operator set.
type OperatorError struct {
	Token string
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Token)
}

// ParseOp maps an operator token to its Op.
func ParseOp(tok string) (Op, error) {
	switch tok {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "==":
		return OpEq, nil
	case "<":
		return OpLt, nil
	case ">":
		return OpGt, nil
	case "<=":
		return OpLe, nil
	case ">=":
		return OpGe, nil
	case "!=":
		return OpNe, nil
	}
	return 0, &OperatorError{Token: tok}
}

// IsComparison reports whether op yields a Truth instead of a Rational.
func (op Op) IsComparison() bool {
	switch op {
	case OpEq, OpLt, OpGt, OpLe, OpGe, OpNe:
		return true
	}
	return false
}

// String returns the operator's source token.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpNe:
		return "!="
	}
	return fmt.Sprintf("Op(%d)", int(op))
}
