package rational

// Value is what applying an operator produces: a Rational for the four
// arithmetic operators, a Truth for the six comparisons.
type Value interface {
	String() string
}

// Truth is a comparison outcome as the evaluator prints it: 1 when the
// relation holds, 0 when it does not.
type Truth int

func (t Truth) String() string {
	if t != 0 {
		return "1"
	}
	return "0"
}

func truthOf(ok bool) Truth {
	if ok {
		return 1
	}
	return 0
}

// Evaluate applies op to a and b. Arithmetic results come back reduced
// to lowest terms; comparisons are exact at any magnitude. Dividing by
// the zero rational fails with ErrDivisionByZero.
func Evaluate(a Rational, op Op, b Rational) (Value, error) {
	switch op {
	case OpAdd:
		return a.Add(b), nil
	case OpSub:
		return a.Sub(b), nil
	case OpMul:
		return a.Mul(b), nil
	case OpDiv:
		q, err := a.Div(b)
		if err != nil {
			return nil, err
		}
		return q, nil
	case OpEq:
		return truthOf(a.Cmp(b) == 0), nil
	case OpLt:
		return truthOf(a.Cmp(b) < 0), nil
	case OpGt:
		return truthOf(a.Cmp(b) > 0), nil
	case OpLe:
		return truthOf(a.Cmp(b) <= 0), nil
	case OpGe:
		return truthOf(a.Cmp(b) >= 0), nil
	case OpNe:
		return truthOf(a.Cmp(b) != 0), nil
	}
	return nil, &OperatorError{Token: op.String()}
}
