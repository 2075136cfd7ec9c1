// Copyright (c) 2026, the vercmp authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compop

import (
	"errors"
	"fmt"
)

// ErrUnknownSign indicates a sign string that maps to no comparison operator.
var ErrUnknownSign = errors.New("unknown comparison sign")

// Ordering is the three-way result of comparing two versions or two parts.
type Ordering int8

const (
	// Less indicates the left operand orders before the right one.
	Less Ordering = -1
	// Equal indicates both operands occupy the same position in the order.
	Equal Ordering = 0
	// Greater indicates the left operand orders after the right one.
	Greater Ordering = 1
)

// Flip returns the ordering seen from the opposite operand.
func (o Ordering) Flip() Ordering {
	return -o
}

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// CompOp is a relational comparison operator over version orderings.
// The set is closed: Eq, Ne, Lt, Le, Ge, and Gt are the only valid values.
type CompOp uint8

const (
	// Eq tests for equality.
	Eq CompOp = iota
	// Ne tests for inequality.
	Ne
	// Lt tests for strictly-less.
	Lt
	// Le tests for less-or-equal.
	Le
	// Ge tests for greater-or-equal.
	Ge
	// Gt tests for strictly-greater.
	Gt
)

// IsValid returns true if op is one of the defined operators.
func (op CompOp) IsValid() bool {
	return op <= Gt
}

// Invert returns the inverse operator. The pairing is a fixed convention,
// not the logical negation of a three-way comparison: Eq and Ne invert to
// each other, as do Lt/Gt and Le/Ge.
func (op CompOp) Invert() CompOp {
	switch op {
	case Eq:
		return Ne
	case Ne:
		return Eq
	case Lt:
		return Gt
	case Le:
		return Ge
	case Ge:
		return Le
	case Gt:
		return Lt
	default:
		return op
	}
}

// Eval reports whether the operator holds for the given three-way ordering.
func (op CompOp) Eval(ord Ordering) bool {
	switch op {
	case Eq:
		return ord == Equal
	case Ne:
		return ord != Equal
	case Lt:
		return ord == Less
	case Le:
		return ord != Greater
	case Ge:
		return ord != Less
	case Gt:
		return ord == Greater
	default:
		return false
	}
}

// Sign returns the conventional sign for the operator, e.g. "<=" for Le.
func (op CompOp) Sign() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Ge:
		return ">="
	case Gt:
		return ">"
	default:
		return "invalid"
	}
}

// String returns the operator sign.
func (op CompOp) String() string {
	return op.Sign()
}

// ParseSign parses a sign string into its comparison operator.
// "=" is accepted as an alias for "==".
func ParseSign(s string) (CompOp, error) {
	switch s {
	case "==", "=":
		return Eq, nil
	case "!=":
		return Ne, nil
	case "<":
		return Lt, nil
	case "<=":
		return Le, nil
	case ">=":
		return Ge, nil
	case ">":
		return Gt, nil
	default:
		return Eq, fmt.Errorf("%w: %q", ErrUnknownSign, s)
	}
}

// MarshalText implements encoding.TextMarshaler using the sign form.
func (op CompOp) MarshalText() ([]byte, error) {
	if !op.IsValid() {
		return nil, fmt.Errorf("%w: operator %d", ErrUnknownSign, op)
	}
	return []byte(op.Sign()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the sign form.
func (op *CompOp) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
