package compop

import (
	"testing"
)

var allOps = []CompOp{Eq, Ne, Lt, Le, Ge, Gt}

func TestInvert(t *testing.T) {
	// fixed pairing: Eq/Ne, Lt/Gt, Le/Ge
	pairs := map[CompOp]CompOp{
		Eq: Ne,
		Ne: Eq,
		Lt: Gt,
		Gt: Lt,
		Le: Ge,
		Ge: Le,
	}

	for op, want := range pairs {
		if got := op.Invert(); got != want {
			t.Errorf("%s.Invert() = %s, want %s", op, got, want)
		}
	}

	// inversion is an involution
	for _, op := range allOps {
		if got := op.Invert().Invert(); got != op {
			t.Errorf("%s.Invert().Invert() = %s", op, got)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		op   CompOp
		ord  Ordering
		want bool
	}{
		{Eq, Equal, true}, {Eq, Less, false}, {Eq, Greater, false},
		{Ne, Equal, false}, {Ne, Less, true}, {Ne, Greater, true},
		{Lt, Less, true}, {Lt, Equal, false}, {Lt, Greater, false},
		{Le, Less, true}, {Le, Equal, true}, {Le, Greater, false},
		{Ge, Greater, true}, {Ge, Equal, true}, {Ge, Less, false},
		{Gt, Greater, true}, {Gt, Equal, false}, {Gt, Less, false},
	}

	for _, tc := range tests {
		if got := tc.op.Eval(tc.ord); got != tc.want {
			t.Errorf("%s.Eval(%s) = %v, want %v", tc.op, tc.ord, got, tc.want)
		}
	}
}

func TestSignRoundTrip(t *testing.T) {
	for _, op := range allOps {
		got, err := ParseSign(op.Sign())
		if err != nil {
			t.Fatalf("ParseSign(%q): %v", op.Sign(), err)
		}
		if got != op {
			t.Errorf("ParseSign(%q) = %s, want %s", op.Sign(), got, op)
		}
	}

	// "=" is an alias for "=="
	if got, err := ParseSign("="); err != nil || got != Eq {
		t.Errorf("ParseSign(\"=\") = %s, %v", got, err)
	}

	if _, err := ParseSign("<>"); err == nil {
		t.Error("ParseSign(\"<>\") should fail")
	}
}

func TestIsValid(t *testing.T) {
	for _, op := range allOps {
		if !op.IsValid() {
			t.Errorf("%s should be valid", op)
		}
	}
	if CompOp(42).IsValid() {
		t.Error("CompOp(42) should be invalid")
	}
}

func TestMarshalText(t *testing.T) {
	for _, op := range allOps {
		data, err := op.MarshalText()
		if err != nil {
			t.Fatalf("%s.MarshalText(): %v", op, err)
		}
		var back CompOp
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", data, err)
		}
		if back != op {
			t.Errorf("round trip of %s gave %s", op, back)
		}
	}

	if _, err := CompOp(42).MarshalText(); err == nil {
		t.Error("MarshalText on an invalid operator should fail")
	}
}

func TestOrderingString(t *testing.T) {
	tests := map[Ordering]string{
		Less:    "less",
		Equal:   "equal",
		Greater: "greater",
	}
	for ord, want := range tests {
		if got := ord.String(); got != want {
			t.Errorf("Ordering(%d).String() = %q, want %q", ord, got, want)
		}
	}
}

func TestOrderingFlip(t *testing.T) {
	if Less.Flip() != Greater || Greater.Flip() != Less || Equal.Flip() != Equal {
		t.Error("Flip must mirror the ordering")
	}
}
