package expr

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name      string
		literal   string
		wantInt   int64
		wantFloat float64
		isFloat   bool
	}{
		{name: "Integer", literal: "42", wantInt: 42},
		{name: "Zero", literal: "0", wantInt: 0},
		{name: "Decimal", literal: "3.25", wantFloat: 3.25, isFloat: true},
		{name: "Leading dot", literal: ".5", wantFloat: 0.5, isFloat: true},
		{name: "Trailing dot", literal: "5.", wantFloat: 5.0, isFloat: true},
		{name: "Whole-valued decimal stays float", literal: "2.0", wantFloat: 2.0, isFloat: true},
		{name: "Exponent is float", literal: "1e3", wantFloat: 1000.0, isFloat: true},
		{name: "Negative exponent", literal: "25e-2", wantFloat: 0.25, isFloat: true},
		{name: "Max int64", literal: "9223372036854775807", wantInt: 9223372036854775807},
		{name: "Beyond int64 degrades to float", literal: "9223372036854775808", wantFloat: 9223372036854775808.0, isFloat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.literal, 0)
			if err != nil {
				t.Fatalf("ParseNumber(%q) error = %v", tt.literal, err)
			}
			if got.IsFloat != tt.isFloat {
				t.Fatalf("ParseNumber(%q) IsFloat = %v, expected %v", tt.literal, got.IsFloat, tt.isFloat)
			}
			if tt.isFloat {
				if got.Float != tt.wantFloat {
					t.Errorf("ParseNumber(%q) = %v, expected %v", tt.literal, got.Float, tt.wantFloat)
				}
			} else if got.Int != tt.wantInt {
				t.Errorf("ParseNumber(%q) = %v, expected %v", tt.literal, got.Int, tt.wantInt)
			}
		})
	}
}

func TestParseNumberMalformed(t *testing.T) {
	for _, literal := range []string{"", ".", "1e", "1.2.3"} {
		if _, err := ParseNumber(literal, 0); err == nil {
			t.Errorf("ParseNumber(%q) expected error, got nil", literal)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "Integer", value: IntValue(8), want: "8"},
		{name: "Negative integer", value: IntValue(-5), want: "-5"},
		{name: "Whole float keeps decimal point", value: FloatValue(2), want: "2.0"},
		{name: "Fractional float", value: FloatValue(0.25), want: "0.25"},
		{name: "Negative float", value: FloatValue(-1.5), want: "-1.5"},
		{name: "Large float uses exponent", value: FloatValue(1e21), want: "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestModSignConvention(t *testing.T) {
	tests := []struct {
		l, r, want int64
	}{
		{-7, 3, 2},
		{7, -3, -2},
		{-7, -3, -1},
		{7, 3, 1},
		{0, 3, 0},
		{-9, 3, 0},
	}

	for _, tt := range tests {
		got, err := modValues(IntValue(tt.l), IntValue(tt.r))
		if err != nil {
			t.Fatalf("modValues(%d, %d) error = %v", tt.l, tt.r, err)
		}
		if got.IsFloat || got.Int != tt.want {
			t.Errorf("modValues(%d, %d) = %v, expected %d", tt.l, tt.r, got, tt.want)
		}
	}
}

func TestAddOverflowDegradesToFloat(t *testing.T) {
	got, err := addValues(IntValue(9223372036854775807), IntValue(1))
	if err != nil {
		t.Fatalf("addValues error = %v", err)
	}
	if !got.IsFloat {
		t.Error("expected float result on int64 overflow")
	}
}

func TestDivValues(t *testing.T) {
	got, err := divValues(IntValue(1), IntValue(3))
	if err != nil {
		t.Fatalf("divValues error = %v", err)
	}
	if !got.IsFloat {
		t.Error("division must always yield a float")
	}

	if _, err := divValues(IntValue(1), FloatValue(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("error = %v, expected ErrDivisionByZero", err)
	}
}

func TestIntPow(t *testing.T) {
	tests := []struct {
		base, exp, want int64
		ok              bool
	}{
		{2, 10, 1024, true},
		{-2, 3, -8, true},
		{5, 0, 1, true},
		{0, 5, 0, true},
		{2, 63, 0, false},
		{10, 19, 0, false},
	}

	for _, tt := range tests {
		got, ok := intPow(tt.base, tt.exp)
		if ok != tt.ok {
			t.Errorf("intPow(%d, %d) ok = %v, expected %v", tt.base, tt.exp, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("intPow(%d, %d) = %d, expected %d", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestReleaseNodeRecycles(t *testing.T) {
	node, err := ParseString("1 + 2 * -3")
	if err != nil {
		t.Fatalf("ParseString error = %v", err)
	}
	// Must not panic on a full tree or on nil.
	ReleaseNode(node)
	ReleaseNode(nil)
}
