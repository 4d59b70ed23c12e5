package hcv

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSumConstants(t *testing.T) {
	tests := []struct {
		f    float64
		want Sum
	}{
		{0, SumZero},
		{1, SumOne},
		{2, SumTwo},
		{3, SumThree},
	}
	for _, tt := range tests {
		if got := SumFromFloat64(tt.f); got != tt.want {
			t.Errorf("SumFromFloat64(%v) = %#v, want %#v", tt.f, got, tt.want)
		}
		if got := tt.want.Float64(); got != tt.f {
			t.Errorf("%v.Float64() = %v, want %v", tt.want, got, tt.f)
		}
	}
	if !SumThree.IsValid() || SumThree.AddProp(1).IsValid() {
		t.Error("IsValid does not stop at three")
	}
	if !SumOne.IsProp() || SumOne.AddProp(1).IsProp() {
		t.Error("IsProp does not stop at one")
	}
}

func TestSumAdd(t *testing.T) {
	for _, tt := range [][2]float64{{0, 0.3}, {0.024, 0.5}, {0.18, 0.5}, {0.5, 0.8}, {1.5, 0.6}} {
		got := SumFromFloat64(tt[0]).Add(SumFromFloat64(tt[1]))
		if !scalar.EqualWithinAbs(got.Float64(), tt[0]+tt[1], 1e-12) {
			t.Errorf("%v + %v = %v", tt[0], tt[1], got)
		}
	}
}

func TestSumSub(t *testing.T) {
	for _, tt := range [][2]float64{{0.5, 0.3}, {0.524, 0.5}, {0.18, 0.15}, {0.5, 0.08}, {1.2, 1.1}} {
		got := SumFromFloat64(tt[0]).Sub(SumFromFloat64(tt[1]))
		if !scalar.EqualWithinAbs(got.Float64(), tt[0]-tt[1], 1e-12) {
			t.Errorf("%v - %v = %v", tt[0], tt[1], got)
		}
	}
	if got := SumThree.SubProp(PropOne); got != SumTwo {
		t.Errorf("3 - 1 = %v, want 2", got)
	}
}

func TestSumDiv(t *testing.T) {
	for _, tt := range [][2]float64{{1.1, 3.0}, {0.0, 0.3}, {1.024, 0.5}, {0.18, 0.5}, {2.9, 1.0}} {
		got := SumFromFloat64(tt[0]).Div(SumFromFloat64(tt[1]))
		if !scalar.EqualWithinAbs(got.Float64(), tt[0]/tt[1], 1e-12) {
			t.Errorf("%v / %v = %v, want %v", tt[0], tt[1], got, tt[0]/tt[1])
		}
	}
	if got := SumTwo.Div(SumOne); got != SumTwo {
		t.Errorf("2 / 1 = %#v, want exactly 2", got)
	}
	if got := SumThree.Div(SumThree); got != SumOne {
		t.Errorf("3 / 3 = %#v, want exactly 1", got)
	}
}

func TestSumDivN(t *testing.T) {
	for _, tt := range []struct {
		f float64
		n uint64
	}{{0.9, 3}, {0.6, 2}, {0.3, 2}, {2.5, 4}} {
		got := SumFromFloat64(tt.f).DivN(tt.n)
		if !scalar.EqualWithinAbs(got.Float64(), tt.f/float64(tt.n), 1e-12) {
			t.Errorf("%v / %d = %v", tt.f, tt.n, got)
		}
	}
	if got := SumThree.DivN(3); got != SumOne {
		t.Errorf("3 / 3 = %v, want 1", got)
	}
	if got := SumOne.AddProp(2).ModN(3); got != 2 {
		t.Errorf("(one+2) mod 3 = %d, want 2", got)
	}
}

func TestSumMul(t *testing.T) {
	tests := []struct{ a, b float64 }{
		{1.5, 1.5},
		{1, 2.5},
		{0.5, 0.5},
		{1.75, 0.8},
		{0, 2},
	}
	for _, tt := range tests {
		got := SumFromFloat64(tt.a).Mul(SumFromFloat64(tt.b))
		if !scalar.EqualWithinAbs(got.Float64(), tt.a*tt.b, 1e-12) {
			t.Errorf("%v * %v = %v", tt.a, tt.b, got)
		}
	}
	if got := SumOne.Mul(SumThree); got != SumThree {
		t.Errorf("1 * 3 = %#v, want exactly 3", got)
	}
}

func TestSumMulProp(t *testing.T) {
	got := SumFromFloat64(1.5).MulProp(PropFromFloat64(0.5))
	if !scalar.EqualWithinAbs(got.Float64(), 0.75, 1e-15) {
		t.Errorf("1.5 * 0.5 = %v", got)
	}
	if got := SumThree.MulProp(PropOne); got != SumThree {
		t.Errorf("3 * one = %#v, want 3", got)
	}
}

func TestSumRatio(t *testing.T) {
	tests := []struct {
		s, t float64
		want float64
	}{
		{0.75, 1.5, 0.5},
		{1, 2, 0.5},
		{0.3, 0.6, 0.5},
		{2.9, 2.9, 1},
		{0, 1.2, 0},
	}
	for _, tt := range tests {
		got := SumFromFloat64(tt.s).Ratio(SumFromFloat64(tt.t))
		if !scalar.EqualWithinAbs(got.Float64(), tt.want, 1e-12) {
			t.Errorf("%v.Ratio(%v) = %v, want %v", tt.s, tt.t, got, tt.want)
		}
	}
	if got := SumTwo.Ratio(SumTwo); got != PropOne {
		t.Errorf("2.Ratio(2) = %v, want one", got)
	}
}

func TestSumCmp(t *testing.T) {
	a, b := SumFromFloat64(1.25), SumFromFloat64(1.5)
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Errorf("Cmp ordering wrong for %v, %v", a, b)
	}
	if !a.Less(b) || b.Less(a) {
		t.Errorf("Less ordering wrong for %v, %v", a, b)
	}
	if got := a.AbsDiff(b); !scalar.EqualWithinAbs(got.Float64(), 0.25, 1e-15) {
		t.Errorf("AbsDiff = %v, want 0.25", got)
	}
	if !SumOne.ApproxEqual(SumOne.AddProp(3), 3) || SumOne.ApproxEqual(SumOne.AddProp(4), 3) {
		t.Error("ApproxEqual allowance off by one")
	}
	if SumZero.ApproxEqual(SumThree, 1<<63) {
		t.Error("ApproxEqual must not wrap across the high word")
	}
}

func TestSumString(t *testing.T) {
	if got := SumFromFloat64(1.5).String(); got != "1.500000" {
		t.Errorf("String() = %q, want %q", got, "1.500000")
	}
}
