package wide

import (
	"math"
	"math/big"
	"testing"
)

func toBig(u U128) *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func fromBig(t *testing.T, b *big.Int) U128 {
	t.Helper()
	if b.Sign() < 0 || b.BitLen() > 128 {
		t.Fatalf("big value %v does not fit in U128", b)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(math.MaxUint64))
	hi := new(big.Int).Rsh(b, 64)
	return U128{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

var samples = []U128{
	{},
	{Lo: 1},
	{Lo: 3},
	{Lo: math.MaxUint64},
	{Hi: 1},
	{Hi: 1, Lo: 1},
	{Hi: 2, Lo: math.MaxUint64 - 2},
	{Hi: 0x1234, Lo: 0xdeadbeefcafef00d},
	{Hi: 1 << 62, Lo: 42},
}

func TestU128_AddSub(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			sum := a.Add(b)
			if got, want := toBig(sum), new(big.Int).Add(toBig(a), toBig(b)); got.Cmp(want) != 0 {
				t.Errorf("%v.Add(%v) = %v, want %v", a, b, got, want)
			}
			if got := sum.Sub(b); got != a {
				t.Errorf("(%v+%v).Sub(%v) = %v, want %v", a, b, b, got, a)
			}
		}
	}
}

func TestU128_Add64Carry(t *testing.T) {
	got := From64(math.MaxUint64).Add64(1)
	want := U128{Hi: 1}
	if got != want {
		t.Errorf("Add64 carry = %v, want %v", got, want)
	}
	if back := got.Sub64(1); back != From64(math.MaxUint64) {
		t.Errorf("Sub64 borrow = %v, want %v", back, From64(math.MaxUint64))
	}
}

func TestU128_Cmp(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got, want := a.Cmp(b), toBig(a).Cmp(toBig(b)); got != want {
				t.Errorf("%v.Cmp(%v) = %d, want %d", a, b, got, want)
			}
			if got, want := a.Less(b), toBig(a).Cmp(toBig(b)) < 0; got != want {
				t.Errorf("%v.Less(%v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestU128_Mul64(t *testing.T) {
	for _, a := range samples[:7] {
		for _, v := range []uint64{0, 1, 2, 3, 255, math.MaxUint32} {
			got := toBig(a.Mul64(v))
			want := new(big.Int).Mul(toBig(a), new(big.Int).SetUint64(v))
			if got.Cmp(want) != 0 {
				t.Errorf("%v.Mul64(%d) = %v, want %v", a, v, got, want)
			}
		}
	}
}

func TestU128_Shifts(t *testing.T) {
	u := U128{Hi: 0x0f, Lo: 0xf000000000000001}
	for _, n := range []uint{0, 1, 4, 63, 64, 65, 100} {
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		want := new(big.Int).Lsh(toBig(u), n)
		want.And(want, mask)
		if got := toBig(u.Lsh(n)); got.Cmp(want) != 0 {
			t.Errorf("Lsh(%d) = %v, want %v", n, got, want)
		}
		if got, want := toBig(u.Rsh(n)), new(big.Int).Rsh(toBig(u), n); got.Cmp(want) != 0 {
			t.Errorf("Rsh(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestU128_QuoRem64(t *testing.T) {
	for _, a := range samples {
		for _, d := range []uint64{1, 2, 3, 4, 7, math.MaxUint64} {
			q, r := a.QuoRem64(d)
			wq, wr := new(big.Int).QuoRem(toBig(a), new(big.Int).SetUint64(d), new(big.Int))
			if toBig(q).Cmp(wq) != 0 || r != wr.Uint64() {
				t.Errorf("%v.QuoRem64(%d) = (%v, %d), want (%v, %v)", a, d, q, r, wq, wr)
			}
		}
	}
}

func TestU128_QuoRem(t *testing.T) {
	for _, a := range samples {
		for _, d := range samples[1:] {
			q, r := a.QuoRem(d)
			wq, wr := new(big.Int).QuoRem(toBig(a), toBig(d), new(big.Int))
			if toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
				t.Errorf("%v.QuoRem(%v) = (%v, %v), want (%v, %v)", a, d, q, r, wq, wr)
			}
		}
	}
}

func TestU128_QuoRemZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("QuoRem(0) did not panic")
		}
	}()
	From64(1).QuoRem(U128{})
}

func TestMulDivMax(t *testing.T) {
	max := new(big.Int).SetUint64(Max)
	tests := []struct{ a, b uint64 }{
		{0, 0},
		{Max, Max},
		{Max, 1},
		{Max / 2, Max / 2},
		{Max / 3, 3},
		{0x0101010101010101, 255},
		{12345678901234567, 98765432109876543},
	}
	for _, tt := range tests {
		want := new(big.Int).Mul(new(big.Int).SetUint64(tt.a), new(big.Int).SetUint64(tt.b))
		want.Quo(want, max)
		if got := MulDivMax(tt.a, tt.b); got != want.Uint64() {
			t.Errorf("MulDivMax(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, want)
		}
	}
}

func TestMulDivMaxRound(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 255, 0},
		{Max, 255, 255},
		{0x0101010101010101 * 128, 255, 128},
		{0x0101010101010101*128 - 1, 255, 128},
		{0x0101010101010101*128 + 1, 255, 128},
		{Max / 2, 255, 127},
		{Max/2 + 1, 255, 128},
	}
	for _, tt := range tests {
		if got := MulDivMaxRound(tt.a, tt.b); got != tt.want {
			t.Errorf("MulDivMaxRound(%#x, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScaleDiv(t *testing.T) {
	max := new(big.Int).SetUint64(Max)
	tests := []struct{ a, d uint64 }{
		{0, 1},
		{1, 1},
		{1, 2},
		{1, 3},
		{Max, Max},
		{Max / 2, Max},
		{7, 9},
	}
	for _, tt := range tests {
		want := new(big.Int).Mul(new(big.Int).SetUint64(tt.a), max)
		want.Quo(want, new(big.Int).SetUint64(tt.d))
		if got := ScaleDiv(tt.a, tt.d); got != want.Uint64() {
			t.Errorf("ScaleDiv(%d, %d) = %#x, want %#x", tt.a, tt.d, got, want)
		}
	}
}

func TestU128_MulDivMax128(t *testing.T) {
	max := new(big.Int).SetUint64(Max)
	dividends := []U128{{}, {Lo: 1}, {Lo: Max}, {Hi: 1}, {Hi: 2, Lo: Max - 2}, {Hi: 1, Lo: 12345}}
	divisors := []U128{{Lo: 1}, {Lo: 3}, {Lo: Max}, {Hi: 1}, {Hi: 2, Lo: Max - 2}, {Hi: 1, Lo: 99}}
	for _, u := range dividends {
		for _, d := range divisors {
			want := new(big.Int).Mul(toBig(u), max)
			want.Quo(want, toBig(d))
			if want.BitLen() > 128 {
				continue
			}
			if got := u.MulDivMax128(d); got != fromBig(t, want) {
				t.Errorf("%v.MulDivMax128(%v) = %v, want %v", u, d, toBig(got), want)
			}
		}
	}
}

func TestAbsDiff(t *testing.T) {
	if got := AbsDiff[uint8](3, 250); got != 247 {
		t.Errorf("AbsDiff(3, 250) = %d, want 247", got)
	}
	if got := AbsDiff[uint64](Max, 0); got != Max {
		t.Errorf("AbsDiff(Max, 0) = %d, want Max", got)
	}
	a, b := U128{Hi: 1}, U128{Lo: 1}
	want := U128{Lo: Max}
	if got := a.AbsDiff128(b); got != want {
		t.Errorf("AbsDiff128 = %v, want %v", got, want)
	}
	if got := b.AbsDiff128(a); got != want {
		t.Errorf("AbsDiff128 reversed = %v, want %v", got, want)
	}
}

func BenchmarkMulDivMax(b *testing.B) {
	x, y := uint64(0x123456789abcdef), uint64(0xfedcba987654321)
	for b.Loop() {
		x = MulDivMax(x|1, y)
	}
	_ = x
}

func BenchmarkMulDivMax128(b *testing.B) {
	u, d := U128{Hi: 1, Lo: 12345}, U128{Hi: 2, Lo: 99}
	for b.Loop() {
		_ = u.MulDivMax128(d)
	}
}
