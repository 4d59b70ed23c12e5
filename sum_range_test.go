package hcv

import "testing"

func TestSumRangeCompareSum(t *testing.T) {
	r, ok := HueRed.SumRangeForChromaProp(PropFromFloat64(0.5))
	if !ok {
		t.Fatal("no sum range for chroma 0.5")
	}
	tests := []struct {
		sum  float64
		want SumOrdering
	}{
		{0.25, SumTooSmall},
		{0.6, SumShade},
		{0.75, SumShade},
		{1, SumNeither},
		{1.5, SumTint},
		{1.9, SumTint},
		{2.5, SumTooBig},
	}
	for _, tt := range tests {
		got := r.CompareSum(SumFromFloat64(tt.sum))
		if got != tt.want {
			t.Errorf("CompareSum(%v) = %v, want %v", tt.sum, got, tt.want)
		}
		if got.IsFailure() == r.Contains(SumFromFloat64(tt.sum)) {
			t.Errorf("Contains(%v) disagrees with %v", tt.sum, got)
		}
	}
	if r.IsDegenerate() {
		t.Errorf("%v is degenerate", r)
	}
}

func TestSumRangeNeitherBand(t *testing.T) {
	r, _ := HueRed.SumRangeForChromaProp(PropFromFloat64(0.5))
	if got := r.CompareSum(SumOne.AddProp(1)); got != SumNeither {
		t.Errorf("one unit above crossover = %v, want neither", got)
	}
	if got := r.CompareSum(SumOne.AddProp(2)); got != SumTint {
		t.Errorf("two units above crossover = %v, want tint", got)
	}
	if got := r.CompareSum(SumOne.SubProp(2)); got != SumShade {
		t.Errorf("two units below crossover = %v, want shade", got)
	}
}

func TestSumRangeDegenerate(t *testing.T) {
	for _, hue := range []Hue{HueRed, HueCyan, NewSextantHue(GreenCyan, PropFromFloat64(0.3))} {
		r, ok := hue.SumRangeForChromaProp(PropOne)
		if !ok || !r.IsDegenerate() {
			t.Errorf("%v: range for full chroma = %v, %v, want degenerate", hue, r, ok)
		}
		if r.Crossover != hue.SumForMaxChroma() {
			t.Errorf("%v: crossover %v, want %v", hue, r.Crossover, hue.SumForMaxChroma())
		}
		if got := r.CompareSum(SumThree); got != SumTooBig {
			t.Errorf("%v: CompareSum(3) = %v, want too-big", hue, got)
		}
	}
}

func TestSumOrderingString(t *testing.T) {
	want := []string{"too-small", "shade", "neither", "tint", "too-big"}
	for i, w := range want {
		if got := SumOrdering(i).String(); got != w {
			t.Errorf("SumOrdering(%d) = %q, want %q", i, got, w)
		}
	}
}
