package hcv

import "testing"

func TestChromaFor(t *testing.T) {
	half := PropFromFloat64(0.5)
	tests := []struct {
		name string
		p    Prop
		hue  Hue
		sum  Sum
		want Chroma
	}{
		{"zero", PropZero, HueRed, SumOne, ChromaZero},
		{"one", PropOne, HueCyan, SumOne, ChromaOne},
		{"primary shade", half, HueRed, SumFromFloat64(0.75), ShadeChroma(half)},
		{"primary crossover is tint", half, HueRed, SumOne, TintChroma(half)},
		{"primary tint", half, HueGreen, SumFromFloat64(1.5), TintChroma(half)},
		{"secondary shade", half, HueYellow, SumFromFloat64(1.5), ShadeChroma(half)},
		{"secondary crossover is tint", half, HueMagenta, SumTwo, TintChroma(half)},
		{"sextant shade", half, NewSextantHue(RedYellow, half), SumFromFloat64(1.25), ShadeChroma(half)},
		{"sextant tint", half, NewSextantHue(RedYellow, half), SumFromFloat64(1.75), TintChroma(half)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChromaFor(tt.p, tt.hue, tt.sum); got != tt.want {
				t.Errorf("ChromaFor(%v, %v, %v) = %v, want %v", tt.p, tt.hue, tt.sum, got, tt.want)
			}
		})
	}
}

func TestChromaSides(t *testing.T) {
	p := PropFromFloat64(0.3)
	shade, tint := ShadeChroma(p), TintChroma(p)
	if !shade.IsShade() || shade.IsTint() || shade.Side() != Shade {
		t.Errorf("%v side = %v", shade, shade.Side())
	}
	if !tint.IsTint() || tint.IsShade() || tint.Side() != Tint {
		t.Errorf("%v side = %v", tint, tint.Side())
	}
	if shade == tint {
		t.Error("Shade(p) == Tint(p)")
	}
	if shade.ApproxEqual(tint, 1<<63) {
		t.Error("ApproxEqual conflates Shade and Tint")
	}
	if !shade.SameMagnitude(tint, 0) {
		t.Error("SameMagnitude ignores magnitude equality across sides")
	}
	if !shade.ApproxEqual(ShadeChroma(p+0x10), DefaultMaxDiff) {
		t.Error("ApproxEqual rejects a difference within the allowance")
	}
	if shade.Prop() != p {
		t.Errorf("Prop() = %v, want %v", shade.Prop(), p)
	}
}

func TestChromaZeroOne(t *testing.T) {
	if !ChromaZero.IsZero() || !ChromaZero.IsShade() {
		t.Errorf("ChromaZero = %v", ChromaZero)
	}
	if !TintChroma(PropZero).IsZero() {
		t.Error("Tint(0).IsZero() = false")
	}
	if ChromaOne.Prop() != PropOne || !ChromaOne.IsTint() {
		t.Errorf("ChromaOne = %v", ChromaOne)
	}
}

func TestChromaString(t *testing.T) {
	tests := []struct {
		c    Chroma
		want string
	}{
		{ShadeChroma(PropFromFloat64(0.5)), "Shade(0.500000)"},
		{TintChroma(PropFromFloat64(0.25)), "Tint(0.250000)"},
		{ChromaOne, "Tint(1.000000)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if Shade.String() != "shade" || Tint.String() != "tint" {
		t.Errorf("ChromaSide strings = %q, %q", Shade, Tint)
	}
}
