package hcv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gogpu/hcv/internal/wide"
)

// Prop, Sum, Chroma, Hue and HCV serialise field by field. The fixed-point
// values are written as their raw integers, in hexadecimal for text formats,
// so a round trip is exact.

var (
	_ msgpack.CustomEncoder = Prop(0)
	_ msgpack.CustomDecoder = (*Prop)(nil)
	_ msgpack.CustomEncoder = Sum{}
	_ msgpack.CustomDecoder = (*Sum)(nil)
	_ msgpack.CustomEncoder = Chroma{}
	_ msgpack.CustomDecoder = (*Chroma)(nil)
	_ msgpack.CustomEncoder = Hue{}
	_ msgpack.CustomDecoder = (*Hue)(nil)
	_ msgpack.CustomEncoder = HCV{}
	_ msgpack.CustomDecoder = (*HCV)(nil)

	_ json.Marshaler   = Chroma{}
	_ json.Unmarshaler = (*Chroma)(nil)
	_ json.Marshaler   = Hue{}
	_ json.Unmarshaler = (*Hue)(nil)
	_ json.Marshaler   = HCV{}
	_ json.Unmarshaler = (*HCV)(nil)
)

// MarshalText formats p as a hexadecimal integer.
func (p Prop) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%#x", uint64(p))), nil
}

// UnmarshalText accepts the MarshalText form or a decimal fraction in [0, 1].
func (p *Prop) UnmarshalText(text []byte) error {
	s := string(text)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return &DecodeError{Type: "Prop", Value: s, Err: err}
		}
		*p = Prop(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &DecodeError{Type: "Prop", Value: s, Err: err}
	}
	if f < 0 || f > 1 {
		return &DecodeError{Type: "Prop", Value: s}
	}
	*p = PropFromFloat64(f)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (p Prop) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(p))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (p *Prop) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	*p = Prop(v)
	return nil
}

// MarshalText formats s as a hexadecimal integer.
func (s Sum) MarshalText() ([]byte, error) {
	if s.v.Hi == 0 {
		return []byte(fmt.Sprintf("%#x", s.v.Lo)), nil
	}
	return []byte(fmt.Sprintf("%#x%016x", s.v.Hi, s.v.Lo)), nil
}

// UnmarshalText accepts the MarshalText form or a decimal number in [0, 3].
func (s *Sum) UnmarshalText(text []byte) error {
	str := string(text)
	var v Sum
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		digits := str[2:]
		if len(digits) == 0 || len(digits) > 32 {
			return &DecodeError{Type: "Sum", Value: str}
		}
		split := max(len(digits)-16, 0)
		var hi uint64
		if split > 0 {
			var err error
			if hi, err = strconv.ParseUint(digits[:split], 16, 64); err != nil {
				return &DecodeError{Type: "Sum", Value: str, Err: err}
			}
		}
		lo, err := strconv.ParseUint(digits[split:], 16, 64)
		if err != nil {
			return &DecodeError{Type: "Sum", Value: str, Err: err}
		}
		v = Sum{wide.U128{Hi: hi, Lo: lo}}
	} else {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return &DecodeError{Type: "Sum", Value: str, Err: err}
		}
		if f < 0 || f > 3 {
			return &DecodeError{Type: "Sum", Value: str}
		}
		v = SumFromFloat64(f)
	}
	if !v.IsValid() {
		return &DecodeError{Type: "Sum", Value: str}
	}
	*s = v
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Sum) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint(s.v.Hi); err != nil {
		return err
	}
	return enc.EncodeUint(s.v.Lo)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (s *Sum) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, "Sum", 2); err != nil {
		return err
	}
	hi, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	lo, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	v := Sum{wide.U128{Hi: hi, Lo: lo}}
	if !v.IsValid() {
		return &DecodeError{Type: "Sum", Value: v.String()}
	}
	*s = v
	return nil
}

func decodeArrayLen(dec *msgpack.Decoder, typ string, want int) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != want {
		return &DecodeError{Type: typ, Value: fmt.Sprintf("array of %d", n)}
	}
	return nil
}

type chromaJSON struct {
	Side string `json:"side"`
	Prop Prop   `json:"prop"`
}

func parseChromaSide(s string) (ChromaSide, bool) {
	switch s {
	case "shade":
		return Shade, true
	case "tint":
		return Tint, true
	}
	return 0, false
}

// MarshalJSON implements json.Marshaler.
func (c Chroma) MarshalJSON() ([]byte, error) {
	return json.Marshal(chromaJSON{Side: c.side.String(), Prop: c.prop})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Chroma) UnmarshalJSON(data []byte) error {
	var v chromaJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	side, ok := parseChromaSide(v.Side)
	if !ok {
		return &DecodeError{Type: "Chroma", Value: v.Side}
	}
	*c = Chroma{side, v.Prop}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (c Chroma) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(c.side)); err != nil {
		return err
	}
	return enc.EncodeUint(uint64(c.prop))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (c *Chroma) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, "Chroma", 2); err != nil {
		return err
	}
	side, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	if ChromaSide(side) != Shade && ChromaSide(side) != Tint {
		return &DecodeError{Type: "Chroma", Value: strconv.Itoa(int(side))}
	}
	p, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	*c = Chroma{ChromaSide(side), Prop(p)}
	return nil
}

type hueJSON struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Second *Prop  `json:"second,omitempty"`
}

var hueKindNames = [...]string{
	primaryHue:   "primary",
	secondaryHue: "secondary",
	sextantHue:   "sextant",
}

func (h Hue) toJSON() hueJSON {
	v := hueJSON{Kind: hueKindNames[h.kind]}
	switch h.kind {
	case primaryHue:
		v.Name = h.rgb.String()
	case secondaryHue:
		v.Name = h.cmy.String()
	default:
		v.Name = h.sx.sextant.String()
		second := h.sx.second
		v.Second = &second
	}
	return v
}

func hueFromJSON(v hueJSON) (Hue, error) {
	bad := &DecodeError{Type: "Hue", Value: v.Kind + " " + v.Name}
	switch v.Kind {
	case "primary":
		for _, h := range PrimaryHues() {
			if h.rgb.String() == v.Name {
				return h, nil
			}
		}
	case "secondary":
		for _, h := range SecondaryHues() {
			if h.cmy.String() == v.Name {
				return h, nil
			}
		}
	case "sextant":
		s, ok := ParseSextant(v.Name)
		if !ok || v.Second == nil {
			return Hue{}, bad
		}
		return NewSextantHue(s, *v.Second), nil
	}
	return Hue{}, bad
}

// MarshalJSON implements json.Marshaler.
func (h Hue) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.toJSON())
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hue) UnmarshalJSON(data []byte) error {
	var v hueJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	hue, err := hueFromJSON(v)
	if err != nil {
		return err
	}
	*h = hue
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. A hue is written as
// [kind, variant, second]; second is zero for primaries and secondaries.
func (h Hue) EncodeMsgpack(enc *msgpack.Encoder) error {
	var variant uint8
	var second Prop
	switch h.kind {
	case primaryHue:
		variant = uint8(h.rgb)
	case secondaryHue:
		variant = uint8(h.cmy)
	default:
		variant, second = uint8(h.sx.sextant), h.sx.second
	}
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(h.kind)); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(variant)); err != nil {
		return err
	}
	return enc.EncodeUint(uint64(second))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (h *Hue) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, "Hue", 3); err != nil {
		return err
	}
	kind, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	variant, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	second, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	bad := &DecodeError{Type: "Hue", Value: fmt.Sprintf("[%d %d %#x]", kind, variant, second)}
	switch hueKind(kind) {
	case primaryHue:
		if variant > uint8(PrimaryBlue) {
			return bad
		}
		*h = PrimaryHue(RGBHue(variant))
	case secondaryHue:
		if variant > uint8(SecondaryYellow) {
			return bad
		}
		*h = SecondaryHue(CMYHue(variant))
	case sextantHue:
		if variant > uint8(BlueMagenta) {
			return bad
		}
		*h = NewSextantHue(Sextant(variant), Prop(second))
	default:
		return bad
	}
	return nil
}

type hcvJSON struct {
	Hue    *Hue   `json:"hue,omitempty"`
	Chroma Chroma `json:"chroma"`
	Sum    Sum    `json:"sum"`
}

func hcvFromParts(hue *Hue, chroma Chroma, sum Sum) (HCV, error) {
	if hue == nil {
		if !chroma.IsZero() {
			return HCV{}, &DecodeError{Type: "HCV", Value: chroma.String(), Err: ErrAchromatic}
		}
		return GreyHCV(sum), nil
	}
	c, err := NewHCV(*hue, chroma, sum)
	if err != nil {
		return HCV{}, &DecodeError{Type: "HCV", Value: fmt.Sprintf("%v %v %v", *hue, chroma, sum), Err: err}
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler. Greys have no "hue" member.
func (c HCV) MarshalJSON() ([]byte, error) {
	v := hcvJSON{Chroma: c.chroma, Sum: c.sum}
	if !c.grey {
		hue := c.hue
		v.Hue = &hue
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler. The colour is rebuilt with
// NewHCV, so an infeasible combination is rejected.
func (c *HCV) UnmarshalJSON(data []byte) error {
	var v hcvJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	out, err := hcvFromParts(v.Hue, v.Chroma, v.Sum)
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. An HCV is written as
// [grey, hue, chroma, sum].
func (c HCV) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	if err := enc.EncodeBool(c.grey); err != nil {
		return err
	}
	if err := c.hue.EncodeMsgpack(enc); err != nil {
		return err
	}
	if err := c.chroma.EncodeMsgpack(enc); err != nil {
		return err
	}
	return c.sum.EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (c *HCV) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, "HCV", 4); err != nil {
		return err
	}
	grey, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	var hue Hue
	if err := hue.DecodeMsgpack(dec); err != nil {
		return err
	}
	var chroma Chroma
	if err := chroma.DecodeMsgpack(dec); err != nil {
		return err
	}
	var sum Sum
	if err := sum.DecodeMsgpack(dec); err != nil {
		return err
	}
	huePtr := &hue
	if grey {
		huePtr = nil
	}
	out, err := hcvFromParts(huePtr, chroma, sum)
	if err != nil {
		return err
	}
	*c = out
	return nil
}
