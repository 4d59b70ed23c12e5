package hcv

// LightLevel is the set of types an RGB component can be stored as.
//
// Floating point levels are in [0, 1]. Unsigned integer levels use the full
// range of their type, so 255 is full intensity for uint8. A uint64 level is
// the raw fixed-point value and converts to and from Prop without loss.
type LightLevel interface {
	float32 | float64 | uint8 | uint16 | uint32 | uint64 | Prop
}

// LevelToProp converts a light level to a Prop.
func LevelToProp[T LightLevel](v T) Prop {
	switch x := any(v).(type) {
	case Prop:
		return x
	case uint64:
		return Prop(x)
	case uint32:
		return PropFromUint32(x)
	case uint16:
		return PropFromUint16(x)
	case uint8:
		return PropFromUint8(x)
	case float64:
		return PropFromFloat64(x)
	case float32:
		return PropFromFloat32(x)
	}
	panic("hcv: unsupported light level type")
}

// PropToLevel converts a Prop to a light level of type T.
func PropToLevel[T LightLevel](p Prop) T {
	var zero T
	switch any(zero).(type) {
	case Prop, uint64:
		return T(p)
	case uint32:
		return T(p.Uint32())
	case uint16:
		return T(p.Uint16())
	case uint8:
		return T(p.Uint8())
	case float64:
		return T(p.Float64())
	case float32:
		return T(p.Float32())
	}
	panic("hcv: unsupported light level type")
}
