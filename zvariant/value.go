package zvariant

import "unicode/utf8"

// Kind identifies which member of the Value union is held.
type Kind uint8

const (
	KindU8 Kind = iota
	KindBool
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindF64
	KindStr
	KindVariant
	KindDict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindBool:
		return "bool"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindF64:
		return "f64"
	case KindStr:
		return "string"
	case KindVariant:
		return "variant"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed variant value: a closed tagged union
// over the basic wire types, a boxed variant, and a dictionary. The
// zero Value is u8(0).
type Value struct {
	kind Kind

	// Scalar storage (only one valid based on kind)
	boolVal  bool
	intVal   int64   // i16, i32, i64
	uintVal  uint64  // u8, u16, u32, u64
	floatVal float64 // f64

	strVal   string
	strBytes []byte // set instead of strVal when borrowing caller bytes

	variantVal *Value
	dictVal    *Dict
}

// ============================================================
// Constructors
// ============================================================

// U8 creates a u8 value.
func U8(v uint8) Value { return Value{kind: KindU8, uintVal: uint64(v)} }

// Bool creates a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// I16 creates an i16 value.
func I16(v int16) Value { return Value{kind: KindI16, intVal: int64(v)} }

// U16 creates a u16 value.
func U16(v uint16) Value { return Value{kind: KindU16, uintVal: uint64(v)} }

// I32 creates an i32 value.
func I32(v int32) Value { return Value{kind: KindI32, intVal: int64(v)} }

// U32 creates a u32 value.
func U32(v uint32) Value { return Value{kind: KindU32, uintVal: uint64(v)} }

// I64 creates an i64 value.
func I64(v int64) Value { return Value{kind: KindI64, intVal: v} }

// U64 creates a u64 value.
func U64(v uint64) Value { return Value{kind: KindU64, uintVal: v} }

// F64 creates an f64 value.
func F64(v float64) Value { return Value{kind: KindF64, floatVal: v} }

// Str creates a string value owning its data.
func Str(v string) Value { return Value{kind: KindStr, strVal: v} }

// StrBytes creates a string value that borrows b without copying. The
// value observes later mutations of b and must not outlive it; Clone
// detaches the borrow.
func StrBytes(b []byte) Value { return Value{kind: KindStr, strBytes: b} }

// I8 creates a value for an int8, widened to i16 per the aliasing
// convention (the wire format has no i8).
func I8(v int8) Value { return I16(int16(v)) }

// F32 creates a value for a float32, widened to f64 per the aliasing
// convention (the wire format has no f32).
func F32(v float32) Value { return F64(float64(v)) }

// CharVal creates a value for a single Unicode scalar, stored as a
// string per the aliasing convention.
func CharVal(c Char) Value { return Str(string(rune(c))) }

// Variant creates a boxed variant value wrapping v.
func Variant(v Value) Value {
	inner := v
	return Value{kind: KindVariant, variantVal: &inner}
}

// DictVal creates a value holding d. The value shares d, not a copy.
func DictVal(d *Dict) Value { return Value{kind: KindDict, dictVal: d} }

// New lifts a natively typed basic value into the dynamic
// representation. Aliased types widen on the way in: int8 to i16,
// float32 to f64, Char to string.
func New[T Basic](v T) Value {
	switch x := any(v).(type) {
	case uint8:
		return U8(x)
	case int8:
		return I8(x)
	case bool:
		return Bool(x)
	case int16:
		return I16(x)
	case uint16:
		return U16(x)
	case int32:
		return I32(x)
	case uint32:
		return U32(x)
	case int64:
		return I64(x)
	case uint64:
		return U64(x)
	case float32:
		return F32(x)
	case float64:
		return F64(x)
	case string:
		return Str(x)
	case Char:
		return CharVal(x)
	default:
		panic("zvariant: unreachable basic type")
	}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns which union member the value holds.
func (v Value) Kind() Kind { return v.kind }

// Signature returns the value's own wire signature.
func (v Value) Signature() Signature {
	switch v.kind {
	case KindU8:
		return descU8.sig
	case KindBool:
		return descBool.sig
	case KindI16:
		return descI16.sig
	case KindU16:
		return descU16.sig
	case KindI32:
		return descI32.sig
	case KindU32:
		return descU32.sig
	case KindI64:
		return descI64.sig
	case KindU64:
		return descU64.sig
	case KindF64:
		return descF64.sig
	case KindStr:
		return descStr.sig
	case KindVariant:
		return "v"
	case KindDict:
		return v.dictVal.Signature()
	default:
		return ""
	}
}

// str returns the string payload regardless of borrowed/owned storage.
func (v Value) str() string {
	if v.strBytes != nil {
		return string(v.strBytes)
	}
	return v.strVal
}

// AsU8 returns the u8 payload.
func (v Value) AsU8() (uint8, error) {
	if v.kind != KindU8 {
		return 0, incorrectType(descU8.sig, v.Signature())
	}
	return uint8(v.uintVal), nil
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, incorrectType(descBool.sig, v.Signature())
	}
	return v.boolVal, nil
}

// AsI16 returns the i16 payload.
func (v Value) AsI16() (int16, error) {
	if v.kind != KindI16 {
		return 0, incorrectType(descI16.sig, v.Signature())
	}
	return int16(v.intVal), nil
}

// AsU16 returns the u16 payload.
func (v Value) AsU16() (uint16, error) {
	if v.kind != KindU16 {
		return 0, incorrectType(descU16.sig, v.Signature())
	}
	return uint16(v.uintVal), nil
}

// AsI32 returns the i32 payload.
func (v Value) AsI32() (int32, error) {
	if v.kind != KindI32 {
		return 0, incorrectType(descI32.sig, v.Signature())
	}
	return int32(v.intVal), nil
}

// AsU32 returns the u32 payload.
func (v Value) AsU32() (uint32, error) {
	if v.kind != KindU32 {
		return 0, incorrectType(descU32.sig, v.Signature())
	}
	return uint32(v.uintVal), nil
}

// AsI64 returns the i64 payload.
func (v Value) AsI64() (int64, error) {
	if v.kind != KindI64 {
		return 0, incorrectType(descI64.sig, v.Signature())
	}
	return v.intVal, nil
}

// AsU64 returns the u64 payload.
func (v Value) AsU64() (uint64, error) {
	if v.kind != KindU64 {
		return 0, incorrectType(descU64.sig, v.Signature())
	}
	return v.uintVal, nil
}

// AsF64 returns the f64 payload.
func (v Value) AsF64() (float64, error) {
	if v.kind != KindF64 {
		return 0, incorrectType(descF64.sig, v.Signature())
	}
	return v.floatVal, nil
}

// AsStr returns the string payload.
func (v Value) AsStr() (string, error) {
	if v.kind != KindStr {
		return "", incorrectType(descStr.sig, v.Signature())
	}
	return v.str(), nil
}

// AsVariant returns the boxed value.
func (v Value) AsVariant() (Value, error) {
	if v.kind != KindVariant {
		return Value{}, incorrectType("v", v.Signature())
	}
	return *v.variantVal, nil
}

// AsDict returns the held dictionary.
func (v Value) AsDict() (*Dict, error) {
	if v.kind != KindDict {
		return nil, incorrectType("a{?*}", v.Signature())
	}
	return v.dictVal, nil
}

// ============================================================
// Typed extraction
// ============================================================

// downcast attempts to view v as native type T, reversing the widening
// performed on wrap: int8 takes the low bits of the stored i16, float32
// rounds the stored f64, Char requires the stored string to be exactly
// one Unicode scalar.
func downcast[T Basic](v Value) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		if v.kind != KindU8 {
			return out, false
		}
		*p = uint8(v.uintVal)
	case *int8:
		if v.kind != KindI16 {
			return out, false
		}
		*p = int8(v.intVal)
	case *bool:
		if v.kind != KindBool {
			return out, false
		}
		*p = v.boolVal
	case *int16:
		if v.kind != KindI16 {
			return out, false
		}
		*p = int16(v.intVal)
	case *uint16:
		if v.kind != KindU16 {
			return out, false
		}
		*p = uint16(v.uintVal)
	case *int32:
		if v.kind != KindI32 {
			return out, false
		}
		*p = int32(v.intVal)
	case *uint32:
		if v.kind != KindU32 {
			return out, false
		}
		*p = uint32(v.uintVal)
	case *int64:
		if v.kind != KindI64 {
			return out, false
		}
		*p = v.intVal
	case *uint64:
		if v.kind != KindU64 {
			return out, false
		}
		*p = v.uintVal
	case *float32:
		if v.kind != KindF64 {
			return out, false
		}
		*p = float32(v.floatVal)
	case *float64:
		if v.kind != KindF64 {
			return out, false
		}
		*p = v.floatVal
	case *string:
		if v.kind != KindStr {
			return out, false
		}
		*p = v.str()
	case *Char:
		if v.kind != KindStr {
			return out, false
		}
		s := v.str()
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
			return out, false
		}
		*p = Char(r)
	}
	return out, true
}

// Extract converts the dynamic value into native type T, failing with
// ErrIncorrectType when the value holds something else.
func Extract[T Basic](v Value) (T, error) {
	out, ok := downcast[T](v)
	if !ok {
		return out, incorrectType(SignatureFor[T](), v.Signature())
	}
	return out, nil
}

// ============================================================
// Copying and equality
// ============================================================

// Clone returns a fully independent copy: borrowed string bytes are
// copied into owned storage and nested variants/dictionaries are cloned
// recursively.
func (v Value) Clone() Value {
	c := v
	if v.strBytes != nil {
		c.strBytes = nil
		c.strVal = string(v.strBytes)
	}
	if v.variantVal != nil {
		inner := v.variantVal.Clone()
		c.variantVal = &inner
	}
	if v.dictVal != nil {
		c.dictVal = v.dictVal.Clone()
	}
	return c
}

// Equal reports structural equality. Borrowed and owned strings with
// the same contents compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == o.boolVal
	case KindU8, KindU16, KindU32, KindU64:
		return v.uintVal == o.uintVal
	case KindI16, KindI32, KindI64:
		return v.intVal == o.intVal
	case KindF64:
		return v.floatVal == o.floatVal
	case KindStr:
		return v.str() == o.str()
	case KindVariant:
		return v.variantVal.Equal(*o.variantVal)
	case KindDict:
		return v.dictVal.Equal(o.dictVal)
	default:
		return false
	}
}
