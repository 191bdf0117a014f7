package zvariant

// Char is a single Unicode scalar value. It is a defined type rather
// than an alias of rune so the registry can tell it apart from int32 at
// compile time: a Char rides on the string descriptor ("s"), an int32
// on its own ("i").
type Char rune

// Basic is the closed set of native types with a primitive wire
// signature. Go collapses the format's string-by-reference and
// string-by-value into the single string type.
type Basic interface {
	uint8 | int8 | bool | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 | string | Char
}

// BasicKey constrains dictionary key types: Basic plus native equality.
type BasicKey interface {
	Basic
	comparable
}

// basicDesc is a wire descriptor: one-character tag, full signature,
// and required byte alignment. For primitives the signature is always
// the tag as a one-character string.
type basicDesc struct {
	tag   byte
	sig   Signature
	align int
}

var (
	descU8   = basicDesc{'y', "y", 1}
	descBool = basicDesc{'b', "b", 4}
	descI16  = basicDesc{'n', "n", 2}
	descU16  = basicDesc{'q', "q", 2}
	descI32  = basicDesc{'i', "i", 4}
	descU32  = basicDesc{'u', "u", 4}
	descI64  = basicDesc{'x', "x", 8}
	descU64  = basicDesc{'t', "t", 8}
	descF64  = basicDesc{'d', "d", 8}
	descStr  = basicDesc{'s', "s", 4}
)

// descFor returns the wire descriptor for T. The three types absent
// from the format's primitive set forward to the descriptor of a
// compatible present type rather than duplicating its constants: int8
// rides as i16, float32 as f64, Char as string. Two distinct native
// types can therefore report the same signature.
func descFor[T Basic]() basicDesc {
	var z T
	switch any(z).(type) {
	case uint8:
		return descU8
	case int8:
		return descI16
	case bool:
		return descBool
	case int16:
		return descI16
	case uint16:
		return descU16
	case int32:
		return descI32
	case uint32:
		return descU32
	case int64:
		return descI64
	case uint64:
		return descU64
	case float32:
		return descF64
	case float64:
		return descF64
	case string:
		return descStr
	case Char:
		return descStr
	default:
		// The Basic union is closed; no other type instantiates T.
		panic("zvariant: unreachable basic type")
	}
}

// TagFor returns the one-character wire tag of native type T.
func TagFor[T Basic]() byte { return descFor[T]().tag }

// SignatureFor returns the full wire signature of native type T,
// constructed from the trusted descriptor constant without validation.
func SignatureFor[T Basic]() Signature { return descFor[T]().sig }

// AlignmentFor returns the byte alignment required by native type T's
// encoded form. Always one of 1, 2, 4, 8.
func AlignmentFor[T Basic]() int { return descFor[T]().align }
