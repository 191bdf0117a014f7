// Package zvariant implements the typed-value layer of zbus, a
// D-Bus/GVariant style self-describing binary serialization format.
//
// Every value carries a compact textual signature describing its wire
// shape, and every supported native type can state its signature at
// compile time:
//
//   - Signature: "s", "u", "a{sv}", ...
//   - Registry: TagFor / SignatureFor / AlignmentFor over the closed
//     Basic type set
//   - Value: a closed tagged union holding any basic value, a boxed
//     variant, or a dictionary
//   - Dict: an insertion-ordered dictionary whose entries are checked
//     against a fixed key/value signature pair
//
// # Aliased Types
//
// Three native types have no wire representation of their own and ride
// on a compatible type's descriptor: int8 as i16 ("n"), float32 as f64
// ("d"), Char as string ("s"). Two distinct native types can therefore
// be wire-indistinguishable; this is a convention of the format, not a
// bug.
//
// # Borrowed Data
//
// StrBytes builds a string value over a caller-supplied byte slice
// without copying. Such a value must not outlive the slice it views;
// Clone produces a fully detached copy when it has to.
//
// # What This Package Does Not Do
//
// Byte-level encoding and decoding (alignment padding, endianness,
// length prefixes) belong to the wire codec, which consumes the
// signatures, alignments and ordered record views this package
// exposes.
package zvariant
