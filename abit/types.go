// Types for ABI encoding / decoding
//
// Type trees produced by this package describe the shape
// of ABI data per the [ABI Spec]. Value encoding and
// decoding is left to the consumer of the tree.
//
// [ABI Spec]: https://docs.soliditylang.org/en/latest/abi-spec.html
package abit

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Type].
type Kind byte

const (
	KindUint       Kind = 'u'
	KindInt        Kind = 'i'
	KindAddress    Kind = 'a'
	KindBool       Kind = 'b'
	KindFixedBytes Kind = 'f'
	KindBytes      Kind = 'd'
	KindString     Kind = 's'
	KindArray      Kind = 'l'
	KindTuple      Kind = 't'
)

// Type is one node in an ABI type tree. A Type is
// immutable once constructed. Build one with [Resolve]
// or with the constructors in this package.
type Type struct {
	Kind Kind

	// bit width for uint/int, byte width for bytes<M>
	Size int

	// array. Length is 0 for dynamic sized arrays.
	Length int
	Elem   *Type

	// tuple
	Fields []Field
}

// Field is a named tuple member. Duplicate and empty
// names are legal. Order is significant.
type Field struct {
	Name string
	Type Type
}

var (
	Address = Type{Kind: KindAddress}
	Bool    = Type{Kind: KindBool}
	Bytes   = Type{Kind: KindBytes}
	String  = Type{Kind: KindString}
)

// Uint returns a uint<bits> type. Legal widths are
// multiples of 8 in [8, 256]. [Resolve] enforces the
// range, Uint does not.
func Uint(bits int) Type {
	return Type{Kind: KindUint, Size: bits}
}

// Int returns an int<bits> type. Same width rules as [Uint].
func Int(bits int) Type {
	return Type{Kind: KindInt, Size: bits}
}

// BytesK returns a bytes<n> type for n in [1, 32].
func BytesK(n int) Type {
	return Type{Kind: KindFixedBytes, Size: n}
}

// Array returns a dynamic sized array of e.
func Array(e Type) Type {
	return Type{Kind: KindArray, Elem: &e}
}

// ArrayK returns a fixed size array of k elements of e.
func ArrayK(k int, e Type) Type {
	return Type{Kind: KindArray, Elem: &e, Length: k}
}

// Tuple returns a tuple of fields. Field order is
// preserved and determines the encoding layout.
func Tuple(fields ...Field) Type {
	return Type{Kind: KindTuple, Fields: fields}
}

// Dynamic reports whether the encoded size of t depends
// on the encoded value. Bytes, string, and dynamic sized
// arrays are dynamic. Fixed size arrays and tuples are
// dynamic when any element or field is.
func (t Type) Dynamic() bool {
	switch t.Kind {
	case KindBytes, KindString:
		return true
	case KindArray:
		return t.Length == 0 || t.Elem.Dynamic()
	case KindTuple:
		for i := range t.Fields {
			if t.Fields[i].Type.Dynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Signature returns the canonical description of t.
// Tuples render field types only. For example:
//
//	tuple(uint8, address) becomes (uint8,address)
//	tuple(uint8, address)[] becomes (uint8,address)[]
//
// Signature is the inverse of [Resolve]: resolving the
// returned string yields a type equal to t.
func (t Type) Signature() string {
	switch t.Kind {
	case KindUint:
		return "uint" + strconv.Itoa(t.Size)
	case KindInt:
		return "int" + strconv.Itoa(t.Size)
	case KindAddress:
		return "address"
	case KindBool:
		return "bool"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		if t.Length == 0 {
			return t.Elem.Signature() + "[]"
		}
		return t.Elem.Signature() + "[" + strconv.Itoa(t.Length) + "]"
	case KindTuple:
		var s strings.Builder
		s.WriteString("(")
		for i := range t.Fields {
			s.WriteString(t.Fields[i].Type.Signature())
			if i+1 < len(t.Fields) {
				s.WriteString(",")
			}
		}
		s.WriteString(")")
		return s.String()
	default:
		return ""
	}
}

// Equal reports structural equality of two type trees.
// Tuple field names are carried metadata and do not
// participate. Compare Fields directly for a
// name-sensitive comparison.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Size != other.Size || t.Length != other.Length {
		return false
	}
	if (t.Elem == nil) != (other.Elem == nil) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*other.Elem) {
		return false
	}
	if len(t.Fields) != len(other.Fields) {
		return false
	}
	for i := range t.Fields {
		if !t.Fields[i].Type.Equal(other.Fields[i].Type) {
			return false
		}
	}
	return true
}
