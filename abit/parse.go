package abit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Resolve errors. Wrapped errors carry the offending
// input; match the kind with [errors.Is].
var (
	ErrUnknownType   = errors.New("unknown base type")
	ErrInvalidWidth  = errors.New("invalid width")
	ErrNoComponents  = errors.New("tuple type requires components")
	ErrComponents    = errors.New("components given for non-tuple type")
	ErrArraySuffix   = errors.New("malformed array suffix")
	ErrTrailingInput = errors.New("trailing characters after type")
	ErrComponent     = errors.New("unable to resolve component")
)

// Resolve parses an ABI type description into a [Type].
// fields supplies the tuple components when desc's base
// type is tuple and must be empty otherwise; [Param.Resolve]
// builds fields from a JSON descriptor.
//
// Array suffixes wrap the base type innermost first, so
// uint8[2][3] is 3 elements of uint8[2].
//
// Resolve accepts exactly the canonical grammar. Any
// violation fails the whole parse; no partial type is
// returned.
func Resolve(desc string, fields ...Field) (Type, error) {
	base, rest := desc, ""
	if i := strings.IndexByte(desc, '['); i >= 0 {
		base, rest = desc[:i], desc[i:]
	}
	t, err := resolveBase(base, fields)
	if err != nil {
		return Type{}, err
	}
	return resolveSuffix(t, rest)
}

func resolveBase(base string, fields []Field) (Type, error) {
	if base == "tuple" {
		if len(fields) == 0 {
			return Type{}, ErrNoComponents
		}
		return Tuple(fields...), nil
	}
	if len(fields) > 0 {
		return Type{}, fmt.Errorf("%w: %q", ErrComponents, base)
	}
	switch base {
	case "address":
		return Address, nil
	case "bool":
		return Bool, nil
	case "bytes":
		return Bytes, nil
	case "string":
		return String, nil
	}
	switch {
	case strings.HasPrefix(base, "uint"):
		n, err := bitWidth(base, base[4:])
		if err != nil {
			return Type{}, err
		}
		return Uint(n), nil
	case strings.HasPrefix(base, "int"):
		n, err := bitWidth(base, base[3:])
		if err != nil {
			return Type{}, err
		}
		return Int(n), nil
	case strings.HasPrefix(base, "bytes"):
		n, err := number(base, base[5:])
		if err != nil {
			return Type{}, err
		}
		if n < 1 || n > 32 {
			return Type{}, fmt.Errorf("%w: %q", ErrInvalidWidth, base)
		}
		return BytesK(n), nil
	default:
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownType, base)
	}
}

func resolveSuffix(t Type, s string) (Type, error) {
	for len(s) > 0 {
		if s[0] != '[' {
			return Type{}, fmt.Errorf("%w: %q", ErrTrailingInput, s)
		}
		j := strings.IndexByte(s, ']')
		if j < 0 {
			return Type{}, fmt.Errorf("%w: missing ']' in %q", ErrArraySuffix, s)
		}
		switch n := s[1:j]; {
		case len(n) == 0:
			t = Array(t)
		case !digits(n):
			return Type{}, fmt.Errorf("%w: %q", ErrArraySuffix, s[:j+1])
		default:
			k, err := strconv.Atoi(n)
			if err != nil || k == 0 {
				return Type{}, fmt.Errorf("%w: %q", ErrArraySuffix, s[:j+1])
			}
			t = ArrayK(k, t)
		}
		s = s[j+1:]
	}
	return t, nil
}

// number parses the numeric parameter of a base type
// token. Missing digits are an invalid width; non-digit
// characters make the whole token an unknown base type.
func number(base, num string) (int, error) {
	if len(num) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, base)
	}
	if !digits(num) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, base)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, base)
	}
	return n, nil
}

func bitWidth(base, num string) (int, error) {
	n, err := number(base, num)
	if err != nil {
		return 0, err
	}
	if n < 8 || n > 256 || n%8 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, base)
	}
	return n, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
