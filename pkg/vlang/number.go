package vlang

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Base identifies which numeral system a Number's digits were written in.
type Base int

const (
	BaseBinary Base = iota
	BaseOctal
	BaseHex
	BaseDecimal
	BaseUnsizedDecimal
)

// Number is the tagged-variant result of a successfully parsed Verilog
// numeric literal. The three value projections (Int, BigInt, BitVector) are
// derived lazily from Digits rather than computed separately per entry
// point.
type Number struct {
	Width    *uint // nil when the literal has no explicit size
	Signed   bool
	Base     Base
	Digits   string // digit text after the base letter, underscores/spaces already stripped
	Negative bool   // set only for the bare signed-decimal form; ignored by BigInt/BitVector
}

var (
	binDigitRe = regexp.MustCompile(`^[01]+$`)
	// The octal alphabet deliberately accepts hex digits — a preserved
	// bug-compatible quirk, not a typo. See magnitude() for how the extra
	// bits are handled.
	octDigitRe = regexp.MustCompile(`(?i)^[0-9a-f]+$`)
	hexDigitRe = regexp.MustCompile(`(?i)^[0-9a-f]+$`)
	decDigitRe = regexp.MustCompile(`^[0-9]+$`)
)

func stripUnderscoresSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' {
			return -1
		}
		return r
	}, s)
}

func isAllDigits(s string) bool {
	return decDigitRe.MatchString(s)
}

func validDigits(base Base, digits string) bool {
	switch base {
	case BaseBinary:
		return binDigitRe.MatchString(digits)
	case BaseOctal:
		return octDigitRe.MatchString(digits)
	case BaseHex:
		return hexDigitRe.MatchString(digits)
	case BaseDecimal, BaseUnsizedDecimal:
		return decDigitRe.MatchString(digits)
	}
	return false
}

// ParseNumber parses a Verilog sized or unsized numeric literal:
// <width>'<sign><base><digits>, or a bare optionally-signed decimal number
// when there is no quote. It returns (nil, false) on any malformed input — a
// malformed literal is not an error condition in this library.
func ParseNumber(s string) (*Number, bool) {
	clean := stripUnderscoresSpaces(s)
	if clean == "" {
		return nil, false
	}

	if idx := strings.IndexByte(clean, '\''); idx >= 0 {
		widthStr := clean[:idx]
		rest := clean[idx+1:]

		var width *uint
		if widthStr != "" {
			if !isAllDigits(widthStr) {
				return nil, false
			}
			v, err := strconv.ParseUint(widthStr, 10, 32)
			if err != nil {
				return nil, false
			}
			w := uint(v)
			width = &w
		}

		signed := false
		if len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S') {
			signed = true
			rest = rest[1:]
		}
		if rest == "" {
			return nil, false
		}

		var base Base
		var digits string
		switch rest[0] {
		case 'b', 'B':
			base, digits = BaseBinary, rest[1:]
		case 'o', 'O':
			base, digits = BaseOctal, rest[1:]
		case 'h', 'H':
			base, digits = BaseHex, rest[1:]
		case 'd', 'D':
			base, digits = BaseDecimal, rest[1:]
		default:
			// Base letter omitted defaults to decimal, per the grammar's
			// "d omitted for default decimal".
			base, digits = BaseDecimal, rest
		}
		if digits == "" || !validDigits(base, digits) {
			return nil, false
		}
		return &Number{Width: width, Signed: signed, Base: base, Digits: digits}, true
	}

	// Bare form: optional-sign decimal-digits.
	rest := clean
	negative := false
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		negative = rest[0] == '-'
		rest = rest[1:]
	}
	if rest == "" || !isAllDigits(rest) {
		return nil, false
	}
	return &Number{Base: BaseUnsizedDecimal, Digits: rest, Negative: negative}, true
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

func (n *Number) radix() int64 {
	switch n.Base {
	case BaseBinary:
		return 2
	case BaseOctal:
		return 8
	case BaseHex:
		return 16
	default:
		return 10
	}
}

// magnitude assembles the unsigned value of n.Digits in n.Base, ignoring
// Negative. For BaseOctal each digit is masked to its low three bits before
// being positionally weighted, which is what lets an octal literal accept
// the hex digit alphabet: the high bit of a hex digit above 7 is simply
// discarded rather than rejected.
func (n *Number) magnitude() *big.Int {
	result := new(big.Int)
	radix := big.NewInt(n.radix())
	for i := 0; i < len(n.Digits); i++ {
		c := n.Digits[i]
		var digit int
		switch n.Base {
		case BaseOctal:
			digit = hexDigitValue(c) & 0x7
		case BaseHex:
			digit = hexDigitValue(c)
		case BaseBinary:
			digit = int(c - '0')
		default:
			digit = int(c - '0')
		}
		result.Mul(result, radix)
		result.Add(result, big.NewInt(int64(digit)))
	}
	return result
}

// Int returns the native-integer projection: positive-magnitude
// interpretation, ignoring Signed, truncated to 64 bits for widths beyond
// native size. Only the bare decimal form's leading '-' is applied.
func (n *Number) Int() int64 {
	mag := n.magnitude()
	mask := new(big.Int).SetUint64(^uint64(0))
	low64 := new(big.Int).And(mag, mask)
	v := int64(low64.Uint64())
	if n.Negative {
		return -v
	}
	return v
}

// BigInt returns the arbitrary-precision unsigned magnitude.
func (n *Number) BigInt() *big.Int {
	return n.magnitude()
}

// BitVector returns a fixed-width bit vector, LSB at index 0. Width is
// n.Width if the literal declared one, else defaultWidth. Bits beyond the
// declared width are discarded silently.
func (n *Number) BitVector(defaultWidth int) []bool {
	width := defaultWidth
	if n.Width != nil {
		width = int(*n.Width)
	}
	mag := n.magnitude()
	bits := make([]bool, width)
	for i := 0; i < width; i++ {
		bits[i] = mag.Bit(i) == 1
	}
	return bits
}

// NumberBits returns the width digits preceding the single quote, or
// (0, false) if the literal contains no quote or no width digits precede
// it. This is a purely lexical scan, independent of whether the rest of the
// literal is well-formed.
func NumberBits(s string) (uint, bool) {
	clean := stripUnderscoresSpaces(s)
	idx := strings.IndexByte(clean, '\'')
	if idx < 0 || idx == 0 {
		return 0, false
	}
	widthStr := clean[:idx]
	if !isAllDigits(widthStr) {
		return 0, false
	}
	v, err := strconv.ParseUint(widthStr, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// NumberSigned reports whether the quote is followed by 's' or 'S'. Returns
// false (not none) when there is no quote at all.
func NumberSigned(s string) bool {
	clean := stripUnderscoresSpaces(s)
	idx := strings.IndexByte(clean, '\'')
	if idx < 0 {
		return false
	}
	rest := clean[idx+1:]
	return len(rest) > 0 && (rest[0] == 's' || rest[0] == 'S')
}

// NumberValue parses s and returns its native-integer projection.
func NumberValue(s string) (int64, bool) {
	n, ok := ParseNumber(s)
	if !ok {
		return 0, false
	}
	return n.Int(), true
}

// NumberBigInt parses s and returns its arbitrary-precision projection.
func NumberBigInt(s string) (*big.Int, bool) {
	n, ok := ParseNumber(s)
	if !ok {
		return nil, false
	}
	return n.BigInt(), true
}

// NumberBitVector parses s and returns its fixed-width bit-vector
// projection, using the literal's declared width or 32 when unsized.
func NumberBitVector(s string) ([]bool, bool) {
	n, ok := ParseNumber(s)
	if !ok {
		return nil, false
	}
	return n.BitVector(32), true
}
