package score

import "fmt"

// On-disk one-byte symbol table.
const (
	byteIllegal = 0
	byteUnset   = 1
	byteMissing = 2
	// 3 is reserved.
	byteUnknown = 4
	byteDraw    = 5

	byteMateStart  = 6   // MateIn(1) encodes as 6, MateIn(2) as 7, ...
	byteLoseStart  = 130 // MatedIn(0) encodes as 130 (stalemate-is-loss case), MatedIn(1) as 131, ...
	byteLoseLimit  = 253 // exclusive: 253..255 reserved for perpetual symbols
	bytePerpChecked = 253
	bytePerpEvasion = 254
	bytePerpCheckedEvasion = 255
)

// MaxPlies1Byte is the largest |Plies| a one-byte cell can represent.
// Mating values occupy [6,129] (124 symbols, k=1..124); losing values
// occupy [130,252] (123 symbols, k=0..122).
const (
	MaxMatePlies1Byte = byteLoseStart - byteMateStart           // 124
	MaxLosePlies1Byte = byteLoseLimit - byteLoseStart - 1       // 122
)

// Encode1 renders s into the one-byte on-disk symbol. It returns an error
// (ErrOverflow) if s is a Mate whose |Plies| exceeds what one byte can hold
// -- the generator's cue to fall back to two-byte cells.
func Encode1(s Score) (byte, error) {
	switch s.Kind {
	case Illegal:
		return byteIllegal, nil
	case Unset:
		return byteUnset, nil
	case Missing:
		return byteMissing, nil
	case Unknown:
		return byteUnknown, nil
	case Draw:
		return byteDraw, nil
	case PerpetualChecked:
		return bytePerpChecked, nil
	case PerpetualEvasion:
		return bytePerpEvasion, nil
	case PerpetualCheckedEvasion:
		return bytePerpCheckedEvasion, nil
	case Mate:
		if s.Plies > 0 {
			k := int(s.Plies)
			if k > MaxMatePlies1Byte {
				return 0, fmt.Errorf("%w: mate in %d plies exceeds one-byte range (max %d)", ErrOverflow, k, MaxMatePlies1Byte)
			}
			return byte(byteMateStart + k - 1), nil
		}
		k := int(-s.Plies)
		if k > MaxLosePlies1Byte {
			return 0, fmt.Errorf("%w: mated in %d plies exceeds one-byte range (max %d)", ErrOverflow, k, MaxLosePlies1Byte)
		}
		return byte(byteLoseStart + k), nil
	default:
		return 0, fmt.Errorf("score: unknown kind %v", s.Kind)
	}
}

// Decode1 parses a one-byte on-disk symbol back into a Score.
func Decode1(b byte) Score {
	switch {
	case b == byteIllegal:
		return MkIllegal()
	case b == byteUnset:
		return MkUnset()
	case b == byteMissing:
		return MkMissing()
	case b == byteUnknown:
		return MkUnknown()
	case b == byteDraw:
		return MkDraw()
	case b == bytePerpChecked:
		return MkPerpetualChecked()
	case b == bytePerpEvasion:
		return MkPerpetualEvasion()
	case b == bytePerpCheckedEvasion:
		return MkPerpetualCheckedEvasion()
	case b >= byteMateStart && b < byteLoseStart:
		return MateIn(int16(b) - byteMateStart + 1)
	case b >= byteLoseStart && b < byteLoseLimit:
		return MatedIn(int16(b) - byteLoseStart)
	default:
		return MkUnknown()
	}
}

// Two-byte symbol table: same small tags as the one-byte table, but the
// mate/lose ranges are widened to cover tables whose dtm_max overflows a
// byte. The exact split point is an engineering choice the original source
// never had to make (it only defines the one-byte table); this repo reserves
// the top three values for the perpetual symbols and otherwise splits the
// 16-bit space evenly between mating and losing distances (Open Question,
// resolved in DESIGN.md).
const (
	word16MateStart = 6
	word16LoseStart = 32774
	word16LoseLimit = 65533
	word16PerpChecked        = 65533
	word16PerpEvasion        = 65534
	word16PerpCheckedEvasion = 65535
)

const (
	MaxMatePlies2Byte = word16LoseStart - word16MateStart - 1
	MaxLosePlies2Byte = word16LoseLimit - word16LoseStart - 1
)

// Encode2 renders s into a little-endian two-byte on-disk symbol.
func Encode2(s Score) ([2]byte, error) {
	var v uint16
	switch s.Kind {
	case Illegal:
		v = byteIllegal
	case Unset:
		v = byteUnset
	case Missing:
		v = byteMissing
	case Unknown:
		v = byteUnknown
	case Draw:
		v = byteDraw
	case PerpetualChecked:
		v = word16PerpChecked
	case PerpetualEvasion:
		v = word16PerpEvasion
	case PerpetualCheckedEvasion:
		v = word16PerpCheckedEvasion
	case Mate:
		if s.Plies > 0 {
			k := int(s.Plies)
			if k > MaxMatePlies2Byte {
				return [2]byte{}, fmt.Errorf("%w: mate in %d plies exceeds two-byte range (max %d)", ErrOverflow, k, MaxMatePlies2Byte)
			}
			v = uint16(word16MateStart + k - 1)
		} else {
			k := int(-s.Plies)
			if k > MaxLosePlies2Byte {
				return [2]byte{}, fmt.Errorf("%w: mated in %d plies exceeds two-byte range (max %d)", ErrOverflow, k, MaxLosePlies2Byte)
			}
			v = uint16(word16LoseStart + k)
		}
	default:
		return [2]byte{}, fmt.Errorf("score: unknown kind %v", s.Kind)
	}
	return [2]byte{byte(v), byte(v >> 8)}, nil
}

// Decode2 parses a little-endian two-byte on-disk symbol back into a Score.
func Decode2(b [2]byte) Score {
	v := uint16(b[0]) | uint16(b[1])<<8
	switch {
	case v == byteIllegal:
		return MkIllegal()
	case v == byteUnset:
		return MkUnset()
	case v == byteMissing:
		return MkMissing()
	case v == byteUnknown:
		return MkUnknown()
	case v == byteDraw:
		return MkDraw()
	case v == word16PerpChecked:
		return MkPerpetualChecked()
	case v == word16PerpEvasion:
		return MkPerpetualEvasion()
	case v == word16PerpCheckedEvasion:
		return MkPerpetualCheckedEvasion()
	case v >= word16MateStart && v < word16LoseStart:
		return MateIn(int16(v) - word16MateStart + 1)
	case v >= word16LoseStart && v < word16LoseLimit:
		return MatedIn(int16(int(v) - word16LoseStart))
	default:
		return MkUnknown()
	}
}

// ErrOverflow is returned by Encode1/Encode2 when a mate distance does not
// fit the configured cell width.
var ErrOverflow = fmt.Errorf("score: distance-to-mate overflows cell width")
