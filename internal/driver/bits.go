package driver

// Bit binds a status flag to its position in a status word.
type Bit struct {
	Pos  uint
	Flag *bool
}

// DecodeBits sets every flag from the matching bit of value.
func DecodeBits(value uint64, bits []Bit) {
	for _, b := range bits {
		*b.Flag = value&(1<<b.Pos) != 0
	}
}

// EncodeBits packs the flags back into a status word.
func EncodeBits(bits []Bit) uint64 {
	var value uint64
	for _, b := range bits {
		if *b.Flag {
			value |= 1 << b.Pos
		}
	}
	return value
}
