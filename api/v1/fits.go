package v1

import (
	"fmt"
	"strconv"
)

// FitsCardType is the value type of a FITS header card.
type FitsCardType int32

const (
	FitsInteger FitsCardType = iota
	FitsFloat
	FitsString
	FitsComment
)

var fitsCardTypeNames = []string{"INTEGER", "FLOAT", "STRING", "COMMENT"}

func (t FitsCardType) String() string               { return enumName(fitsCardTypeNames, int32(t)) }
func (t FitsCardType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *FitsCardType) UnmarshalText(b []byte) error {
	return enumParse(fitsCardTypeNames, b, (*int32)(t), "fits card type")
}

// FitsHeaderCard is one keyword of a FITS header. Value holds the textual
// form; ValueType says how to interpret it.
type FitsHeaderCard struct {
	Keyword   string       `json:"keyword"`
	ValueType FitsCardType `json:"value_type"`
	Value     string       `json:"value"`
	Comment   string       `json:"comment,omitempty"`
}

// FloatCard builds a FLOAT card.
func FloatCard(keyword string, v float64, comment string) FitsHeaderCard {
	return FitsHeaderCard{Keyword: keyword, ValueType: FitsFloat, Value: strconv.FormatFloat(v, 'g', -1, 64), Comment: comment}
}

// IntCard builds an INTEGER card.
func IntCard(keyword string, v int64, comment string) FitsHeaderCard {
	return FitsHeaderCard{Keyword: keyword, ValueType: FitsInteger, Value: strconv.FormatInt(v, 10), Comment: comment}
}

// StringCard builds a STRING card.
func StringCard(keyword, v, comment string) FitsHeaderCard {
	return FitsHeaderCard{Keyword: keyword, ValueType: FitsString, Value: v, Comment: comment}
}

// Validate checks the keyword and that Value parses as ValueType.
func (c FitsHeaderCard) Validate() error {
	if c.Keyword == "" || len(c.Keyword) > 8 {
		return InvalidArgumentf("FITS keyword %q must be 1 to 8 characters", c.Keyword)
	}
	switch c.ValueType {
	case FitsInteger:
		if _, err := strconv.ParseInt(c.Value, 10, 64); err != nil {
			return InvalidArgumentf("FITS keyword %s: %q is not an integer", c.Keyword, c.Value)
		}
	case FitsFloat:
		if _, err := strconv.ParseFloat(c.Value, 64); err != nil {
			return InvalidArgumentf("FITS keyword %s: %q is not a float", c.Keyword, c.Value)
		}
	case FitsString, FitsComment:
	default:
		return InvalidArgumentf("FITS keyword %s: unknown value type %d", c.Keyword, int32(c.ValueType))
	}
	return nil
}

// Float returns the card value as a float64.
func (c FitsHeaderCard) Float() (float64, error) {
	v, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("FITS keyword %s: %w", c.Keyword, err)
	}
	return v, nil
}
