// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

// Field is one decoded schema entry. The concrete type depends on the
// entry's FieldTag:
//
//	TagByte, TagWord, TagIntRest, TagOptionalByte  int64
//	TagValue                                       SizedValue
//	TagSensor                                      Reading
//	TagMeter                                       MeterReading
//	TagDate                                        DateTime
//	TagString, TagBlobRest, TagNonce, TagKey       []byte
//	TagStringEnc                                   EncodedString
//	TagName                                        string
//	TagBits, TagBitsRest                           BitSet
//
// Fields are produced fresh per decode call and never shared between
// frames.
type Field interface{}

// SizedValue is a width-tagged signed integer (TagValue). Size is the
// wire byte-width of the magnitude: 1, 2 or 4.
type SizedValue struct {
	Size  uint8
	Value int64
}

// Reading is a scaled sensor reading (TagSensor): a unit-scale code and
// a fixed-point value already divided by its precision factor.
type Reading struct {
	Scale uint8
	Value float64
}

// MeterReading is the full meter tuple (TagMeter). DeltaTime and
// Previous are optional on the wire; the Has flags record whether the
// frame carried them. A frame may even end right after the type byte,
// in which case HasValue is false as well.
type MeterReading struct {
	Type        uint8
	Scale       uint8
	Value       float64
	HasValue    bool
	DeltaTime   uint16
	HasDelta    bool
	Previous    float64
	HasPrevious bool
}

// DateTime is a calendar timestamp (TagDate), seven wire bytes.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

// StringEncoding identifies the character encoding of a name string.
type StringEncoding uint8

// Name-string encodings (3-bit wire selector).
const (
	EncodingASCII StringEncoding = iota
	EncodingLatin1
	EncodingUTF16BE
)

func (e StringEncoding) String() string {
	switch e {
	case EncodingASCII:
		return "ascii"
	case EncodingLatin1:
		return "latin-1"
	case EncodingUTF16BE:
		return "utf-16be"
	}
	return "unknown"
}

// EncodedString is a length+encoding-prefixed string (TagStringEnc).
// The payload bytes are kept raw; only the selector is validated.
type EncodedString struct {
	Encoding StringEncoding
	Data     []byte
}

// BitSet is the decoded form of a bit vector: the sorted positions of
// all set bits, bit j of byte i contributing position i*8+j.
type BitSet []int

// Contains reports whether position n is in the set.
func (s BitSet) Contains(n int) bool {
	for _, b := range s {
		if b == n {
			return true
		}
		if b > n {
			return false
		}
	}
	return false
}
