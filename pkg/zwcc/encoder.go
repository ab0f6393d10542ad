// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// ArgumentError describes an encode-path contract violation: the caller
// supplied an argument list whose shape does not match the schema.
// Encode arguments are always caller-constructed to mirror the schema,
// so a mismatch is a programmer error; AssembleFrame delivers it by
// panic rather than silently producing a corrupt frame.
type ArgumentError struct {
	Key    Key
	Index  int
	Tag    FieldTag
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("schema argument mismatch: %s field %d (tag %v): %s",
		CommandName(e.Key.Class(), e.Key.Command()), e.Index, e.Tag, e.Detail)
}

func argPanic(key Key, index int, tag FieldTag, format string, args ...interface{}) {
	panic(&ArgumentError{Key: key, Index: index, Tag: tag, Detail: fmt.Sprintf(format, args...)})
}

// AssembleFrame builds the raw wire frame for a (class, command) pair
// from typed arguments, one per schema entry. It is the exact inverse
// of ParseFrame for well-formed input. Panics with *ArgumentError if no
// schema is registered or the arguments do not match the schema.
func AssembleFrame(class, command byte, args []Field) []byte {
	key := MakeKey(class, command)
	schema, ok := commandSchemas[key]
	if !ok {
		panic(&ArgumentError{Key: key, Detail: "no schema registered"})
	}
	if len(args) != len(schema) {
		panic(&ArgumentError{Key: key, Detail: fmt.Sprintf("schema wants %d arguments, got %d", len(schema), len(args))})
	}

	data := make([]byte, 0, 2+4*len(schema))
	data = append(data, class, command)
	for i, tag := range schema {
		data = encodeField(data, key, i, tag, args[i])
	}
	return data
}

// encodeField appends the wire bytes for one schema entry. The switch
// is exhaustive over FieldTag; argument type mismatches panic.
func encodeField(data []byte, key Key, index int, tag FieldTag, arg Field) []byte {
	switch tag {
	case TagByte:
		v := wantInt(key, index, tag, arg)
		if v < 0 || v > 0xFF {
			argPanic(key, index, tag, "byte out of range: %d", v)
		}
		return append(data, byte(v))

	case TagWord:
		v := wantInt(key, index, tag, arg)
		if v < 0 || v > 0xFFFF {
			argPanic(key, index, tag, "word out of range: %d", v)
		}
		return append(data, byte(v>>8), byte(v))

	case TagValue:
		sv, ok := arg.(SizedValue)
		if !ok {
			argPanic(key, index, tag, "want SizedValue, got %T", arg)
		}
		if sv.Size != 1 && sv.Size != 2 && sv.Size != 4 {
			argPanic(key, index, tag, "bad value width %d", sv.Size)
		}
		data = append(data, sv.Size)
		return appendSignedMagnitude(data, key, index, tag, sv.Value, int(sv.Size))

	case TagSensor:
		r, ok := arg.(Reading)
		if !ok {
			argPanic(key, index, tag, "want Reading, got %T", arg)
		}
		if r.Scale > 3 {
			argPanic(key, index, tag, "sensor scale out of range: %d", r.Scale)
		}
		return appendReading(data, key, index, tag, r.Scale&0x3, r.Value)

	case TagMeter:
		return appendMeter(data, key, index, tag, arg)

	case TagDate:
		d, ok := arg.(DateTime)
		if !ok {
			argPanic(key, index, tag, "want DateTime, got %T", arg)
		}
		return append(data, byte(d.Year>>8), byte(d.Year), d.Month, d.Day, d.Hour, d.Minute, d.Second)

	case TagString:
		b := wantBytes(key, index, tag, arg)
		if len(b) > 0xFF {
			argPanic(key, index, tag, "string too long: %d", len(b))
		}
		data = append(data, byte(len(b)))
		return append(data, b...)

	case TagStringEnc:
		s, ok := arg.(EncodedString)
		if !ok {
			argPanic(key, index, tag, "want EncodedString, got %T", arg)
		}
		if s.Encoding > EncodingUTF16BE {
			argPanic(key, index, tag, "unsupported string encoding %d", s.Encoding)
		}
		if len(s.Data) > 0x1F {
			argPanic(key, index, tag, "string too long: %d", len(s.Data))
		}
		data = append(data, byte(s.Encoding)<<5|byte(len(s.Data)))
		return append(data, s.Data...)

	case TagName:
		s, ok := arg.(string)
		if !ok {
			argPanic(key, index, tag, "want string, got %T", arg)
		}
		return appendName(data, key, index, tag, s)

	case TagNonce:
		b := wantBytes(key, index, tag, arg)
		if len(b) != nonceSize {
			argPanic(key, index, tag, "bad nonce length %d", len(b))
		}
		return append(data, b...)

	case TagKey:
		b := wantBytes(key, index, tag, arg)
		if len(b) != networkKeySize {
			argPanic(key, index, tag, "bad key length %d", len(b))
		}
		return append(data, b...)

	case TagBits:
		bits, ok := arg.(BitSet)
		if !ok {
			argPanic(key, index, tag, "want BitSet, got %T", arg)
		}
		packed := packBits(bits)
		if len(packed) > 0xFF {
			argPanic(key, index, tag, "bit vector too long: %d bytes", len(packed))
		}
		data = append(data, byte(len(packed)))
		return append(data, packed...)

	case TagBitsRest:
		bits, ok := arg.(BitSet)
		if !ok {
			argPanic(key, index, tag, "want BitSet, got %T", arg)
		}
		return append(data, packBits(bits)...)

	case TagBlobRest:
		return append(data, wantBytes(key, index, tag, arg)...)

	case TagIntRest:
		v := wantInt(key, index, tag, arg)
		if v < 0 {
			argPanic(key, index, tag, "negative integer field: %d", v)
		}
		for x := uint64(v); x > 0; x >>= 8 {
			data = append(data, byte(x))
		}
		return data

	case TagOptionalByte:
		if arg == nil {
			return data
		}
		v := wantInt(key, index, tag, arg)
		if v < 0 || v > 0xFF {
			argPanic(key, index, tag, "byte out of range: %d", v)
		}
		return append(data, byte(v))

	default:
		argPanic(key, index, tag, "unhandled field tag")
		return nil
	}
}

func wantInt(key Key, index int, tag FieldTag, arg Field) int64 {
	v, ok := arg.(int64)
	if !ok {
		argPanic(key, index, tag, "want int64, got %T", arg)
	}
	return v
}

func wantBytes(key Key, index int, tag FieldTag, arg Field) []byte {
	b, ok := arg.([]byte)
	if !ok {
		argPanic(key, index, tag, "want []byte, got %T", arg)
	}
	return b
}

// appendSignedMagnitude emits value as size big-endian two's-complement
// bytes, the inverse of signedValue.
func appendSignedMagnitude(data []byte, key Key, index int, tag FieldTag, value int64, size int) []byte {
	min := int64(-1) << (8*size - 1)
	max := int64(1)<<(8*size-1) - 1
	if value < min || value > max {
		argPanic(key, index, tag, "value %d does not fit %d bytes", value, size)
	}
	for shift := 8 * (size - 1); shift >= 0; shift -= 8 {
		data = append(data, byte(value>>shift))
	}
	return data
}

// readingParams picks the smallest precision whose power-of-ten multiple
// of value is integral, and the smallest legal magnitude width that
// holds it.
func readingParams(key Key, index int, tag FieldTag, value float64) (precision uint8, size int, magnitude int64) {
	for p := 0; p <= 7; p++ {
		scaled := value * math.Pow(10, float64(p))
		rounded := math.Round(scaled)
		if math.Abs(scaled-rounded) > 1e-9 {
			continue
		}
		magnitude = int64(rounded)
		for _, s := range []int{1, 2, 4} {
			min := int64(-1) << (8*s - 1)
			max := int64(1)<<(8*s-1) - 1
			if magnitude >= min && magnitude <= max {
				return uint8(p), s, magnitude
			}
		}
	}
	argPanic(key, index, tag, "reading %v not representable", value)
	return 0, 0, 0
}

func appendReading(data []byte, key Key, index int, tag FieldTag, scaleLow uint8, value float64) []byte {
	precision, size, magnitude := readingParams(key, index, tag, value)
	conf := precision<<5 | scaleLow<<3 | uint8(size)
	data = append(data, conf)
	return appendSignedMagnitude(data, key, index, tag, magnitude, size)
}

// appendMeter emits the meter tuple. The optional trailing pieces must
// be populated front to back: a previous reading without a time delta
// would decode ambiguously, so that shape is rejected.
func appendMeter(data []byte, key Key, index int, tag FieldTag, arg Field) []byte {
	mr, ok := arg.(MeterReading)
	if !ok {
		argPanic(key, index, tag, "want MeterReading, got %T", arg)
	}
	if mr.Type > 0x1F {
		argPanic(key, index, tag, "meter type out of range: %d", mr.Type)
	}
	if mr.Scale > 7 {
		argPanic(key, index, tag, "meter scale out of range: %d", mr.Scale)
	}
	if mr.HasPrevious && !mr.HasDelta {
		argPanic(key, index, tag, "previous reading requires a time delta")
	}
	if (mr.HasDelta || mr.HasPrevious) && !mr.HasValue {
		argPanic(key, index, tag, "trailing meter pieces require a current reading")
	}

	c := mr.Type & 0x1F
	if mr.Scale&0x4 != 0 {
		c |= 0x80
	}
	data = append(data, c)
	if !mr.HasValue {
		return data
	}
	data = appendReading(data, key, index, tag, mr.Scale&0x3, mr.Value)
	if mr.HasDelta {
		data = append(data, byte(mr.DeltaTime>>8), byte(mr.DeltaTime))
	}
	if mr.HasPrevious {
		data = appendReading(data, key, index, tag, mr.Scale&0x3, mr.Previous)
	}
	return data
}

func appendName(data []byte, key Key, index int, tag FieldTag, s string) []byte {
	// Prefer the narrowest encoding that represents the text.
	ascii := true
	latin1 := true
	for _, r := range s {
		if r >= 0x80 {
			ascii = false
		}
		if r >= 0x100 {
			latin1 = false
		}
	}
	switch {
	case ascii:
		data = append(data, byte(EncodingASCII))
		return append(data, s...)
	case latin1:
		data = append(data, byte(EncodingLatin1))
		for _, r := range s {
			data = append(data, byte(r))
		}
		return data
	default:
		data = append(data, byte(EncodingUTF16BE))
		for _, u := range utf16.Encode([]rune(s)) {
			data = append(data, byte(u>>8), byte(u))
		}
		return data
	}
}

// packBits is the inverse of extractBits: the smallest byte span whose
// set bits are exactly the given positions.
func packBits(bits BitSet) []byte {
	size := 0
	for _, b := range bits {
		if b/8+1 > size {
			size = b/8 + 1
		}
	}
	out := make([]byte, size)
	for _, b := range bits {
		out[b/8] |= 1 << (b % 8)
	}
	return out
}
