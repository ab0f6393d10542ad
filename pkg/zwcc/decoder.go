// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// fieldError is the internal result of a primitive decoder; ParseFrame
// wraps it with the frame key, schema index and byte offset.
type fieldError struct {
	kind   DecodeErrorKind
	detail string
}

func truncated(need, have int) *fieldError {
	return &fieldError{TruncatedFrame, fmt.Sprintf("need %d bytes, have %d", need, have)}
}

func malformed(format string, args ...interface{}) *fieldError {
	return &fieldError{MalformedField, fmt.Sprintf(format, args...)}
}

// ParseFrame decodes a raw application command frame. The first two
// bytes are the (class, command) header; the remainder is decoded
// field-by-field against the registered schema. Decode is all-or-nothing:
// any field failure aborts the frame and no partial list is returned.
func ParseFrame(raw []byte) (Key, []Field, error) {
	if len(raw) < 2 {
		return 0, nil, &DecodeError{Kind: TruncatedFrame, Detail: "frame shorter than 2-byte header"}
	}
	key := MakeKey(raw[0], raw[1])
	schema, ok := commandSchemas[key]
	if !ok {
		return key, nil, &DecodeError{Kind: UnknownCommand, Key: key}
	}

	fields := make([]Field, 0, len(schema))
	index := 2
	for i, tag := range schema {
		next, f, ferr := decodeField(tag, raw, index)
		if ferr != nil {
			return key, nil, &DecodeError{
				Kind:   ferr.kind,
				Key:    key,
				Tag:    tag,
				Index:  i,
				Offset: index,
				Detail: ferr.detail,
			}
		}
		fields = append(fields, f)
		index = next
	}
	return key, fields, nil
}

// decodeField runs the decoder for one schema entry at byte offset
// index, returning the new offset and the decoded field. The switch is
// exhaustive over FieldTag.
func decodeField(tag FieldTag, m []byte, index int) (int, Field, *fieldError) {
	switch tag {
	case TagByte:
		return decodeByteField(m, index)
	case TagWord:
		return decodeWord(m, index)
	case TagValue:
		return decodeSizedValue(m, index)
	case TagSensor:
		return decodeSensor(m, index)
	case TagMeter:
		return decodeMeter(m, index)
	case TagDate:
		return decodeDate(m, index)
	case TagString:
		return decodeString(m, index)
	case TagStringEnc:
		return decodeStringEnc(m, index)
	case TagName:
		return decodeName(m, index)
	case TagNonce:
		return decodeFixed(m, index, nonceSize)
	case TagKey:
		return decodeFixed(m, index, networkKeySize)
	case TagBits:
		return decodeBits(m, index)
	case TagBitsRest:
		return decodeBitsRest(m, index)
	case TagBlobRest:
		return decodeBlobRest(m, index)
	case TagIntRest:
		return decodeIntRest(m, index)
	case TagOptionalByte:
		return decodeOptionalByte(m, index)
	default:
		return index, nil, malformed("unhandled field tag %v", tag)
	}
}

const (
	nonceSize      = 8
	networkKeySize = 16
	dateSize       = 7
)

// signedValue interprets size bytes at m[index:] as a signed magnitude:
// if the top bit of the first byte is set the value is the negated
// complement-plus-one of the remaining bits (two's complement), else the
// unsigned big-endian magnitude. Returned as float64 so a later division
// by a power-of-ten precision factor stays exact for sane magnitudes.
func signedValue(m []byte, index, size int) float64 {
	negative := m[index]&0x80 != 0
	var value uint64
	for i := 0; i < size; i++ {
		value <<= 8
		if negative {
			value += uint64(^m[index+i])
		} else {
			value += uint64(m[index+i])
		}
	}
	if negative {
		return -float64(value + 1)
	}
	return float64(value)
}

func decodeByteField(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, len(m)-index)
	}
	return index + 1, int64(m[index]), nil
}

func decodeWord(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+2 {
		return index, nil, truncated(2, len(m)-index)
	}
	return index + 2, int64(m[index])<<8 | int64(m[index+1]), nil
}

func decodeSizedValue(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	size := int(m[index] & 0x7)
	if size != 1 && size != 2 && size != 4 {
		return index, nil, malformed("bad value width %d", size)
	}
	if len(m) < index+1+size {
		return index, nil, truncated(1+size, len(m)-index)
	}
	v := signedValue(m, index+1, size)
	return index + 1 + size, SizedValue{Size: uint8(size), Value: int64(v)}, nil
}

// decodeReading parses one precision/scale/size conf byte plus magnitude.
// unitsExtra is the externally supplied high-order scale bit (meter
// frames only; zero for sensors).
func decodeReading(m []byte, index int, unitsExtra uint8) (int, Reading, *fieldError) {
	if len(m) < index+2 {
		return index, Reading{}, truncated(2, len(m)-index)
	}
	c := m[index]
	precision := (c >> 5) & 0x7
	scale := (c>>3)&0x3 | unitsExtra
	size := int(c & 0x7)
	if size != 1 && size != 2 && size != 4 {
		return index, Reading{}, malformed("bad reading width %d", size)
	}
	if len(m) < index+1+size {
		return index, Reading{}, truncated(1+size, len(m)-index)
	}
	value := signedValue(m, index+1, size) / math.Pow(10, float64(precision))
	return index + 1 + size, Reading{Scale: scale, Value: value}, nil
}

func decodeSensor(m []byte, index int) (int, Field, *fieldError) {
	next, r, ferr := decodeReading(m, index, 0)
	if ferr != nil {
		return index, nil, ferr
	}
	return next, r, nil
}

// decodeMeter parses the meter tuple: a type byte (bit 7 is the extra
// high scale bit, bits 0-4 the meter kind), a current reading, then an
// optional 2-byte time delta and optional previous reading. The frame
// may legitimately end after any of these pieces; absence is not an
// error.
func decodeMeter(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	c := m[index]
	mr := MeterReading{
		Type:  c & 0x1F,
		Scale: (c & 0x80) >> 5,
	}
	index++

	if index >= len(m) {
		return index, mr, nil
	}
	next, r, ferr := decodeReading(m, index, mr.Scale)
	if ferr != nil {
		return index, nil, ferr
	}
	mr.Scale = r.Scale
	mr.Value = r.Value
	mr.HasValue = true
	index = next

	if index+1 < len(m) {
		mr.DeltaTime = uint16(m[index])<<8 | uint16(m[index+1])
		mr.HasDelta = true
		index += 2
	}
	if index < len(m) {
		next, r, ferr = decodeReading(m, index, (c&0x80)>>5)
		if ferr != nil {
			return index, nil, ferr
		}
		mr.Previous = r.Value
		mr.HasPrevious = true
		index = next
	}
	return index, mr, nil
}

func decodeDate(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+dateSize {
		return index, nil, truncated(dateSize, len(m)-index)
	}
	d := DateTime{
		Year:   uint16(m[index])<<8 | uint16(m[index+1]),
		Month:  m[index+2],
		Day:    m[index+3],
		Hour:   m[index+4],
		Minute: m[index+5],
		Second: m[index+6],
	}
	return index + dateSize, d, nil
}

func decodeString(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	size := int(m[index])
	if len(m) < index+1+size {
		return index, nil, truncated(1+size, len(m)-index)
	}
	out := make([]byte, size)
	copy(out, m[index+1:index+1+size])
	return index + 1 + size, out, nil
}

func decodeStringEnc(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	encoding := StringEncoding(m[index] >> 5)
	size := int(m[index] & 0x1F)
	if encoding > EncodingUTF16BE {
		return index, nil, malformed("unsupported string encoding %d", encoding)
	}
	if len(m) < index+1+size {
		return index, nil, truncated(1+size, len(m)-index)
	}
	out := make([]byte, size)
	copy(out, m[index+1:index+1+size])
	return index + 1 + size, EncodedString{Encoding: encoding, Data: out}, nil
}

// decodeName consumes an encoding-selector byte and the rest of the
// buffer as text in that encoding.
func decodeName(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	encoding := StringEncoding(m[index] & 0x7)
	data := m[index+1:]
	switch encoding {
	case EncodingASCII:
		for _, b := range data {
			if b >= 0x80 {
				return index, nil, malformed("non-ASCII byte 0x%02X in ASCII name", b)
			}
		}
		return len(m), string(data), nil
	case EncodingLatin1:
		runes := make([]rune, len(data))
		for i, b := range data {
			runes[i] = rune(b)
		}
		return len(m), string(runes), nil
	case EncodingUTF16BE:
		if len(data)%2 != 0 {
			return index, nil, malformed("odd UTF-16 payload length %d", len(data))
		}
		units := make([]uint16, len(data)/2)
		for i := range units {
			units[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
		}
		return len(m), string(utf16.Decode(units)), nil
	default:
		return index, nil, malformed("unsupported string encoding %d", encoding)
	}
}

func decodeFixed(m []byte, index, size int) (int, Field, *fieldError) {
	if len(m) < index+size {
		return index, nil, truncated(size, len(m)-index)
	}
	out := make([]byte, size)
	copy(out, m[index:index+size])
	return index + size, out, nil
}

// extractBits converts a byte span into the sorted set of set-bit
// positions: bit j of byte i yields position i*8+j.
func extractBits(data []byte) BitSet {
	bits := BitSet{}
	for i, b := range data {
		for j := 0; j < 8; j++ {
			if b&(1<<j) != 0 {
				bits = append(bits, i*8+j)
			}
		}
	}
	return bits
}

func decodeBits(m []byte, index int) (int, Field, *fieldError) {
	if len(m) < index+1 {
		return index, nil, truncated(1, 0)
	}
	size := int(m[index])
	if len(m) < index+1+size {
		return index, nil, truncated(1+size, len(m)-index)
	}
	return index + 1 + size, extractBits(m[index+1 : index+1+size]), nil
}

func decodeBitsRest(m []byte, index int) (int, Field, *fieldError) {
	return len(m), extractBits(m[index:]), nil
}

func decodeBlobRest(m []byte, index int) (int, Field, *fieldError) {
	out := make([]byte, len(m)-index)
	copy(out, m[index:])
	return len(m), out, nil
}

// decodeIntRest accumulates all remaining bytes as one little-endian
// unsigned integer (command-class bitmaps, short numeric lists).
func decodeIntRest(m []byte, index int) (int, Field, *fieldError) {
	if len(m)-index > 8 {
		return index, nil, malformed("integer field of %d bytes overflows", len(m)-index)
	}
	var x uint64
	shift := uint(0)
	for _, b := range m[index:] {
		x |= uint64(b) << shift
		shift += 8
	}
	// Keep the decoded value inside the encoder's accepted range so
	// decode and encode stay exact inverses.
	if x > math.MaxInt64 {
		return index, nil, malformed("integer field value %d overflows", x)
	}
	return len(m), int64(x), nil
}

func decodeOptionalByte(m []byte, index int) (int, Field, *fieldError) {
	if index >= len(m) {
		return index, nil, nil
	}
	return index + 1, int64(m[index]), nil
}
