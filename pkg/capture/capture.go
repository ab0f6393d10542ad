// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

// Package capture reads and writes serial traffic capture files: a
// stream of CBOR-encoded records, one per frame, with integer map keys
// to keep recordings compact.
package capture

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Traffic directions.
const (
	DirectionRx = "rx"
	DirectionTx = "tx"
)

// Record is one captured frame. Raw holds the full wire bytes, framing
// included, so a capture can be replayed through the decoder unchanged.
type Record struct {
	Seq       uint64 `cbor:"1,keyasint"`
	Timestamp int64  `cbor:"2,keyasint"` // unix nanoseconds
	Direction string `cbor:"3,keyasint"`
	Raw       []byte `cbor:"4,keyasint"`
}

// Time returns the record timestamp.
func (r *Record) Time() time.Time {
	return time.Unix(0, r.Timestamp)
}

// Writer appends records to a capture stream. It is not safe for
// concurrent use.
type Writer struct {
	enc *cbor.Encoder
	seq uint64
}

var canonicalEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// NewWriter creates a capture writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: canonicalEncMode.NewEncoder(w)}
}

// Write appends one frame, stamping the next sequence number.
func (w *Writer) Write(ts time.Time, direction string, raw []byte) error {
	w.seq++
	rec := Record{
		Seq:       w.seq,
		Timestamp: ts.UnixNano(),
		Direction: direction,
		Raw:       raw,
	}
	if err := w.enc.Encode(&rec); err != nil {
		return fmt.Errorf("failed to encode capture record %d: %w", w.seq, err)
	}
	return nil
}

// Reader iterates the records of a capture stream.
type Reader struct {
	dec *cbor.Decoder
}

// NewReader creates a capture reader on r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: cbor.NewDecoder(r)}
}

// Next returns the next record, or io.EOF at end of stream.
func (r *Reader) Next() (*Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode capture record: %w", err)
	}
	return &rec, nil
}

// ReadAll drains the stream into memory.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
