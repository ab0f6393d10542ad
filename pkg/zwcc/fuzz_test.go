// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Caldera Works

package zwcc

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"reflect"
	"sort"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// randomReadingValue builds a float that is exactly an integer scaled by
// a small power of ten, so encode and decode agree bit for bit.
func randomReadingValue(rng *rand.Rand) float64 {
	precision := rng.Intn(3)
	magnitude := int64(rng.Intn(20001) - 10000)
	return float64(magnitude) / math.Pow(10, float64(precision))
}

func randomBitSet(rng *rand.Rand) BitSet {
	seen := map[int]bool{}
	for i := rng.Intn(10); i > 0; i-- {
		seen[rng.Intn(64)] = true
	}
	bits := BitSet{}
	for b := range seen {
		bits = append(bits, b)
	}
	sort.Ints(bits)
	return bits
}

func randomBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(256))
	}
	return out
}

var sizedWidths = []uint8{1, 2, 4}

// randomField builds an encodable argument for one schema tag.
func randomField(rng *rand.Rand, tag FieldTag) Field {
	switch tag {
	case TagByte:
		return int64(rng.Intn(256))
	case TagWord:
		return int64(rng.Intn(65536))
	case TagValue:
		size := sizedWidths[rng.Intn(len(sizedWidths))]
		span := int64(1) << (8*size - 1)
		return SizedValue{Size: size, Value: rng.Int63n(2*span) - span}
	case TagSensor:
		return Reading{Scale: uint8(rng.Intn(4)), Value: randomReadingValue(rng)}
	case TagMeter:
		mr := MeterReading{Type: uint8(1 + rng.Intn(3))}
		if rng.Intn(8) > 0 {
			mr.HasValue = true
			mr.Value = randomReadingValue(rng)
			mr.Scale = uint8(rng.Intn(8))
		} else {
			// without a reading only the high scale bit is on the wire
			mr.Scale = uint8(rng.Intn(2)) * 4
		}
		if mr.HasValue && rng.Intn(2) == 0 {
			mr.HasDelta = true
			mr.DeltaTime = uint16(rng.Intn(65536))
		}
		if mr.HasDelta && rng.Intn(2) == 0 {
			mr.HasPrevious = true
			mr.Previous = randomReadingValue(rng)
		}
		return mr
	case TagDate:
		return DateTime{
			Year:   uint16(2000 + rng.Intn(100)),
			Month:  uint8(1 + rng.Intn(12)),
			Day:    uint8(1 + rng.Intn(28)),
			Hour:   uint8(rng.Intn(24)),
			Minute: uint8(rng.Intn(60)),
			Second: uint8(rng.Intn(60)),
		}
	case TagString:
		return randomBytes(rng, rng.Intn(16))
	case TagStringEnc:
		return EncodedString{
			Encoding: StringEncoding(rng.Intn(3)),
			Data:     randomBytes(rng, rng.Intn(0x20)),
		}
	case TagName:
		runes := make([]rune, rng.Intn(12))
		for i := range runes {
			switch rng.Intn(3) {
			case 0:
				runes[i] = rune(0x20 + rng.Intn(0x5F)) // printable ASCII
			case 1:
				runes[i] = rune(0xA0 + rng.Intn(0x60)) // Latin-1 supplement
			default:
				runes[i] = rune(0x400 + rng.Intn(0x100)) // beyond Latin-1
			}
		}
		return string(runes)
	case TagNonce:
		return randomBytes(rng, nonceSize)
	case TagKey:
		return randomBytes(rng, networkKeySize)
	case TagBits, TagBitsRest:
		return randomBitSet(rng)
	case TagBlobRest:
		return randomBytes(rng, rng.Intn(12))
	case TagIntRest:
		return int64(rng.Intn(1 << 24))
	case TagOptionalByte:
		if rng.Intn(2) == 0 {
			return nil
		}
		return int64(rng.Intn(256))
	default:
		panic("unhandled tag in fuzz generator")
	}
}

// TestFuzz_RoundTripAllSchemas assembles random arguments for every
// registered command and verifies decode returns them unchanged.
func TestFuzz_RoundTripAllSchemas(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	keys := make([]Key, 0, len(commandSchemas))
	for key := range commandSchemas {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for round := 0; round < rounds; round++ {
		key := keys[rng.Intn(len(keys))]
		schema := commandSchemas[key]
		args := make([]Field, len(schema))
		for i, tag := range schema {
			args[i] = randomField(rng, tag)
		}

		raw := AssembleFrame(key.Class(), key.Command(), args)
		gotKey, fields, err := ParseFrame(raw)
		if err != nil {
			t.Fatalf("round %d: %s decode failed: %v\n raw % X\n args %+v",
				round, CommandName(key.Class(), key.Command()), err, raw, args)
		}
		if gotKey != key {
			t.Fatalf("round %d: key mismatch %v != %v", round, gotKey, key)
		}
		if !reflect.DeepEqual(fields, args) {
			t.Fatalf("round %d: %s round trip mismatch\n sent %+v\n got  %+v\n raw % X",
				round, CommandName(key.Class(), key.Command()), args, fields, raw)
		}
	}
}

// TestFuzz_DecoderRobustness feeds random byte strings to the decoder.
// Arbitrary input must yield either fields or a typed error, never a
// panic and never both.
func TestFuzz_DecoderRobustness(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for round := 0; round < rounds; round++ {
		raw := randomBytes(rng, rng.Intn(24))
		_, fields, err := ParseFrame(raw)
		if err == nil {
			continue
		}
		if fields != nil {
			t.Fatalf("round %d: fields alongside error for % X", round, raw)
		}
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("round %d: untyped decode error %v for % X", round, err, raw)
		}
	}
}

// TestFuzz_ResolverRobustness resolves every successfully decoded random
// frame; resolution must never panic and errors must be typed.
func TestFuzz_ResolverRobustness(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()
	r := newTestResolver(t)

	for round := 0; round < rounds; round++ {
		raw := randomBytes(rng, rng.Intn(24))
		key, fields, err := ParseFrame(raw)
		if err != nil {
			continue
		}
		_, rerr := r.Resolve(key.Class(), key.Command(), fields)
		if rerr != nil {
			var typed *ResolveError
			if !errors.As(rerr, &typed) {
				t.Fatalf("round %d: untyped resolve error %v for % X", round, rerr, raw)
			}
		}
	}
}
