// SPDX-License-Identifier: EPL-2.0

// Package audio provides uniform (channel, frame) access to multi-channel
// sample buffers, whatever their physical layout.
//
// A wrapper is created once over existing storage, validates its size, and
// then reads and writes in place without copying:
//
//	pcm := []int16{0, -32768, 16384, -16384, 8192, -8192}
//	buf, err := audio.NewInterleavedNumbers[float32](pcm, 2, 3)
//	if err != nil {
//	    // storage too short for 2 channels x 3 frames
//	}
//	v, ok := buf.Read(1, 0) // -1.0, true
//
// # Capabilities
//
// The interfaces build on each other:
//   - Reader and Writer are the minimal contracts: sizes plus unchecked access
//   - Indirect adds checked reads, bulk copies to slices and iteration
//   - IndirectMut adds checked writes, bulk copies from slices, fills and
//     overlap-safe shifting
//   - Direct and DirectMut hand out pointers to natively stored samples
//
// Wrap and WrapMut give any custom Reader or Writer the full API.
//
// # Wrappers
//
//   - Slice: a flat []T, interleaved or sequential
//   - Owned: a Slice that owns its storage, see TakeData
//   - Nested: a [][]T with one vector per channel or per frame
//   - Bytes: raw bytes in any sample.Encoding, read as scaled floats
//   - Numbers: native integers or floats, read as scaled floats
//   - Convert, ConvertMut: scaled float view of another wrapper
//   - Dummy: a constant value with no storage
//
// # Checked and Unchecked Access
//
// ReadUnchecked and WriteUnchecked skip index validation for hot loops that
// are already bounded by Channels() and Frames(). Everything else validates
// and reports failure as a value: ok=false, a zero count, or a clipped flag.
// Nothing in the checked API panics.
//
// # Clipping
//
// Writes through converting wrappers saturate values that do not fit the
// stored representation and report it. Non-converting wrappers never clip.
//
// # Decoding
//
// A Decoder turns an encoded stream into a Clip and the Registry selects a
// decoder by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	clip, err := registry.Decode("wav", file)
//
// # Concurrency
//
// Wrappers hold no locks. Any number of goroutines may read one wrapper, but
// a writer must be the only user of the storage it writes to.
package audio
