// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no valid RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAVE format tag other than integer
	// PCM, or a clip that cannot be described by a WAV header.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a PCM bit depth other than 8, 16, 24
	// or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrUnsupportedWavChunks indicates the PCM data could not be located or
	// read.
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")

	// ErrDataTooLarge indicates the PCM data does not fit a 32-bit RIFF size.
	ErrDataTooLarge = errors.New("WAV data exceeds 4 GiB")
)
