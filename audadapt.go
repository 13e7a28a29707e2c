// SPDX-License-Identifier: EPL-2.0

package audadapt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/formats/aiff"
	"github.com/ik5/audadapt/formats/flac"
	"github.com/ik5/audadapt/formats/mp3"
	"github.com/ik5/audadapt/formats/vorbis"
	"github.com/ik5/audadapt/formats/wav"
	"github.com/ik5/audadapt/sample"
	"github.com/ik5/audadapt/stats"
)

var defaultRegistry = NewRegistry(nil)

// NewRegistry returns a registry holding every built-in decoder, keyed by
// the usual file extensions. log is handed to each decoder; nil means the
// logrus standard logger.
func NewRegistry(log logrus.FieldLogger) *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{Log: log})
	r.Register("wave", wav.Decoder{Log: log})
	r.Register("aif", aiff.Decoder{Log: log})
	r.Register("aiff", aiff.Decoder{Log: log})
	r.Register("mp3", mp3.Decoder{Log: log})
	r.Register("ogg", vorbis.Decoder{Log: log})
	r.Register("oga", vorbis.Decoder{Log: log})
	r.Register("flac", flac.Decoder{Log: log})

	return r
}

// Formats lists the format keys Decode accepts.
func Formats() []string {
	return defaultRegistry.Formats()
}

// Decode reads r with the built-in decoder for format, such as "wav" or
// "flac". Keys are matched case-insensitively.
func Decode(format string, r io.Reader) (*audio.Clip, error) {
	return defaultRegistry.Decode(strings.ToLower(format), r)
}

// DecodeFile decodes the file at path, picking the decoder by extension.
func DecodeFile(path string) (*audio.Clip, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := Decode(format, f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return clip, nil
}

// Levels measures every channel of a.
func Levels[T sample.Number](a audio.Indirect[T]) []stats.Level {
	levels := make([]stats.Level, a.Channels())
	for ch := range levels {
		levels[ch] = stats.ChannelLevel(a, ch)
	}
	return levels
}
