// SPDX-License-Identifier: EPL-2.0

// Package decoding holds plumbing shared by the format decoders.
package decoding

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ReadSeeker returns r itself when it can seek. Otherwise the whole stream
// is read into memory, since the go-audio containers need to seek.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Logger returns l, or the logrus standard logger when l is nil.
func Logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
