// SPDX-License-Identifier: EPL-2.0

// Package stats computes simple level statistics over a channel or a frame
// of any audio.Indirect buffer.
//
// Every function reads through the checked Read method, so an out of range
// channel or frame reads as silence instead of failing. All results are
// computed on the raw sample values, not on scaled floats: wrap integer
// storage in audio.Numbers or audio.Convert first to measure full scale
// relative levels.
//
// An empty channel or frame yields 0.
package stats
