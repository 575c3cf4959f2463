// Package rsvp splits text into timed word frames for rapid serial
// visual presentation.
package rsvp

import (
	"strings"
	"time"
)

// Frame is one group of words shown together.
type Frame []string

// Words splits content on whitespace, dropping empty tokens.
func Words(content string) []string {
	return strings.Fields(content)
}

// Chunk groups consecutive words into frames of exactly size words;
// the last frame may be shorter. A size below 1 is treated as 1.
func Chunk(words []string, size int) []Frame {
	if size < 1 {
		size = 1
	}
	if len(words) == 0 {
		return nil
	}
	frames := make([]Frame, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		frames = append(frames, Frame(words[start:end]))
	}
	return frames
}

// FrameDuration returns how long a frame of chunkSize words is shown at
// the given words-per-minute rate: (60000/wpm) * chunkSize milliseconds.
// A rate of zero or below yields zero; callers treat that as paused.
func FrameDuration(wpm, chunkSize int) time.Duration {
	if wpm <= 0 {
		return 0
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	msPerWord := 60000.0 / float64(wpm)
	return time.Duration(msPerWord*float64(chunkSize)) * time.Millisecond
}
