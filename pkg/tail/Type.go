package tail

import "time"

// Reader follows a single file by byte offset. The cursor marks the boundary
// between content already emitted and content not yet seen; it only moves
// forward, except when the file shrinks and the reader starts over from zero.
type Reader struct {
	path     string
	interval time.Duration
	cursor   int64
	primed   bool
}
