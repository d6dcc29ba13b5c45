package core

import (
	"crypto/md5"
	"fmt"
)

const historyDepth = 3

// Fingerprint returns an md5 digest of the grid, encoding each cell with enc.
func Fingerprint[T comparable](g *Grid[T], enc func(buf []byte, c T) []byte) string {
	h := md5.New()
	buf := make([]byte, 0, 4*g.W)
	for y := 0; y < g.H; y++ {
		buf = buf[:0]
		for x := 0; x < g.W; x++ {
			buf = enc(buf, g.At(x, y))
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers recent grid fingerprints to detect static or cycling
// populations.
type History struct {
	hashes []string
}

// Record appends fp and keeps only the most recent entries.
func (h *History) Record(fp string) {
	h.hashes = append(h.hashes, fp)
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether fp repeats one of the last three recorded states,
// which covers still lifes and oscillators of period up to three.
func (h *History) Stagnant(fp string) bool {
	if len(h.hashes) < historyDepth {
		return false
	}
	for _, prev := range h.hashes {
		if prev == fp {
			return true
		}
	}
	return false
}

// Reset forgets all recorded fingerprints.
func (h *History) Reset() { h.hashes = nil }
