package equivalence

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// HashBytes returns a 64 bit hash of the given data.
func HashBytes(data []byte) uint64 {
	digest := blake2b.Sum256(data)

	return binary.BigEndian.Uint64(digest[:8])
}

// HashString returns a 64 bit hash of the given string.
func HashString(s string) uint64 {
	return HashBytes([]byte(s))
}

// HashValue returns a 64 bit hash of the value's rendered representation. Two values that render identically hash
// identically, which keeps the hash consistent with any equality that is at least as coarse as the rendering.
func HashValue(v any) uint64 {
	return HashString(fmt.Sprintf("%v", v))
}
