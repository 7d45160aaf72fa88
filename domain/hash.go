package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hasher is implemented by value objects.
type hasher interface {
	HashCore() uint64
}

// HashOf combines the hashes of parts into one value. Parts that implement
// HashCore contribute that hash; other parts are hashed by type and value.
func HashOf(parts ...any) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, p := range parts {
		switch v := p.(type) {
		case hasher:
			binary.LittleEndian.PutUint64(buf[:], v.HashCore())
			_, _ = d.Write(buf[:])
		case string:
			_, _ = d.WriteString(v)
			_, _ = d.Write([]byte{0})
		case int:
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			_, _ = d.Write(buf[:])
		case int64:
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			_, _ = d.Write(buf[:])
		default:
			_, _ = d.WriteString(fmt.Sprintf("%T=%v", p, p))
			_, _ = d.Write([]byte{0})
		}
	}
	return d.Sum64()
}
