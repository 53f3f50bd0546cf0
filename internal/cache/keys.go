package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// BuildKey hashes kind and dims into a stable key. Map order does not matter
// and empty values are dropped, so equivalent queries share an entry.
func BuildKey(kind string, dims map[string]string) string {
	names := make([]string, 0, len(dims))
	for k, v := range dims {
		if strings.TrimSpace(v) == "" {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(kind)
	for _, k := range names {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.TrimSpace(dims[k]))
	}

	sum := sha1.Sum([]byte(b.String()))
	return kind + ":" + hex.EncodeToString(sum[:])
}
