package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// MakeKey derives a stable cache key from a request value.
//
// The request is serialized to canonical JSON (object keys sorted at every
// level) and hashed with SHA-256; the key is the hex digest. Two requests
// that are structurally equal produce the same key regardless of map
// iteration order or struct field ordering at the call site.
func MakeKey(request any) string {
	serialized, err := json.Marshal(request)
	if err != nil {
		// Unserializable values still need a deterministic key
		serialized = []byte(fmt.Sprintf("%#v", request))
	} else if normalized, ok := canonicalize(serialized); ok {
		serialized = normalized
	}

	digest := sha256.Sum256(serialized)
	return hex.EncodeToString(digest[:])
}

// canonicalize round-trips JSON through map[string]any so that object keys
// come back sorted. encoding/json sorts map keys on marshal, which turns
// struct-ordered output into canonical output.
func canonicalize(data []byte) ([]byte, bool) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return out, true
}
