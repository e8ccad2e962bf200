// Package cache provides response caching keyed by request digest.
//
// # Overview
//
// The cache package stores serialized provider responses so that repeated
// identical requests can be served without paying for another API call.
// Three backends are available behind one interface:
//
//   - "memory": in-process map, cleared on exit
//   - "disk": one file per entry under a directory, survives restarts
//   - "sqlite": single database file, survives restarts
//
// # Keys
//
// Keys come from MakeKey, which serializes the request to canonical JSON
// (sorted object keys) and returns the hex SHA-256 digest. Structurally
// equal requests map to the same entry no matter how the caller built them.
//
// # Usage
//
//	c, err := cache.New(cache.BackendDisk, "")
//	if err != nil {
//	    // unknown selector or backend setup failure
//	}
//
//	key := cache.MakeKey(request)
//	if value, ok := c.Get(key); ok {
//	    // cache hit
//	}
//	c.Set(key, serialized)
//
// # Error Handling
//
// Construction is the only loud failure point. Once built, a cache never
// surfaces IO problems: failed reads are misses and failed writes are
// dropped, so caching stays an optimization rather than a dependency.
//
// # Thread Safety
//
// All backends are safe for concurrent use.
package cache
