package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// fileKey maps a figure name to a stable file name. Names are user-chosen
// free text, so the file backend hashes them rather than trusting them as
// path components; the original name lives inside the stored envelope.
func fileKey(name string) string {
	hash := sha256.Sum256([]byte(name))
	return hex.EncodeToString(hash[:]) + ".json"
}

// redisKeyPrefix namespaces figure keys so a shared redis instance can hold
// unrelated data alongside the store.
const redisKeyPrefix = "plotspec:figure:"

func redisKey(name string) string {
	return redisKeyPrefix + name
}
