package ports

import "context"

// Fixed keys of the durable store. Absence of a key means "empty user list"
// and "no session" respectively.
const (
	KeyUsers   = "users"
	KeySession = "session"
)

// KV is the persistence adapter: scoped read/write of JSON-encoded values
// under named keys in a durable key-value store. It is the sole I/O boundary
// of the core; the backing medium (file, Redis, MongoDB) is swappable
// without touching the stores built on top.
type KV interface {
	// Read returns the stored value for key and whether the key was present.
	Read(ctx context.Context, key string) ([]byte, bool, error)
	// Write stores value under key, overwriting any previous value. The
	// value is durable when Write returns.
	Write(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// KVPinger is implemented by adapters that can check connectivity to their
// backing store. The readiness probe uses it when available.
type KVPinger interface {
	Ping(ctx context.Context) error
}
