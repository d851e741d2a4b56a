package storage

// Provider is the persistence contract the settings layer is written
// against: a synchronous string key-value store. All implementations perform
// whole-value reads and writes; there is no merge path, so a torn write can
// at worst lose a pending edit, never corrupt the stored value.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access. Get reports ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error

	// Utils
	GetConfigPath() string
}
