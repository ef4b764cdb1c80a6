package storage

// Backend is a durable home for the single state document. Implementations
// replace the whole document on every write.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// ReadDocument returns errors.ErrNoDocument when nothing was written yet
	ReadDocument() ([]byte, error)
	WriteDocument(data []byte) error

	// Utils
	GetConfigPath() string
}
