package contract

// IUUIDGenerator produces unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
