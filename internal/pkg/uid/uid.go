package uid

// NumberID generates numeric identifiers (entity primary keys).
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers (correlation IDs, token IDs).
type StringID interface {
	Generate() string
}
