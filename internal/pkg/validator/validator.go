package validator

// Validator validates annotated structs.
type Validator interface {
	// Validate checks the struct and returns an error describing violations.
	Validate(data any) error
}
