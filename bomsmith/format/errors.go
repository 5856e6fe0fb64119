package format

import "fmt"

// SerializationError is returned when a document cannot be written. Nothing reaches the destination writer
// when this happens.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize BOM to %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

type DeserializationError struct {
	Format Format
	Err    error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize BOM from %s: %v", e.Format, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}
