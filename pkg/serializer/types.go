package serializer

import "context"

// Serializer writes a value somewhere in some format.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Tabular values render themselves as rows in table format instead of
// being flattened field by field.
type Tabular interface {
	TableRows() (header []string, rows [][]string)
}
