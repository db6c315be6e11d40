package query

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
)

// Field is one filterable attribute of a record.
type Field[T any] struct {
	Name  string
	kind  fieldKind
	param bool
	str   func(T) string
	num   func(T) int64
}

// String declares a string field. It is recognized both as an equality query
// parameter and as an identifier inside filter expressions.
func String[T any](name string, value func(T) string) Field[T] {
	return Field[T]{Name: name, kind: kindString, param: true, str: value}
}

// Int declares an integer field usable inside filter expressions only.
func Int[T any](name string, value func(T) int64) Field[T] {
	return Field[T]{Name: name, kind: kindInt, num: value}
}
