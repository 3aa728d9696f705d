package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Render returns the canonical textual representation of a value as used in
// descriptions and failure messages.
//
//nolint:cyclop // Kind dispatcher; one case per rendering rule
func Render(value any) string {
	if value == nil {
		return "nil"
	}

	if pred, ok := AsPredicate(value); ok {
		if describer, ok := pred.(Describer); ok {
			return "(" + describer.Description() + ")"
		}
	}

	if hash, ok := value.(Hash); ok {
		return renderHash(hash)
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.String:
		return strconv.Quote(reflected.String())
	case reflect.Slice, reflect.Array:
		return renderSequence(reflected)
	case reflect.Map:
		hash, _ := asHash(value)

		return renderHash(hash)
	case reflect.Pointer, reflect.Interface:
		if reflected.IsNil() {
			return "nil"
		}
	default:
	}

	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String()
	}

	switch reflected.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(reflected.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(reflected.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(reflected.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(reflected.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(reflected.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%#v", value)
	}
}

func renderHash(hash Hash) string {
	parts := make([]string, len(hash))
	for i, entry := range hash {
		parts[i] = Render(entry.Key) + ": " + Render(entry.Value)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func renderSequence(sequence reflect.Value) string {
	parts := make([]string, sequence.Len())
	for i := range sequence.Len() {
		parts[i] = Render(sequence.Index(i).Interface())
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
