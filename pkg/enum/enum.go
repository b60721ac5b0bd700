package enum

import (
	"fmt"
	"reflect"
	"sort"
)

var registry = map[reflect.Type]map[string]any{}

// New registers a value of a string-based enum type and returns it unchanged.
// It is meant to be called in var blocks, so the set of valid values of a type
// is complete before any ToEnum call.
func New[T ~string](value T) T {
	t := reflect.TypeOf(value)
	if _, ok := registry[t]; !ok {
		registry[t] = map[string]any{}
	}

	registry[t][string(value)] = value
	return value
}

// ToEnum converts a raw string to a registered enum value of type T. It fails
// if the string was never registered with New.
func ToEnum[T ~string](s string) (T, error) {
	var zero T
	values, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := values[s]
	if !ok {
		return zero, fmt.Errorf("invalid value %s of enum %T", s, zero)
	}

	return value.(T), nil
}

// ToList returns all registered values of enum type T in a stable order.
func ToList[T ~string]() []T {
	var zero T
	values := registry[reflect.TypeOf(zero)]

	list := make([]T, 0, len(values))
	for _, v := range values {
		list = append(list, v.(T))
	}

	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
