package enum

import (
	"fmt"
	"reflect"
	"sort"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers value under the given name and returns value, so it can be
// used directly in a var block.
func New[T comparable](value T, name string) T {
	t := reflect.TypeOf(value)
	if _, ok := enumManager[typeKey(t)]; !ok {
		enumManager[typeKey(t)] = enum[T]{
			toEnum:   make(map[string]T),
			toString: make(map[T]string),
		}
	}

	e := enumManager[typeKey(t)].(enum[T])
	e.toEnum[name] = value
	e.toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[typeKey(reflect.TypeOf(defaultT))]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or an empty string if value
// was never registered.
func ToString[T comparable](value T) string {
	e, ok := enumManager[typeKey(reflect.TypeOf(value))]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}

// Names returns all registered names of the enum type T in lexical order.
func Names[T comparable]() []string {
	var defaultT T
	e, ok := enumManager[typeKey(reflect.TypeOf(defaultT))]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(e.(enum[T]).toEnum))
	for name := range e.(enum[T]).toEnum {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func typeKey(t reflect.Type) string {
	return t.PkgPath() + "." + t.Name()
}
