// Package utils contains small conversion helpers shared across features,
// mainly for coercing loosely-typed values (query parameters, generic maps)
// into the types handlers actually want.
package utils
