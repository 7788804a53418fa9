// Package keyword defines the immutable value types shared across the
// generation engine: secondary rows in their positional and keyed forms,
// template tables, match types, and grouping keys.
package keyword
