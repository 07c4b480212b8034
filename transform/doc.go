// Package transform provides named string transforms applied to form values
// before validation, and helpers that apply a transform to every string field
// of a form struct. These are commonly used inside
// [fieldvalidation.Normalizer] implementations.
package transform
