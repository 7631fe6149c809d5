// Package materialtools operates on materials as whole values: merging,
// filtering, deduplication and shading model conversion. Every function
// leaves its inputs untouched and returns a new owning material built
// through the same validation as material.New.
package materialtools
