// Package model defines the shared value types of the puzzle solvers.
package model

// Path represents a file system path.
type Path string
