// Package adapter contains infrastructure adapters for the CLI.
package adapter

import (
	"fmt"
	"os"

	m "github.com/RAnders00/advent-of-code-2023/internal/model"
)

// InputReader abstracts loading puzzle input so the workflow logic can be
// tested without touching the disk.
type InputReader interface {
	// ReadInput loads the input document at path.
	ReadInput(path m.Path) (string, error)
}

// LocalInputReader reads puzzle input from the local filesystem.
type LocalInputReader struct{}

// NewLocalInputReader constructs a LocalInputReader ready to be wired into
// the workflow.
func NewLocalInputReader() *LocalInputReader {
	return &LocalInputReader{}
}

// ReadInput loads the whole file into memory; parsing never streams.
func (a *LocalInputReader) ReadInput(path m.Path) (string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("while trying to read file %s: %w", path, err)
	}

	return string(content), nil
}
