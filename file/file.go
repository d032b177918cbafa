/*
File    : eye/file/file.go
Project : Eye Language Interpreter
*/

// Package file implements the source-file reading collaborator of the
// interpreter. It resolves a source path against a working directory,
// appends the `.eye` extension when it is missing, and returns the exact
// file contents as a single string.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceExtension is the file extension of Eye source files. It is
// appended to the requested filename when absent, so `eye fib` and
// `eye fib.eye` open the same file.
const SourceExtension = ".eye"

// ReadSourceFile reads an Eye source file and returns its exact contents.
//
// The filename is resolved relative to workDir. When it does not already
// end in the `.eye` extension, the extension is appended before opening.
//
// Returns:
//   - string: The complete source text
//   - error: A read failure naming the resolved path
func ReadSourceFile(filename string, workDir string) (string, error) {
	if !strings.HasSuffix(filename, SourceExtension) {
		filename += SourceExtension
	}
	sourceFilePath := filepath.Join(workDir, filename)

	content, err := os.ReadFile(sourceFilePath)
	if err != nil {
		return "", fmt.Errorf("Failed to read file: %s", sourceFilePath)
	}

	return string(content), nil
}
