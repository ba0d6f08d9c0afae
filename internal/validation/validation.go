// Package validation checks user-supplied paths and files before they are used.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateInputFile checks that path names an existing regular file.
func ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file must be specified")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking input file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input %s is not a regular file", path)
	}
	return nil
}

// ValidateOutputPath checks that output can be written without clobbering input.
func ValidateOutputPath(output, input string) error {
	if output == "" {
		return fmt.Errorf("output file must be specified")
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return fmt.Errorf("output %s is a directory", output)
	}
	if input == "" {
		return nil
	}

	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("error resolving output path %s: %w", output, err)
	}
	absIn, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("error resolving input path %s: %w", input, err)
	}
	if absOut == absIn {
		return fmt.Errorf("output file must differ from input file: %s", output)
	}
	return nil
}

// CheckFilePermissions reports an error when a data file is accessible to
// other users. Custom patterns and rules can reveal spending habits.
func CheckFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. recommended 0600", mode.String())
	}
	return nil
}
