// Package fileutils provides the file operations shared by the store and the
// CSV writer.
package fileutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/txn-categorizer/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates dirPath and its parents when missing.
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || dirPath == "." || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// FirstExisting returns the first candidate that is an existing file, or
// os.ErrNotExist when none is.
func FirstExisting(candidates ...string) (string, error) {
	for _, c := range candidates {
		if FileExists(c) {
			return c, nil
		}
	}
	return "", os.ErrNotExist
}

// ReadFile reads the entire file. A missing file returns an error wrapping
// os.ErrNotExist.
func ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- paths come from configuration
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("file does not exist: %s: %w", filePath, os.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile writes data to filePath, creating parent directories if needed.
func WriteFile(filePath string, data []byte, perm os.FileMode) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateFile creates or truncates filePath for writing, creating parent
// directories if needed.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- paths come from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
