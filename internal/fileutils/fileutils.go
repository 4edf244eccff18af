// Package fileutils provides common file operations used throughout the
// application.
package fileutils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"fjacquet/ar-aging/internal/logging"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ReadFileContent reads a whole ledger file into a string.
func ReadFileContent(filePath string) (string, error) {
	if !FileExists(filePath) {
		return "", fmt.Errorf("input file does not exist: %s", filePath)
	}

	log.WithField(logging.FieldFile, filePath).Debug("Reading file")

	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to read file")
		return "", fmt.Errorf("error reading file: %w", err)
	}
	return string(data), nil
}

// WriteFileContent writes content to a file, creating it when missing.
func WriteFileContent(filePath string, content []byte) error {
	if err := os.WriteFile(filePath, content, 0600); err != nil {
		log.WithError(err).Error("Failed to write file")
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
