// Package util provides common utilities including logging helpers,
// file system locations and duration parsing.
package util

import "github.com/akyairhashvil/dialtimer/internal/logger"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logger.Errorf("%s: %v", context, err)
	}
}
