package logging

import (
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger from config.
// Calling it again replaces the previous instance.
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		_ = instance.Close()
	}
	instance = logger
	return nil
}

// SetGlobalLogger installs an already built logger.
func SetGlobalLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	instance = l
}

// GetGlobalLogger returns the process-wide logger, falling back to an
// info-level stdout logger when InitLogger has not run yet.
func GetGlobalLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = NewWriterLogger(os.Stdout, LevelInfo)
	}
	return instance
}
