// Package players keeps the list of registered player names in a
// newline-delimited file.
package players

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Registry is an append-only player list.
type Registry struct {
	path   string
	logger *zap.Logger
}

// NewRegistry creates a registry backed by the file at path.
func NewRegistry(path string, logger *zap.Logger) *Registry {
	return &Registry{path: path, logger: logger}
}

// IsReturning reports whether name is already registered. A new name is
// appended to the file, which is created if it does not exist.
func (r *Registry) IsReturning(name string) (bool, error) {
	name = strings.TrimSpace(name)
	names, err := r.load()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			r.logger.Info("returning player", zap.String("player", name))
			return true, nil
		}
	}
	if err := r.append(name); err != nil {
		return false, err
	}
	r.logger.Info("new player registered", zap.String("player", name))
	return false, nil
}

func (r *Registry) load() ([]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening player list: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading player list: %w", err)
	}
	return names, nil
}

func (r *Registry) append(name string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening player list: %w", err)
	}
	if _, err := fmt.Fprintln(f, name); err != nil {
		f.Close()
		return fmt.Errorf("writing player list: %w", err)
	}
	return f.Close()
}
