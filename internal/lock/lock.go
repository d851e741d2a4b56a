// Package lock enforces a single running widget instance through a PID
// lockfile. A stale lockfile left by a crashed process is detected by
// checking whether its PID is still alive and reclaimed automatically.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/dayspan/dayspan/internal/constants"
)

var findProcessFunc = ps.FindProcess

// ErrAlreadyRunning is returned when another live widget process holds the
// lock.
var ErrAlreadyRunning = errors.New("another dayspan widget is already running")

// Lock is a held single-instance lock.
type Lock struct {
	path string
}

// Acquire takes the single-instance lock in the given config directory.
func Acquire(configDir string) (*Lock, error) {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(configDir, constants.LockfileName)

	if pid, ok := readLockfile(path); ok {
		if processAlive(pid) {
			return nil, ErrAlreadyRunning
		}
		// Stale lock from a dead process; reclaim it.
		_ = os.Remove(path)
	}

	content := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lockfile. Safe to call once the widget exits.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	err := os.Remove(l.path)
	l.path = ""
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func readLockfile(path string) (int, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func processAlive(pid int) bool {
	proc, err := findProcessFunc(pid)
	if err != nil {
		// Process table unavailable; assume alive rather than risk two
		// widgets fighting over the same store.
		return true
	}
	return proc != nil
}
