package cli

import (
	"github.com/dayspan/dayspan/internal/autostart"
	"github.com/dayspan/dayspan/internal/shell"
	"github.com/dayspan/dayspan/internal/storage"
)

// Context carries the shared collaborators into every command.
type Context struct {
	Store     storage.Provider
	Autostart autostart.Manager
	Bus       *shell.Bus
	Host      shell.WindowHost
	Debug     bool
}
