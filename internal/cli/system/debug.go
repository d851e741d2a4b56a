package system

import (
	"fmt"
	"time"

	"github.com/dayspan/dayspan/internal/cli"
	"github.com/dayspan/dayspan/internal/schedule"
	settingsstore "github.com/dayspan/dayspan/internal/settings"
	"github.com/dayspan/dayspan/internal/utils"
)

type DebugCmd struct {
	Schedule DebugScheduleCmd `cmd:"" help:"Dump the resolved schedule for an instant."`
}

type DebugScheduleCmd struct {
	At string `help:"Instant to resolve (RFC3339). Defaults to now."`
}

func (c *DebugScheduleCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	if c.At != "" {
		parsed, err := time.ParseInLocation(time.RFC3339, c.At, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", c.At, err)
		}
		now = parsed
	}

	s := settingsstore.Load(ctx.Store)
	active := schedule.ResolveActive(now, s)
	percent := schedule.Progress(now, s)

	fmt.Printf("At:       %s (%s)\n", now.Format(time.RFC3339), now.Weekday())
	fmt.Printf("Window:   %s\n", utils.FormatWindow(active.Window))
	fmt.Printf("Start:    %s\n", active.Start.Format(time.RFC3339))
	fmt.Printf("End:      %s\n", active.End.Format(time.RFC3339))
	fmt.Printf("Progress: %.2f%%\n", percent)
	return nil
}
