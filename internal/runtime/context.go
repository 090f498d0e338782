package runtime

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"zikkycal.dev/zikkycal/internal/config"
	"zikkycal.dev/zikkycal/internal/engine"
	"zikkycal.dev/zikkycal/internal/tui"
)

// Context provides access to configuration and output for commands
type Context struct {
	context.Context
	Splog     *tui.Splog
	Config    config.Config
	SessionID string
}

// NewContext creates a context from already loaded parts
func NewContext(ctx context.Context, cfg config.Config, splog *tui.Splog, sessionID string) *Context {
	return &Context{
		Context:   ctx,
		Splog:     splog,
		Config:    cfg,
		SessionID: sessionID,
	}
}

// GetContext loads the user configuration and opens the session log.
// Console output goes to out. If the log file cannot be opened the
// session logs to the console only.
func GetContext(ctx context.Context, out io.Writer) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sessionID := uuid.NewString()
	splog, err := tui.NewSplogWithWriter(out, tui.GetLogFilePath(), sessionID)
	if err != nil {
		splog, _ = tui.NewSplogWithWriter(out, "", sessionID)
		splog.Debug("file logging disabled: %v", err)
	}
	splog.FileLogger().Debug("session started", "theme", cfg.Theme)

	return NewContext(ctx, cfg, splog, sessionID), nil
}

// NewEngine creates a calculator engine that writes to display and logs
// to the session log file
func (c *Context) NewEngine(display engine.Display) *engine.Engine {
	return engine.NewEngine(display, engine.WithLogger(c.Splog.FileLogger()))
}

// Close flushes and closes the session log
func (c *Context) Close() error {
	return c.Splog.Close()
}
