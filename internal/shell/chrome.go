package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ItsNotGoodName/x-webglass/internal/bus"
	"github.com/ItsNotGoodName/x-webglass/internal/config"
	"github.com/ItsNotGoodName/x-webglass/internal/gesture"
	"github.com/ItsNotGoodName/x-webglass/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

// How long to wait for the engine to map its toplevel window.
const attachTimeout = 15 * time.Second

// Chrome owns the X side of the shell: it attaches to the engine's
// toplevel window, applies translucency and framelessness, overlays
// the drag band and buttons, and runs the chrome event loop. Runs as a
// supervised service next to the engine's own event loop.
type Chrome struct {
	cfg      config.Config
	pid      uint32
	commands *bus.Hub[Command]
}

func NewChrome(cfg config.Config) *Chrome {
	return &Chrome{
		cfg:      cfg,
		pid:      uint32(os.Getpid()),
		commands: bus.NewHub[Command]().Register(),
	}
}

func (c *Chrome) String() string {
	return "shell.Chrome"
}

func (c *Chrome) Serve(ctx context.Context) error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	atoms, err := xwm.InternAtoms(conn)
	if err != nil {
		return err
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root

	shell, err := c.waitForShell(ctx, conn, atoms, root)
	if err != nil {
		return err
	}
	slog.Info("Attached to shell window", "wid", shell, "frameless", c.cfg.Frameless)

	if err := xwm.SetOpacity(conn, atoms, shell, c.cfg.Opacity); err != nil {
		return fmt.Errorf("set opacity: %w", err)
	}
	if err := xwm.SelectStructureEvents(conn, shell); err != nil {
		return fmt.Errorf("select events: %w", err)
	}

	model := Model{
		Atoms:     atoms,
		Root:      root,
		Shell:     shell,
		Frameless: c.cfg.Frameless,
		Drag:      gesture.NewRecognizer(c.cfg.BandHeight),
	}

	if c.cfg.Frameless {
		if err := xwm.SetFrameless(conn, atoms, shell); err != nil {
			return fmt.Errorf("set frameless: %w", err)
		}

		cursors, err := xwm.CreateCursors(conn)
		if err != nil {
			return err
		}

		geometry, err := xproto.GetGeometry(conn, xproto.Drawable(shell)).Reply()
		if err != nil {
			return err
		}

		overlay, err := xwm.CreateOverlay(conn, shell, geometry.Width, uint16(c.cfg.BandHeight), cursors)
		if err != nil {
			return fmt.Errorf("create overlay: %w", err)
		}

		model.Overlay = overlay
		model.Cursors = cursors
		model.Width = geometry.Width
	}

	eventC := make(chan xgb.Event)
	go xwm.ReceiveEvents(ctx, conn, eventC)

	commandC, unsubscribe := c.commands.Subscribe(ctx)
	defer unsubscribe()

	msgC := make(chan xwm.Msg)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case command := <-commandC:
				select {
				case <-ctx.Done():
					return
				case msgC <- command:
				}
			}
		}
	}()

	if err := xwm.HandleEvents(ctx, conn, model, eventC, msgC); err != nil {
		return err
	}

	// A clean loop exit means the shell window is gone and the process
	// is shutting down; restarting would just poll for a window that
	// will never reappear.
	return suture.ErrDoNotRestart
}

// waitForShell polls for the engine's toplevel window, which only
// exists once the engine has spun up its event loop.
func (c *Chrome) waitForShell(ctx context.Context, conn *xgb.Conn, atoms xwm.Atoms, root xproto.Window) (xproto.Window, error) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	deadline := time.NewTimer(attachTimeout)
	defer deadline.Stop()

	for {
		wid, err := xwm.FindWindowByPID(conn, atoms, root, c.pid)
		if err == nil {
			return wid, nil
		}
		if !errors.Is(err, xwm.ErrWindowNotFound) {
			return 0, err
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-deadline.C:
			return 0, fmt.Errorf("shell window for pid %d: %w", c.pid, xwm.ErrWindowNotFound)
		case <-ticker.C:
		}
	}
}
