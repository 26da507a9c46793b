package shell

import (
	"context"
	"log/slog"

	"github.com/ItsNotGoodName/x-webglass/internal/gesture"
	"github.com/ItsNotGoodName/x-webglass/internal/xwm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type WindowAction int

const (
	ActionMinimize WindowAction = iota
	ActionMaximize
	ActionClose
)

// Command asks the chrome to perform a window action on behalf of an
// out of band caller such as the control API. The buttons go through
// the same code path.
type Command struct {
	Action WindowAction
}

// Model is the chrome state: the engine's toplevel window, the overlay
// and the drag recognizer. Updated by X events and Commands.
type Model struct {
	Atoms     xwm.Atoms
	Root      xproto.Window
	Shell     xproto.Window
	Frameless bool
	Overlay   xwm.Overlay
	Cursors   xwm.Cursors
	Drag      *gesture.Recognizer
	Width     uint16
}

func (m Model) Update(ctx context.Context, conn *xgb.Conn, msg xwm.Msg) (xwm.Model, xwm.Cmd) {
	switch ev := msg.(type) {
	case xproto.ButtonPressEvent:
		slog.Debug("ButtonPressEvent", "event", ev.String())

		if ev.Detail != xproto.ButtonIndex1 {
			return m, xwm.CmdNone
		}

		if m.Frameless && m.Overlay.IsControl(ev.Event) {
			m.press(conn, ev.Event)
			return m, xwm.CmdNone
		}

		if m.Frameless && ev.Event == m.Overlay.Band {
			x, y, err := xwm.WindowOrigin(conn, m.Root, m.Shell)
			if err != nil {
				slog.Error("Failed to query window origin", "error", err)
				return m, xwm.CmdNone
			}

			started := m.Drag.HandlePress(gesture.Press{
				LocalY: int(ev.EventY),
				Root:   gesture.Point{X: int(ev.RootX), Y: int(ev.RootY)},
				Origin: gesture.Point{X: int(x), Y: int(y)},
			})
			if started {
				if err := xwm.SetWindowCursor(conn, m.Overlay.Band, m.Cursors.Move); err != nil {
					slog.Error("Failed to set drag cursor", "error", err)
				}
			}
		}

		return m, xwm.CmdNone
	case xproto.MotionNotifyEvent:
		target, ok := m.Drag.HandleMotion(gesture.Point{X: int(ev.RootX), Y: int(ev.RootY)})
		if !ok {
			return m, xwm.CmdNone
		}

		if err := xwm.MoveWindow(conn, m.Shell, target.X, target.Y); err != nil {
			slog.Error("Failed to move window", "error", err)
		}

		return m, xwm.CmdNone
	case xproto.ButtonReleaseEvent:
		slog.Debug("ButtonReleaseEvent", "event", ev.String())

		if m.Drag.Dragging() {
			m.Drag.HandleRelease()
			if err := xwm.SetWindowCursor(conn, m.Overlay.Band, m.Cursors.Pointer); err != nil {
				slog.Error("Failed to restore cursor", "error", err)
			}
		}

		return m, xwm.CmdNone
	case xproto.ConfigureNotifyEvent:
		slog.Debug("ConfigureNotifyEvent", "event", ev.String())

		if ev.Window == m.Shell && m.Frameless && ev.Width != m.Width {
			m.Width = ev.Width
			if err := m.Overlay.Layout(conn, ev.Width); err != nil {
				slog.Error("Failed to lay out overlay", "error", err)
			}
		}

		return m, xwm.CmdNone
	case xproto.DestroyNotifyEvent:
		if ev.Window != m.Shell {
			return m, xwm.CmdNone
		}

		slog.Debug("exit: shell window destroyed")
		return m, xwm.CmdQuit
	case Command:
		m.perform(conn, ev.Action)
		return m, xwm.CmdNone
	default:
		slog.Debug("unknown event", "event", ev)
		return m, xwm.CmdNone
	}
}

// press maps a control button press to its window action.
func (m Model) press(conn *xgb.Conn, wid xproto.Window) {
	switch wid {
	case m.Overlay.Minimize:
		m.perform(conn, ActionMinimize)
	case m.Overlay.Maximize:
		m.perform(conn, ActionMaximize)
	case m.Overlay.Close:
		m.perform(conn, ActionClose)
	}
}

func (m Model) perform(conn *xgb.Conn, action WindowAction) {
	switch action {
	case ActionMinimize:
		if err := xwm.Iconify(conn, m.Atoms, m.Root, m.Shell); err != nil {
			slog.Error("Failed to minimize window", "error", err)
		}
	case ActionMaximize:
		// The toggle direction comes from the window's state at click
		// time, not from anything tracked here.
		states, err := xwm.WindowStates(conn, m.Atoms, m.Shell)
		if err != nil {
			slog.Error("Failed to query window state", "error", err)
			return
		}
		if err := xwm.SetMaximized(conn, m.Atoms, m.Root, m.Shell, xwm.MaximizeToggleTarget(states, m.Atoms)); err != nil {
			slog.Error("Failed to toggle maximize", "error", err)
		}
	case ActionClose:
		if err := xwm.CloseWindow(conn, m.Atoms, m.Shell); err != nil {
			slog.Error("Failed to close window", "error", err)
		}
	}
}
