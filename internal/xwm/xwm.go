// Package xwm talks to the X server: it finds the engine's toplevel
// window, applies the translucent frameless look, overlays the drag
// band and control buttons, and pumps events into an update loop.
package xwm

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
)

// Msg is an X event or an application message. Msgs trigger the update
// function.
type Msg any

// Cmd is returned by an update to steer the event loop.
type Cmd int

const (
	CmdNone Cmd = iota
	CmdQuit
)

type Model interface {
	// Update is called for every message. It returns the next model
	// and a command for the loop.
	Update(ctx context.Context, conn *xgb.Conn, msg Msg) (Model, Cmd)
}

// ReceiveEvents pumps X events into eventC until the connection dies
// or ctx ends. Closing the connection unblocks it.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, eventC chan<- xgb.Event) {
	defer close(eventC)

	for {
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("X connection closed")
			return
		}
		if err != nil {
			slog.Error("Failed to receive X event", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}

// HandleEvents runs the update loop over X events and application
// messages until the model quits, the event channel closes or ctx
// ends.
func HandleEvents(ctx context.Context, conn *xgb.Conn, model Model, eventC <-chan xgb.Event, msgC <-chan Msg) error {
	for {
		var msg Msg
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventC:
			if !ok {
				return nil
			}
			msg = ev
		case m := <-msgC:
			msg = m
		}

		var cmd Cmd
		model, cmd = model.Update(ctx, conn, msg)
		if cmd == CmdQuit {
			return nil
		}
	}
}
