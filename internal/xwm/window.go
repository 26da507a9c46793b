package xwm

import (
	"errors"
	"math"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var ErrWindowNotFound = errors.New("window not found")

const iconicState = 3

// FindWindowByPID walks the window tree below root looking for a
// window whose _NET_WM_PID matches pid. Window managers reparent
// client windows a level or two below the root, so the walk is
// breadth first and depth limited.
func FindWindowByPID(conn *xgb.Conn, atoms Atoms, root xproto.Window, pid uint32) (xproto.Window, error) {
	type entry struct {
		wid   xproto.Window
		depth int
	}

	queue := []entry{{wid: root}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if e.wid != root {
			if windowPID, ok := WindowPID(conn, atoms, e.wid); ok && windowPID == pid {
				return e.wid, nil
			}
		}

		if e.depth >= 4 {
			continue
		}

		tree, err := xproto.QueryTree(conn, e.wid).Reply()
		if err != nil {
			continue
		}
		for _, child := range tree.Children {
			queue = append(queue, entry{wid: child, depth: e.depth + 1})
		}
	}

	return 0, ErrWindowNotFound
}

// WindowPID reads _NET_WM_PID.
func WindowPID(conn *xgb.Conn, atoms Atoms, wid xproto.Window) (uint32, bool) {
	reply, err := xproto.GetProperty(conn, false, wid, atoms.NetWmPid, xproto.AtomCardinal, 0, 1).Reply()
	if err != nil || reply.ValueLen == 0 {
		return 0, false
	}
	return xgb.Get32(reply.Value), true
}

// WindowOrigin returns the window's top left corner in root
// coordinates.
func WindowOrigin(conn *xgb.Conn, root, wid xproto.Window) (x, y int16, err error) {
	reply, err := xproto.TranslateCoordinates(conn, wid, root, 0, 0).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.DstX, reply.DstY, nil
}

// MoveWindow repositions the window's top left corner in root
// coordinates.
func MoveWindow(conn *xgb.Conn, wid xproto.Window, x, y int) error {
	return xproto.ConfigureWindowChecked(conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(int32(x)), uint32(int32(y))}).
		Check()
}

// SelectStructureEvents asks for ConfigureNotify and DestroyNotify of
// a foreign window. Each X client holds its own event mask, so this
// does not disturb the engine's.
func SelectStructureEvents(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(conn, wid,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify}).
		Check()
}

// SetOpacity sets the compositor level opacity of a toplevel window
// via _NET_WM_WINDOW_OPACITY. 1 removes the property.
func SetOpacity(conn *xgb.Conn, atoms Atoms, wid xproto.Window, opacity float64) error {
	if opacity >= 1 {
		return xproto.DeletePropertyChecked(conn, wid, atoms.NetWmWindowOpacity).Check()
	}
	if opacity < 0 {
		opacity = 0
	}

	value := uint32(math.Round(opacity * math.MaxUint32))
	data := make([]byte, 4)
	xgb.Put32(data, value)

	return xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, wid,
		atoms.NetWmWindowOpacity, xproto.AtomCardinal, 32, 1, data).
		Check()
}

// SetFrameless strips native window decorations via Motif WM hints.
func SetFrameless(conn *xgb.Conn, atoms Atoms, wid xproto.Window) error {
	// flags = MWM_HINTS_DECORATIONS, decorations = 0
	hints := [5]uint32{2, 0, 0, 0, 0}
	data := make([]byte, 4*len(hints))
	for i, hint := range hints {
		xgb.Put32(data[4*i:], hint)
	}

	return xproto.ChangePropertyChecked(conn, xproto.PropModeReplace, wid,
		atoms.MotifWmHints, atoms.MotifWmHints, 32, uint32(len(hints)), data).
		Check()
}

// Iconify asks the window manager to minimize the window.
func Iconify(conn *xgb.Conn, atoms Atoms, root, wid xproto.Window) error {
	return sendClientMessage(conn, root, wid, atoms.WmChangeState,
		[5]uint32{iconicState, 0, 0, 0, 0})
}

// WindowStates reads the window's current _NET_WM_STATE atoms.
func WindowStates(conn *xgb.Conn, atoms Atoms, wid xproto.Window) ([]xproto.Atom, error) {
	reply, err := xproto.GetProperty(conn, false, wid, atoms.NetWmState, xproto.AtomAtom, 0, 32).Reply()
	if err != nil {
		return nil, err
	}

	states := make([]xproto.Atom, 0, reply.ValueLen)
	for i := uint32(0); i < reply.ValueLen; i++ {
		states = append(states, xproto.Atom(xgb.Get32(reply.Value[4*i:])))
	}
	return states, nil
}

// MaximizeToggleTarget reports whether a maximize request should
// maximize (true) or restore (false) given the window's current state
// atoms. A partially maximized window counts as not maximized and gets
// fully maximized.
func MaximizeToggleTarget(states []xproto.Atom, atoms Atoms) bool {
	horz, vert := false, false
	for _, state := range states {
		switch state {
		case atoms.NetWmStateMaxHorz:
			horz = true
		case atoms.NetWmStateMaxVert:
			vert = true
		}
	}
	return !(horz && vert)
}

// SetMaximized asks the window manager to maximize or restore the
// window in both axes.
func SetMaximized(conn *xgb.Conn, atoms Atoms, root, wid xproto.Window, maximized bool) error {
	// _NET_WM_STATE_REMOVE = 0, _NET_WM_STATE_ADD = 1
	action := uint32(0)
	if maximized {
		action = 1
	}

	return sendClientMessage(conn, root, wid, atoms.NetWmState,
		[5]uint32{action, uint32(atoms.NetWmStateMaxHorz), uint32(atoms.NetWmStateMaxVert), 1, 0})
}

// CloseWindow delivers WM_DELETE_WINDOW to the window, letting the
// engine shut its event loop down cleanly.
func CloseWindow(conn *xgb.Conn, atoms Atoms, wid xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   atoms.WmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(atoms.WmDeleteWindow), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}

	return xproto.SendEventChecked(conn, false, wid, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// sendClientMessage delivers a WM request about wid to the root
// window, the way EWMH asks clients to talk to the window manager.
func sendClientMessage(conn *xgb.Conn, root, wid xproto.Window, messageType xproto.Atom, data [5]uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   messageType,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}

	return xproto.SendEventChecked(conn, false, root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes())).
		Check()
}
