package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Atoms struct {
	NetWmPid           xproto.Atom
	NetWmWindowOpacity xproto.Atom
	MotifWmHints       xproto.Atom
	WmChangeState      xproto.Atom
	NetWmState         xproto.Atom
	NetWmStateMaxHorz  xproto.Atom
	NetWmStateMaxVert  xproto.Atom
	WmProtocols        xproto.Atom
	WmDeleteWindow     xproto.Atom
}

// InternAtoms interns every atom the chrome needs in one round trip
// batch.
func InternAtoms(conn *xgb.Conn) (Atoms, error) {
	var atoms Atoms
	targets := []struct {
		name string
		atom *xproto.Atom
	}{
		{"_NET_WM_PID", &atoms.NetWmPid},
		{"_NET_WM_WINDOW_OPACITY", &atoms.NetWmWindowOpacity},
		{"_MOTIF_WM_HINTS", &atoms.MotifWmHints},
		{"WM_CHANGE_STATE", &atoms.WmChangeState},
		{"_NET_WM_STATE", &atoms.NetWmState},
		{"_NET_WM_STATE_MAXIMIZED_HORZ", &atoms.NetWmStateMaxHorz},
		{"_NET_WM_STATE_MAXIMIZED_VERT", &atoms.NetWmStateMaxVert},
		{"WM_PROTOCOLS", &atoms.WmProtocols},
		{"WM_DELETE_WINDOW", &atoms.WmDeleteWindow},
	}

	cookies := make([]xproto.InternAtomCookie, len(targets))
	for i, target := range targets {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(target.name)), target.name)
	}

	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return Atoms{}, err
		}
		*targets[i].atom = reply.Atom
	}

	return atoms, nil
}
