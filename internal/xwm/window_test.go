package xwm

import (
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestMaximizeToggleTarget(t *testing.T) {
	atoms := Atoms{
		NetWmStateMaxHorz: 301,
		NetWmStateMaxVert: 302,
	}
	other := xproto.Atom(999)

	tests := []struct {
		name     string
		states   []xproto.Atom
		expected bool
	}{
		{"normal window maximizes", nil, true},
		{"unrelated states maximize", []xproto.Atom{other}, true},
		{"only horizontal maximizes fully", []xproto.Atom{atoms.NetWmStateMaxHorz}, true},
		{"only vertical maximizes fully", []xproto.Atom{atoms.NetWmStateMaxVert}, true},
		{"maximized window restores", []xproto.Atom{atoms.NetWmStateMaxHorz, atoms.NetWmStateMaxVert}, false},
		{"maximized with extras restores", []xproto.Atom{other, atoms.NetWmStateMaxVert, atoms.NetWmStateMaxHorz}, false},
	}

	for _, test := range tests {
		if got := MaximizeToggleTarget(test.states, atoms); got != test.expected {
			t.Errorf("%s: MaximizeToggleTarget(%v) = %v, expected %v", test.name, test.states, got, test.expected)
		}
	}
}
