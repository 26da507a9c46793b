// Cursor glyphs forked from https://github.com/BurntSushi/xgbutil/blob/master/xcursor/xcursor.go
package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	CursorFleur   = 52
	CursorHand2   = 60
	CursorLeftPtr = 68
)

// CreateCursor creates a black-on-white glyph cursor from the standard
// X cursor font.
func CreateCursor(conn *xgb.Conn, cursor uint16) (xproto.Cursor, error) {
	fontId, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, err
	}

	cursorId, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}

	err = xproto.OpenFontChecked(conn, fontId,
		uint16(len("cursor")), "cursor").Check()
	if err != nil {
		return 0, err
	}

	err = xproto.CreateGlyphCursorChecked(conn, cursorId, fontId, fontId,
		cursor, cursor+1,
		0, 0, 0,
		0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, err
	}

	err = xproto.CloseFontChecked(conn, fontId).Check()
	if err != nil {
		return 0, err
	}

	return cursorId, nil
}

// CreateCursors creates the cursors the chrome uses.
func CreateCursors(conn *xgb.Conn) (Cursors, error) {
	pointer, err := CreateCursor(conn, CursorLeftPtr)
	if err != nil {
		return Cursors{}, err
	}
	move, err := CreateCursor(conn, CursorFleur)
	if err != nil {
		return Cursors{}, err
	}
	hand, err := CreateCursor(conn, CursorHand2)
	if err != nil {
		return Cursors{}, err
	}

	return Cursors{
		Pointer: pointer,
		Move:    move,
		Hand:    hand,
	}, nil
}
