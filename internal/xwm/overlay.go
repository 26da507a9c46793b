package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	buttonSize   uint16 = 12
	buttonGap    uint16 = 10
	buttonMargin uint16 = 10

	buttonPixel      = 0x52525b
	buttonClosePixel = 0xdc2626
)

// Overlay is the emulated window chrome of a frameless window: an
// input-only band across the top that receives drag gestures, and
// three control buttons stacked above it so presses on them never
// reach the band.
type Overlay struct {
	Band     xproto.Window
	Minimize xproto.Window
	Maximize xproto.Window
	Close    xproto.Window

	bandHeight uint16
}

// IsControl reports whether wid is one of the three control buttons.
func (o Overlay) IsControl(wid xproto.Window) bool {
	return wid == o.Minimize || wid == o.Maximize || wid == o.Close
}

type Cursors struct {
	Pointer xproto.Cursor
	Move    xproto.Cursor
	Hand    xproto.Cursor
}

// CreateOverlay creates the band and buttons as children of the shell
// window and maps them.
func CreateOverlay(conn *xgb.Conn, parent xproto.Window, width, bandHeight uint16, cursors Cursors) (Overlay, error) {
	band, err := xproto.NewWindowId(conn)
	if err != nil {
		return Overlay{}, err
	}

	// A press inside the band starts an automatic pointer grab, so
	// motion keeps arriving here even when the pointer leaves the band
	// mid drag.
	if err := xproto.CreateWindowChecked(conn, 0,
		band, parent,
		0, 0, width, bandHeight, 0,
		xproto.WindowClassInputOnly, 0,
		xproto.CwEventMask|xproto.CwCursor,
		[]uint32{
			xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskButton1Motion,
			uint32(cursors.Pointer),
		}).Check(); err != nil {
		return Overlay{}, err
	}

	o := Overlay{
		Band:       band,
		bandHeight: bandHeight,
	}

	buttons := []struct {
		wid   *xproto.Window
		pixel uint32
	}{
		{&o.Minimize, buttonPixel},
		{&o.Maximize, buttonPixel},
		{&o.Close, buttonClosePixel},
	}
	for _, button := range buttons {
		wid, err := xproto.NewWindowId(conn)
		if err != nil {
			return Overlay{}, err
		}

		if err := xproto.CreateWindowChecked(conn, 0,
			wid, parent,
			0, 0, buttonSize, buttonSize, 0,
			xproto.WindowClassInputOutput, 0,
			xproto.CwBackPixel|xproto.CwEventMask|xproto.CwCursor,
			[]uint32{
				button.pixel,
				xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease,
				uint32(cursors.Hand),
			}).Check(); err != nil {
			return Overlay{}, err
		}

		*button.wid = wid
	}

	if err := o.Layout(conn, width); err != nil {
		return Overlay{}, err
	}

	for _, wid := range []xproto.Window{o.Band, o.Minimize, o.Maximize, o.Close} {
		if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
			return Overlay{}, err
		}
	}

	return o, nil
}

// Layout stretches the band across the window and right aligns the
// buttons inside it. Called at creation and on every shell resize.
func (o Overlay) Layout(conn *xgb.Conn, width uint16) error {
	if err := xproto.ConfigureWindowChecked(conn, o.Band,
		xproto.ConfigWindowWidth,
		[]uint32{uint32(width)}).
		Check(); err != nil {
		return err
	}

	y, xs := buttonLayout(width, o.bandHeight)

	for i, wid := range []xproto.Window{o.Close, o.Maximize, o.Minimize} {
		if err := xproto.ConfigureWindowChecked(conn, wid,
			xproto.ConfigWindowX|xproto.ConfigWindowY,
			[]uint32{uint32(xs[i]), uint32(y)}).
			Check(); err != nil {
			return err
		}
	}

	return nil
}

// buttonLayout returns the vertical offset and the right aligned
// horizontal offsets of the close, maximize and minimize buttons. The
// math is done in int and clamped at zero so a band shorter than a
// button or a window too narrow to fit the row cannot wrap uint16 and
// fling the buttons offscreen.
func buttonLayout(width, bandHeight uint16) (y int, xs [3]int) {
	if bandHeight > buttonSize {
		y = int(bandHeight-buttonSize) / 2
	}

	x := int(width) - int(buttonMargin) - int(buttonSize)
	for i := range xs {
		if x < 0 {
			x = 0
		}
		xs[i] = x
		x -= int(buttonSize) + int(buttonGap)
	}
	return y, xs
}

// SetWindowCursor swaps the cursor shown over wid.
func SetWindowCursor(conn *xgb.Conn, wid xproto.Window, cursor xproto.Cursor) error {
	return xproto.ChangeWindowAttributesChecked(conn, wid,
		xproto.CwCursor,
		[]uint32{uint32(cursor)}).
		Check()
}
