// Package inject carries the stylesheet that recolors the translator
// page so it blends with the translucent window, and the one shot
// injector that applies it after the first successful page load.
package inject

import (
	"context"
	"strconv"

	"github.com/ItsNotGoodName/x-webglass/internal/browser"
	"github.com/ItsNotGoodName/x-webglass/internal/bus"
)

// The selectors below are coupled to the markup of the remote page.
// If the page renames its utility classes the override silently stops
// matching; there is no detection of that.
const (
	darkBackgroundClass  = `.dark .dark\:bg-zinc-900`
	lightBackgroundClass = `.bg-white`
	// Header backgrounds ship at 80% opacity already and are listed
	// here untouched so nobody "fixes" them later.
	headerBackgroundClasses = `.dark .dark\:bg-zinc-900\/80, .bg-white\/80`
)

const stylesheet = `body, html {
  background-color: transparent !important;
  background: transparent !important;
}
` + darkBackgroundClass + ` {
  background-color: rgb(24 24 27 / 0.85) !important;
}
` + lightBackgroundClass + ` {
  background-color: rgb(255 255 255 / 0.85) !important;
}
/* already translucent, intentionally left alone */
` + headerBackgroundClasses + ` {
}
`

// Stylesheet returns the CSS override appended to the page. The text
// is fixed; callers may rely on it byte for byte.
func Stylesheet() string {
	return stylesheet
}

// Script returns the page script that appends the stylesheet as a
// style element in the document head.
func Script() string {
	return `(function () {
	var style = document.createElement('style');
	style.type = 'text/css';
	style.innerHTML = ` + strconv.Quote(stylesheet) + `;
	document.head.appendChild(style);
})();`
}

// Evaluator runs a script in the loaded page.
type Evaluator interface {
	Eval(js string)
}

// Injector applies the stylesheet at most once, and only when the
// page reported a successful load.
type Injector struct {
	view     Evaluator
	injected bool
}

// Attach subscribes an Injector to page load events from view.
func Attach(view Evaluator) *Injector {
	i := &Injector{view: view}
	bus.Subscribe("inject.Injector", func(ctx context.Context, event browser.PageLoaded) error {
		i.HandleLoadFinished(event.OK)
		return nil
	})
	return i
}

// HandleLoadFinished runs the injection script on the first successful
// load report. A failed load is skipped silently, with no retry.
func (i *Injector) HandleLoadFinished(ok bool) {
	if !ok || i.injected {
		return
	}
	i.injected = true

	i.view.Eval(Script())
}

// Injected reports whether the stylesheet has been applied.
func (i *Injector) Injected() bool {
	return i.injected
}
