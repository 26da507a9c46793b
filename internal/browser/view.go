// Package browser hosts the embedded browser engine widget.
package browser

import (
	"log/slog"

	"github.com/ItsNotGoodName/x-webglass/internal/bus"
	webview "github.com/webview/webview_go"
)

// PageLoaded is published once per navigation when the page reports
// its load result through the bridge.
type PageLoaded struct {
	OK bool
}

type Config struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

// loadReportScript runs at document start and reports load completion
// exactly once. The engine has no load-finished signal of its own, so
// the page's window load event stands in for it. The window error
// event is deliberately not hooked: it fires for any uncaught page
// script exception, which is not a navigation failure, and a false
// report would latch and suppress injection for a page that rendered
// fine. A page that never finishes loading simply never reports.
const loadReportScript = `(function () {
	var reported = false;
	window.addEventListener('load', function () {
		if (reported) {
			return;
		}
		reported = true;
		__xwebglassLoadFinished(true);
	});
})();`

// clearBackgroundScript clears the view's own document background at
// document start. The engine fills new documents opaque white by
// default, which would defeat the compositor translucency before the
// injected stylesheet takes over.
const clearBackgroundScript = `(function () {
	if (document.documentElement) {
		document.documentElement.style.background = 'transparent';
	}
})();`

// View owns the toolkit event loop. Create and Run it on the same
// locked OS thread; every other method is safe from any goroutine.
type View struct {
	w        webview.WebView
	reported bool
}

func NewView(cfg Config) *View {
	w := webview.New(cfg.Debug)
	w.SetTitle(cfg.Title)
	w.SetSize(cfg.Width, cfg.Height, webview.HintNone)

	v := &View{w: w}

	w.Bind("__xwebglassLoadFinished", v.loadFinished)
	w.Init(loadReportScript)
	w.Init(clearBackgroundScript)

	return v
}

func (v *View) loadFinished(ok bool) {
	if v.reported {
		return
	}
	v.reported = true

	slog.Debug("Page load finished", "ok", ok)
	bus.Publish(PageLoaded{OK: ok})
}

// Navigate requests navigation to url. Load failure is only surfaced
// through PageLoaded; there is no retry.
func (v *View) Navigate(url string) {
	v.w.Dispatch(func() { v.w.Navigate(url) })
}

// Eval runs js in the context of the loaded page.
func (v *View) Eval(js string) {
	v.w.Dispatch(func() { v.w.Eval(js) })
}

// Run blocks until the window is closed.
func (v *View) Run() {
	v.w.Run()
}

// Terminate stops the event loop, unblocking Run.
func (v *View) Terminate() {
	v.w.Dispatch(v.w.Terminate)
}

func (v *View) Destroy() {
	v.w.Destroy()
}
