package inject

import (
	"strings"
	"testing"
)

type fakeView struct {
	evals []string
}

func (f *fakeView) Eval(js string) {
	f.evals = append(f.evals, js)
}

func TestInjector_SuccessfulLoadInjectsOnce(t *testing.T) {
	view := &fakeView{}
	injector := &Injector{view: view}

	injector.HandleLoadFinished(true)

	if len(view.evals) != 1 {
		t.Fatalf("expected 1 eval, got %d", len(view.evals))
	}
	if view.evals[0] != Script() {
		t.Error("expected the injection script to be evaluated")
	}
	if !injector.Injected() {
		t.Error("expected injector to report injected")
	}

	// A repeated load report must not inject again.
	injector.HandleLoadFinished(true)
	if len(view.evals) != 1 {
		t.Fatalf("expected 1 eval after repeat, got %d", len(view.evals))
	}
}

func TestInjector_FailedLoadSkipsInjection(t *testing.T) {
	view := &fakeView{}
	injector := &Injector{view: view}

	injector.HandleLoadFinished(false)

	if len(view.evals) != 0 {
		t.Fatalf("expected no evals, got %d", len(view.evals))
	}
	if injector.Injected() {
		t.Error("expected injector to report not injected")
	}
}

func TestStylesheet_Exact(t *testing.T) {
	expected := `body, html {
  background-color: transparent !important;
  background: transparent !important;
}
.dark .dark\:bg-zinc-900 {
  background-color: rgb(24 24 27 / 0.85) !important;
}
.bg-white {
  background-color: rgb(255 255 255 / 0.85) !important;
}
/* already translucent, intentionally left alone */
.dark .dark\:bg-zinc-900\/80, .bg-white\/80 {
}
`

	if got := Stylesheet(); got != expected {
		t.Errorf("stylesheet mismatch:\ngot:\n%s\nexpected:\n%s", got, expected)
	}

	if Stylesheet() != Stylesheet() {
		t.Error("expected stylesheet to be stable")
	}
}

func TestScript(t *testing.T) {
	script := Script()

	for _, want := range []string{
		"document.createElement('style')",
		"document.head.appendChild(style)",
		`.dark .dark\\:bg-zinc-900`,
		"rgb(24 24 27 / 0.85)",
		"rgb(255 255 255 / 0.85)",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("expected script to contain %q", want)
		}
	}

	if Script() != Script() {
		t.Error("expected script to be stable")
	}
}
