package reconcile

import "github.com/npillmayer/restyle/dom/style"

// Pass denotes the kind of render pass a patch has been computed for.
type Pass uint8

// Kinds of render passes
const (
	Mount     Pass = iota // Engine.Create
	Rerender              // Engine.Update
	Serialize             // Engine.StyleString
)

func (p Pass) String() string {
	switch p {
	case Mount:
		return "mount"
	case Rerender:
		return "rerender"
	case Serialize:
		return "serialize"
	}
	return "unknown"
}

// Observer is notified about every patch the engine emits and every
// diagnostic it reports. Observers are called synchronously and must be
// cheap. See package metrics for an implementation.
type Observer interface {
	Patched(pass Pass, patch style.Map, resets int)
	Diagnosed(Diagnostic)
}

type nopObserver struct{}

func (nopObserver) Patched(Pass, style.Map, int) {}
func (nopObserver) Diagnosed(Diagnostic)         {}
