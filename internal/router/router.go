package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/qtime/internal/screen"
)

// Navigation messages. Screens return them from commands; the router
// applies them before anything reaches the active screen.
type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg goes back one screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen for Screen, so going back
	// skips the replaced one. The study screen uses it to hand over to
	// its summary.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router holds the screens the learner has navigated through. The last
// entry is the one shown; the first is never removed.
type Router struct {
	stack []screen.Screen
}

// New returns a Router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int {
	return len(r.stack) - 1
}

// Push shows s above the current screen.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop returns to the previous screen. At the root it does nothing.
func (r *Router) Pop() tea.Cmd {
	if r.top() < 1 {
		return nil
	}
	r.stack[r.top()] = nil
	r.stack = r.stack[:r.top()]
	return nil
}

// Replace swaps the shown screen for s.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if r.top() < 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

// Active is the screen being shown, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if r.top() < 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth counts the screens on the stack, root included.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages; any other message goes to the
// active screen, whose returned value replaces it.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	if r.top() < 0 {
		return nil
	}
	next, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View draws the active screen into a width x height area.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
