// Package tabs selects which results pane is visible.
package tabs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab is returned for identifiers outside the fixed tab set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one of the four result panes.
type Tab int

const (
	Summary Tab = iota
	Notes
	MindMap
	QnA
	tabCount
)

var (
	tabIDs    = [tabCount]string{"summary", "notes", "mindmap", "qna"}
	tabTitles = [tabCount]string{"Summary", "Notes", "Mind Map", "Q&A"}
	tabIcons  = [tabCount]string{"≡", "✎", "◈", "?"}
)

// All lists the tabs in display order.
func All() []Tab {
	return []Tab{Summary, Notes, MindMap, QnA}
}

// Valid reports whether t is one of the declared tabs.
func (t Tab) Valid() bool {
	return t >= 0 && t < tabCount
}

// String returns the tab identifier.
func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabIDs[t]
}

func (t Tab) Title() string {
	if !t.Valid() {
		return t.String()
	}
	return tabTitles[t]
}

func (t Tab) Icon() string {
	if !t.Valid() {
		return ""
	}
	return tabIcons[t]
}

// Parse maps an identifier such as "mindmap" to its Tab.
func Parse(id string) (Tab, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for i, candidate := range tabIDs {
		if candidate == id {
			return Tab(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTab, id)
}

// Router keeps exactly one tab active. The zero value has Summary active.
type Router struct {
	active Tab
}

// NewRouter starts on initial, or Summary if initial is not a real tab.
func NewRouter(initial Tab) *Router {
	r := &Router{}
	r.Select(initial)
	return r
}

// Select activates t. Out-of-range values leave the selection unchanged.
func (r *Router) Select(t Tab) bool {
	if !t.Valid() {
		return false
	}
	r.active = t
	return true
}

// SelectID activates the tab named id. An unknown id keeps the previous
// selection and reports ErrUnknownTab.
func (r *Router) SelectID(id string) error {
	t, err := Parse(id)
	if err != nil {
		return err
	}
	r.active = t
	return nil
}

func (r *Router) Next() Tab {
	r.active = (r.active + 1) % tabCount
	return r.active
}

func (r *Router) Prev() Tab {
	r.active = (r.active + tabCount - 1) % tabCount
	return r.active
}

// Active returns the selected tab.
func (r *Router) Active() Tab {
	return r.active
}

func (r *Router) IsActive(t Tab) bool {
	return r.active == t
}
