// Package notify keeps the transient notifications shown in the UI. Each
// notification removes itself after its expiry or on dismissal, whichever
// comes first.
package notify

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind is the notification severity.
type Kind int

const (
	KindError Kind = iota
	KindInfo
)

const (
	ErrorExpiry = 5 * time.Second
	InfoExpiry  = 4 * time.Second
)

func (k Kind) String() string {
	if k == KindInfo {
		return "info"
	}
	return "error"
}

// Expiry is how long a notification of kind k stays visible.
func (k Kind) Expiry() time.Duration {
	if k == KindInfo {
		return InfoExpiry
	}
	return ErrorExpiry
}

// Container names the region of the screen a notification is stacked in.
type Container string

const (
	ContainerInput  Container = "input-section"
	ContainerExport Container = "export-section"
)

// Notification is a single message.
type Notification struct {
	ID        int
	Kind      Kind
	Title     string
	Message   string
	Container Container
	CreatedAt time.Time
	Expiry    time.Duration
}

// ExpiresAt is the moment the notification must be gone.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Expiry)
}

// ExpiredMsg is delivered by the timer started in Show.
type ExpiredMsg struct {
	ID int
}

// Presenter owns every live notification. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Presenter struct {
	items  []Notification
	nextID int
	now    func() time.Time
}

// NewPresenter returns an empty presenter.
func NewPresenter() *Presenter {
	return &Presenter{now: time.Now}
}

// Show stacks a new notification in container and returns the timer that
// will expire it. A timer whose notification was already dismissed is a no-op
// when it fires, so the returned ID doubles as the cancellation handle.
func (p *Presenter) Show(kind Kind, title, message string, container Container) (Notification, tea.Cmd) {
	p.nextID++
	n := Notification{
		ID:        p.nextID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		Container: container,
		CreatedAt: p.now(),
		Expiry:    kind.Expiry(),
	}
	p.items = append(p.items, n)

	id := n.ID
	return n, tea.Tick(n.Expiry, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Dismiss removes a notification at the user's request.
func (p *Presenter) Dismiss(id int) bool {
	return p.remove(id)
}

// Expire removes a notification whose timer fired.
func (p *Presenter) Expire(id int) bool {
	return p.remove(id)
}

// Sweep drops everything past its expiry at now and reports how many went.
func (p *Presenter) Sweep(now time.Time) int {
	kept := p.items[:0]
	removed := 0
	for _, n := range p.items {
		if !now.Before(n.ExpiresAt()) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	p.items = kept
	return removed
}

func (p *Presenter) remove(id int) bool {
	for i, n := range p.items {
		if n.ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the notifications of container in insertion order.
func (p *Presenter) List(container Container) []Notification {
	var out []Notification
	for _, n := range p.items {
		if n.Container == container {
			out = append(out, n)
		}
	}
	return out
}

// Latest returns the most recently shown live notification in any of
// containers, or in any container when none are named.
func (p *Presenter) Latest(containers ...Container) (Notification, bool) {
	for i := len(p.items) - 1; i >= 0; i-- {
		n := p.items[i]
		if len(containers) == 0 || slices.Contains(containers, n.Container) {
			return n, true
		}
	}
	return Notification{}, false
}

// Len counts live notifications across all containers.
func (p *Presenter) Len() int {
	return len(p.items)
}
