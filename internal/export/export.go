// Package export routes export requests. Encoding to the target formats is
// not implemented yet; a request only announces what would happen.
package export

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/notify"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export target.
type Format string

const (
	PDF Format = "pdf"
	TXT Format = "txt"
	PNG Format = "png"
)

// Formats lists the supported targets in display order.
func Formats() []Format {
	return []Format{PDF, TXT, PNG}
}

func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case PDF, TXT, PNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

// Label is the upper-case name used in titles.
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

var advisories = map[Format]string{
	PDF: "PDF export functionality will be implemented using html2pdf.js",
	TXT: "TXT export functionality will be implemented using Blob API",
	PNG: "PNG export functionality will be implemented using html-to-image",
}

// Advisory is the message shown when f is requested.
func Advisory(f Format) string {
	return advisories[f]
}

// Backend encodes rendered results. Nothing calls it until real exports land.
type Backend interface {
	ExportPDF(content string) ([]byte, error)
	ExportTXT(content string) ([]byte, error)
	ExportPNG(content string) ([]byte, error)
}

// Dispatcher announces export requests through the notification presenter.
type Dispatcher struct {
	presenter *notify.Presenter
	log       logger.Logger
}

func NewDispatcher(presenter *notify.Presenter, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Dispatcher{presenter: presenter, log: log.With(logger.String("component", "export"))}
}

// Export raises one info notification for f in the export container.
func (d *Dispatcher) Export(f Format) (notify.Notification, tea.Cmd, error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return notify.Notification{}, nil, err
	}
	n, cmd := d.presenter.Show(notify.KindInfo, f.Label()+" Export", Advisory(f), notify.ContainerExport)
	d.log.Info("export requested", logger.String("format", string(f)))
	return n, cmd, nil
}
