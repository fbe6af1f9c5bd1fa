// Package report renders a table profile as a self-contained HTML document.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dbsmedya/tablestats/internal/stats"
)

//go:embed templates/profile.html
var templateFS embed.FS

var printer = message.NewPrinter(language.English)

var profileTemplate = template.Must(
	template.New("profile.html").Funcs(template.FuncMap{
		"group":   group,
		"safeURL": safeURL,
	}).ParseFS(templateFS, "templates/profile.html"),
)

// Context is the data the profile template renders.
type Context struct {
	TableID              string
	NumberOfVariables    int
	NumberOfObservations int64
	NumberOfBytes        int64
	Variables            []stats.ColumnReport
}

// NewContext builds the template context of a table summary.
func NewContext(s *stats.TableSummary) Context {
	return Context{
		TableID:              s.TableID,
		NumberOfVariables:    s.ColumnCount,
		NumberOfObservations: s.RowCount,
		NumberOfBytes:        s.ByteSize,
		Variables:            s.Columns,
	}
}

// Render writes the HTML report of s to w.
func Render(w io.Writer, s *stats.TableSummary) error {
	if s == nil {
		return fmt.Errorf("table summary is nil")
	}
	if err := profileTemplate.Execute(w, NewContext(s)); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// RenderString returns the HTML report of s.
func RenderString(s *stats.TableSummary) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// IFrame embeds an HTML document in an iframe through a data URL, for hosts
// that display HTML fragments inline.
func IFrame(doc, width, height string) string {
	src := "data:text/html;charset=utf-8," + strings.ReplaceAll(url.PathEscape(doc), "&", "%26")
	return fmt.Sprintf(`<iframe src="%s" width="%s" height="%s" frameborder="0"></iframe>`,
		src, html.EscapeString(width), html.EscapeString(height))
}

// group formats an integer with thousands separators.
func group(n any) string {
	return printer.Sprintf("%d", n)
}

// safeURL marks an image data URI as trusted. Only data:image URIs produced
// by the chart renderer are let through; anything else renders empty.
func safeURL(s string) template.URL {
	if !strings.HasPrefix(s, "data:image/") {
		return ""
	}
	return template.URL(s)
}
