// SPDX-License-Identifier: MPL-2.0

// Package manual holds the Markdown manual pages of the utilities and renders
// them for the terminal.
package manual

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// NoTTYStyle renders without colors, for pipes and tests.
const NoTTYStyle = "notty"

//go:embed pages/*.md
var pageFS embed.FS

var pages = loadPages()

type (
	// Page is one manual page.
	Page struct {
		name    string
		md      string
		seeAlso []string
	}

	// RenderOptions controls terminal rendering.
	RenderOptions struct {
		// Style is a glamour standard style name; empty selects one from the
		// terminal background.
		Style string
		// Width wraps text at the given column; zero disables wrapping.
		Width int
	}
)

// Name returns the utility the page documents.
func (p *Page) Name() string {
	return p.name
}

// Markdown returns the page source.
func (p *Page) Markdown() string {
	return p.md
}

// Summary returns the one-line description from the page's Name section.
func (p *Page) Summary() string {
	_, rest, ok := strings.Cut(p.md, "**"+p.name+"** - ")
	if !ok {
		return ""
	}
	line, _, _ := strings.Cut(rest, "\n")
	return strings.TrimSpace(line)
}

// SeeAlso returns the related pages.
func (p *Page) SeeAlso() []string {
	return slices.Clone(p.seeAlso)
}

// Render renders the page, with a "See also" section listing related pages.
func (p *Page) Render(opts RenderOptions) (string, error) {
	md := p.md
	if len(p.seeAlso) > 0 {
		var b strings.Builder
		b.WriteString("\n\n## See also\n\n")
		for _, name := range p.seeAlso {
			fmt.Fprintf(&b, "- %s(1)\n", name)
		}
		md += b.String()
	}

	var rendererOpts []glamour.TermRendererOption
	if opts.Style == "" {
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	} else {
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}

// Names returns the documented utilities in sorted order.
func Names() []string {
	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.name)
	}
	return names
}

// Get returns the page for name, or nil.
func Get(name string) *Page {
	i := slices.IndexFunc(pages, func(p *Page) bool { return p.name == name })
	if i < 0 {
		return nil
	}
	return pages[i]
}

func loadPages() []*Page {
	entries, err := fs.ReadDir(pageFS, "pages")
	if err != nil {
		panic(err)
	}

	var all []*Page
	for _, e := range entries {
		data, err := fs.ReadFile(pageFS, path.Join("pages", e.Name()))
		if err != nil {
			panic(err)
		}
		all = append(all, &Page{
			name: strings.TrimSuffix(e.Name(), ".md"),
			md:   string(data),
		})
	}
	slices.SortFunc(all, func(a, b *Page) int { return strings.Compare(a.name, b.name) })

	for _, p := range all {
		for _, other := range all {
			if other != p {
				p.seeAlso = append(p.seeAlso, other.name)
			}
		}
	}
	return all
}
