// Package feed renders the activity feed as Atom.
package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/gewis/gewisweb-api/internal/application/ports"
)

const atomNS = "http://www.w3.org/2005/Atom"

var _ ports.FeedRenderer = (*AtomRenderer)(nil)

// AtomRenderer serialises a ports.Feed as an Atom 1.0 document.
type AtomRenderer struct{}

func NewAtomRenderer() *AtomRenderer { return &AtomRenderer{} }

func (r *AtomRenderer) Render(f ports.Feed) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("feed")
	root.CreateAttr("xmlns", atomNS)
	root.CreateAttr("xml:lang", f.Locale.String())

	root.CreateElement("id").SetText(f.ID)
	root.CreateElement("title").SetText(f.Title)
	root.CreateElement("updated").SetText(stamp(f.Updated))
	link(root, f.Link, "alternate")

	for _, e := range f.Entries {
		entry := root.CreateElement("entry")
		entry.CreateElement("id").SetText(e.ID)
		entry.CreateElement("title").SetText(e.Title)
		entry.CreateElement("updated").SetText(stamp(e.Updated))
		link(entry, e.Link, "alternate")

		summary := e.BeginTime.Format("02-01-2006 15:04") + " - " + e.EndTime.Format("02-01-2006 15:04")
		if e.Location != "" {
			summary += ", " + e.Location
		}
		if e.Summary != "" {
			summary += "\n\n" + e.Summary
		}
		s := entry.CreateElement("summary")
		s.CreateAttr("type", "text")
		s.SetText(summary)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("render atom feed: %w", err)
	}
	return out, nil
}

func link(parent *etree.Element, href, rel string) {
	if href == "" {
		return
	}
	l := parent.CreateElement("link")
	l.CreateAttr("rel", rel)
	l.CreateAttr("href", href)
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
