package model

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Level selects how much of an article the content service renders.
type Level int

const (
	// LevelLead covers only the introduction before the first section heading.
	LevelLead Level = iota
	// LevelFull covers the entire article body.
	LevelFull
)

// String returns the level name used in logs.
func (l Level) String() string {
	switch l {
	case LevelLead:
		return "lead"
	case LevelFull:
		return "full"
	default:
		return "unknown"
	}
}

// contentSelector locates the rendered article body inside a parsed page.
const contentSelector = "div.mw-parser-output"

// Document is one article's rendered markup at a single detail level.
// It lives for exactly one traversal step: fetched, scanned for the first
// qualifying link, then discarded.
type Document struct {
	// Title is the canonical, redirect-resolved title of the article.
	Title string

	// Level records how much of the article the markup covers.
	Level Level

	root *goquery.Document
}

// NewDocument parses rendered article markup into a Document.
func NewDocument(title string, level Level, r io.Reader) (*Document, error) {
	root, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse article markup: %w", err)
	}
	return &Document{
		Title: title,
		Level: level,
		root:  root,
	}, nil
}

// Content returns the article body subtree. Rendered API responses wrap the
// body in a parser-output container; markup without one (fixtures, bare
// fragments) falls back to the whole document body.
func (d *Document) Content() *goquery.Selection {
	if s := d.root.Find(contentSelector); s.Length() > 0 {
		return s
	}
	return d.root.Find("body")
}
