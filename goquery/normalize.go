package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// normalize loosens the document structure so weekday headings and their
// meals end up as siblings. Line breaks become newline text, and div and
// span wrappers are removed while keeping their children.
func normalize(doc *goquery.Document) {
	doc.Find("script, style, noscript").Remove()

	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})

	doc.Find("div, span").Each(func(_ int, s *goquery.Selection) {
		contents := s.Contents()
		if contents.Length() == 0 {
			s.Remove()
			return
		}
		contents.Unwrap()
	})
}
