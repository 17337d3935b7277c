package pool

import (
	"io"

	"golang.org/x/net/html"
)

// extractLinks returns the href values of all anchor elements in an HTML
// document, in document order. Malformed markup is tolerated; the tokenizer
// simply stops at the end of input.
func extractLinks(r io.Reader) []string {
	var links []string
	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			if len(name) != 1 || name[0] != 'a' || !hasAttr {
				continue
			}
			for {
				key, val, more := tokenizer.TagAttr()
				if string(key) == "href" {
					links = append(links, string(val))
					break
				}
				if !more {
					break
				}
			}
		}
	}
}
