package main

import (
	"strings"

	"golang.org/x/net/html"
)

// link is one anchor element: its href (empty when absent) and visible text.
type link struct {
	Href  string
	Title string
}

type captureState int

const (
	stateIdle captureState = iota
	stateCapturing
)

// linkCollector turns tokenizer events into links. It only knows about
// anchor open/close and text events, so it can be driven by any tokenizer.
type linkCollector struct {
	state  captureState
	href   string
	buffer []string
	links  []link
}

func (c *linkCollector) openAnchor(href string) {
	c.state = stateCapturing
	c.href = href
}

func (c *linkCollector) text(data string) {
	if c.state == stateCapturing {
		c.buffer = append(c.buffer, strings.TrimSpace(data))
	}
}

func (c *linkCollector) closeAnchor() {
	if c.state != stateCapturing {
		return
	}
	title := strings.TrimSpace(strings.Join(c.buffer, " "))
	c.links = append(c.links, link{Href: c.href, Title: title})
	c.buffer = c.buffer[:0]
	c.state = stateIdle
}

func extractLinks(htmlContent string) []link {
	collector := &linkCollector{}

	tokenizer := html.NewTokenizer(strings.NewReader(htmlContent))

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			// io.EOF or a malformed document, either way we keep what we have
			return collector.links
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			collector.openAnchor(hrefOf(token))
			if tokenType == html.SelfClosingTagToken {
				collector.closeAnchor()
			}
		case html.EndTagToken:
			token := tokenizer.Token()
			if token.Data == "a" {
				collector.closeAnchor()
			}
		case html.TextToken:
			collector.text(string(tokenizer.Text()))
		}
	}
}

func hrefOf(token html.Token) string {
	for _, attr := range token.Attr {
		if attr.Key == "href" {
			return attr.Val
		}
	}
	return ""
}
