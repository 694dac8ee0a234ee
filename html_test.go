package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []link
	}{
		{
			name: "anchors in document order",
			html: `<DL><p>
<DT><A HREF="https://a.example" ADD_DATE="1">First</A>
<DT><A HREF="https://b.example">Second</A>
<DT><A HREF="https://c.example">Third</A>
</DL>`,
			want: []link{
				{Href: "https://a.example", Title: "First"},
				{Href: "https://b.example", Title: "Second"},
				{Href: "https://c.example", Title: "Third"},
			},
		},
		{
			name: "fragments are trimmed and joined with spaces",
			html: `<a href="x">  Course:  <b> Go </b>  | Udemy </a>`,
			want: []link{{Href: "x", Title: "Course: Go | Udemy"}},
		},
		{
			name: "missing href is empty",
			html: `<a name="top">Top</a>`,
			want: []link{{Href: "", Title: "Top"}},
		},
		{
			name: "text outside anchors is ignored",
			html: `<h3>Folder</h3><p>intro</p><a href="x">Inside</a><span>after</span>`,
			want: []link{{Href: "x", Title: "Inside"}},
		},
		{
			name: "character references are unescaped",
			html: `<a href="x">Rock &amp; Roll</a>`,
			want: []link{{Href: "x", Title: "Rock & Roll"}},
		},
		{
			name: "self-closing anchor emits an empty title",
			html: `<a href="x"/><a href="y">Y</a>`,
			want: []link{{Href: "x", Title: ""}, {Href: "y", Title: "Y"}},
		},
		{
			name: "stray closing tag is ignored",
			html: `</a><a href="x">X</a></a>`,
			want: []link{{Href: "x", Title: "X"}},
		},
		{
			name: "nested anchors merge into one entry",
			html: `<a href="outer">Outer <a href="inner">Inner</a> tail</a>`,
			want: []link{{Href: "inner", Title: "Outer Inner"}},
		},
		{
			name: "unterminated anchor is dropped",
			html: `<a href="x">X</a><a href="y">never closed`,
			want: []link{{Href: "x", Title: "X"}},
		},
		{
			name: "empty document",
			html: ``,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractLinks(tt.html))
		})
	}
}

func TestLinkCollectorStates(t *testing.T) {
	c := &linkCollector{}
	require.Equal(t, stateIdle, c.state)

	c.text("ignored")
	c.closeAnchor()
	require.Empty(t, c.links)

	c.openAnchor("x")
	require.Equal(t, stateCapturing, c.state)
	c.text(" a ")
	c.text("b")
	c.closeAnchor()
	require.Equal(t, stateIdle, c.state)
	require.Equal(t, []link{{Href: "x", Title: "a b"}}, c.links)
	require.Empty(t, c.buffer)
}
