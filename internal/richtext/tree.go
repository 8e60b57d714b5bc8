package richtext

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a generic markup tree. Element nodes have a Tag; text nodes have
// an empty Tag and carry Text.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// TextNode returns a text leaf.
func TextNode(s string) *Node { return &Node{Text: s} }

// Element returns an element node.
func Element(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

var blockTags = map[string]bool{"div": true, "p": true, "li": true}

// FromTree rebuilds a buffer by walking root depth-first. Each element
// refines the format inherited from its parent; text leaves take the format
// in effect at their position.
func FromTree(root *Node, base Format) Buffer {
	var b Buffer
	walk(root, base, &b)
	return b
}

func walk(n *Node, f Format, b *Buffer) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		for _, r := range n.Text {
			*b = append(*b, Char{Rune: r, Format: f})
		}
		return
	}
	tag := strings.ToLower(n.Tag)
	if tag == "br" {
		*b = append(*b, Char{Rune: '\n', Format: f})
		return
	}
	if blockTags[tag] && len(*b) > 0 && (*b)[len(*b)-1].Rune != '\n' {
		*b = append(*b, Char{Rune: '\n', Format: f})
	}
	f = elementFormat(tag, n.Attrs, f)
	for _, c := range n.Children {
		walk(c, f, b)
	}
}

func elementFormat(tag string, attrs map[string]string, f Format) Format {
	switch tag {
	case "b", "strong":
		f.Bold = true
	case "i", "em":
		f.Italic = true
	case "u", "ins":
		f.Underlined = true
	case "s", "strike", "del":
		f.Strikethrough = true
	}
	f = styleFormat(attrs["style"], f)
	if c := attrs["data-color"]; c != "" {
		f.Color = Color(c)
	}
	if _, ok := attrs["data-obfuscated"]; ok {
		f.Obfuscated = true
	}
	for _, cls := range strings.Fields(attrs["class"]) {
		switch cls {
		case "mc-obf", "obfuscated":
			f.Obfuscated = true
		case "mc-bold":
			f.Bold = true
		case "mc-italic":
			f.Italic = true
		case "mc-underline":
			f.Underlined = true
		case "mc-strike":
			f.Strikethrough = true
		}
	}
	return f
}

// styleFormat reads the handful of inline CSS declarations an editor emits.
func styleFormat(style string, f Format) Format {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.ToLower(strings.TrimSpace(v))
		switch k {
		case "color":
			if v != "" {
				f.Color = Color(v)
			}
		case "font-weight":
			f.Bold = v == "bold" || v == "700" || v == "800" || v == "900"
		case "font-style":
			f.Italic = v == "italic"
		case "text-decoration", "text-decoration-line":
			if strings.Contains(v, "underline") {
				f.Underlined = true
			}
			if strings.Contains(v, "line-through") {
				f.Strikethrough = true
			}
		}
	}
	return f
}

// ParseHTML parses an editor's markup fragment into a Node tree rooted at a
// "body" element.
func ParseHTML(r io.Reader) (*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	root := &Node{Tag: "body"}
	for _, n := range nodes {
		if c := convert(n); c != nil {
			root.Children = append(root.Children, c)
		}
	}
	return root, nil
}

func convert(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return TextNode(n.Data)
	case html.ElementNode:
		out := &Node{Tag: strings.ToLower(n.Data), Attrs: make(map[string]string, len(n.Attr))}
		for _, a := range n.Attr {
			out.Attrs[strings.ToLower(a.Key)] = a.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if cn := convert(c); cn != nil {
				out.Children = append(out.Children, cn)
			}
		}
		return out
	}
	return nil
}
