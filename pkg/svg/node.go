package svg

import (
	"bytes"
	"strings"
)

// Elem is a node in the document tree: a container (g, svg) with ordered
// children, or a leaf (path) carrying only attributes. Attribute order is
// preserved so serialization is deterministic.
type Elem struct {
	Tag      string
	Attrs    []Attr
	Children []*Elem
}

// Attr is a single markup attribute.
type Attr struct {
	Key, Value string
}

// NewElem creates an element with the given tag.
func NewElem(tag string) *Elem {
	return &Elem{Tag: tag}
}

// SetAttr sets an attribute, replacing an existing value for the same key
// while keeping its position. Returns the element for chaining.
func (e *Elem) SetAttr(key, value string) *Elem {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// Append adds child elements in order.
func (e *Elem) Append(children ...*Elem) *Elem {
	e.Children = append(e.Children, children...)
	return e
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// write serializes the element tree as indented balanced-tag markup.
// Leaf elements self-close.
func (e *Elem) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		attrEscaper.WriteString(buf, a.Value)
		buf.WriteByte('"')
	}
	if len(e.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">\n")
	for _, child := range e.Children {
		child.write(buf, depth+1)
	}
	buf.WriteString(indent)
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteString(">\n")
}

// Bytes serializes the element tree to text.
func (e *Elem) Bytes() []byte {
	var buf bytes.Buffer
	e.write(&buf, 0)
	return buf.Bytes()
}
