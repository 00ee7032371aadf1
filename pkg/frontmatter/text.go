package frontmatter

// Text is an immutable piece of document text, such as a body or the raw
// front matter block. Two Texts are equal when their contents are equal, so
// they can be compared with ==.
type Text struct {
	value string
}

// NewText wraps s.
func NewText(s string) Text {
	return Text{value: s}
}

// EmptyText returns a Text with no content.
func EmptyText() Text {
	return Text{}
}

// String returns the wrapped text byte for byte.
func (t Text) String() string {
	return t.value
}

// IsEmpty reports whether the text has no content.
func (t Text) IsEmpty() bool {
	return t.value == ""
}

// Len returns the length of the text in bytes.
func (t Text) Len() int {
	return len(t.value)
}

// Equal reports whether t and other hold the same text.
func (t Text) Equal(other Text) bool {
	return t.value == other.value
}
