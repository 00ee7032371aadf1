package frontmatter

// FrontMatter pairs the raw front matter block, delimiters included, with the
// data decoded from it. A document without front matter has the empty
// FrontMatter, whose raw text and data are both empty.
type FrontMatter struct {
	raw  Text
	data Data
}

// NewFrontMatter returns a FrontMatter for the raw block and its data.
func NewFrontMatter(raw Text, data Data) FrontMatter {
	return FrontMatter{raw: raw, data: data}
}

// EmptyFrontMatter returns the FrontMatter of a document that has none.
func EmptyFrontMatter() FrontMatter {
	return FrontMatter{raw: EmptyText(), data: EmptyData()}
}

// Raw returns the block exactly as it appeared in the document.
func (f FrontMatter) Raw() Text {
	return f.raw
}

// Data returns the decoded data.
func (f FrontMatter) Data() Data {
	return f.data
}

// IsEmpty reports whether no front matter block was found.
func (f FrontMatter) IsEmpty() bool {
	return f.raw.IsEmpty()
}

// Has reports whether path resolves in the data.
func (f FrontMatter) Has(path string) bool {
	return f.data.Has(path)
}

// Get returns the value path resolves to in the data.
func (f FrontMatter) Get(path string) (Value, error) {
	return f.data.Get(path)
}

// Document is the result of splitting a text into front matter and body.
type Document struct {
	frontMatter FrontMatter
	body        Text
}

// NewDocument returns a Document made of frontMatter and body.
func NewDocument(frontMatter FrontMatter, body Text) Document {
	return Document{frontMatter: frontMatter, body: body}
}

// FrontMatter returns the front matter, which is empty if the document had
// none.
func (d Document) FrontMatter() FrontMatter {
	return d.frontMatter
}

// Body returns everything after the front matter block, byte for byte.
func (d Document) Body() Text {
	return d.body
}

// HasFrontMatter reports whether the document had a front matter block.
func (d Document) HasFrontMatter() bool {
	return !d.frontMatter.IsEmpty()
}
