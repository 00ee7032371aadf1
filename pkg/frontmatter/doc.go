// Package frontmatter splits a document into a front matter block and a
// body, and gives read access to the metadata decoded from the block.
//
// Front matter starts at the very first byte of the document with a line
// containing only "---" and ends at the next line containing "---". The text
// between the delimiters is decoded, YAML by default, and must be a mapping
// with string keys. Everything after the closing delimiter, and its line
// break if any, is the body.
//
// # Basic Usage
//
//	doc, err := frontmatter.Parse(content)
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, err := doc.FrontMatter().Get("title")
//	author, err := doc.FrontMatter().Get("head.meta.author")
//	fmt.Print(doc.Body())
//
// A document without front matter is not an error: its front matter is
// empty and the whole input is the body.
//
// # Dot Paths
//
// [Data.Has] and [Data.Get] accept dot paths. "head.meta.author" resolves
// the key "author" of the mapping under "meta" of the mapping under "head".
// Dots always separate segments; a key that itself contains dots cannot be
// reached with a path.
//
// # Values
//
// Decoded values are one of [Null], [Bool], [Number], [String], [Sequence]
// or [Mapping]:
//
//	switch v := value.(type) {
//	case frontmatter.String:
//		fmt.Println("text:", string(v))
//	case frontmatter.Sequence:
//		fmt.Println("items:", v.Len())
//	}
//
// # Formats
//
// The parser decodes YAML unless configured with another [Decoder]:
//
//	p := frontmatter.NewParser(frontmatter.WithDecoder(frontmatter.TOMLDecoder()))
//
// The delimiters are "---" whatever the format.
//
// # Error Handling
//
// The package defines sentinel errors that can be checked with [errors.Is]:
//
//   - [ErrFrontMatterCanNotBeParsed]: the block is not valid in the format
//   - [ErrFrontMatterIsNotAnObject]: the block is valid but not a mapping
//     with string keys
//   - [ErrKeyNotFound]: a key or path did not resolve
//   - [ErrInvalidKeys]: data was built from a mapping with non-string keys
package frontmatter
