package frontmatter

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/fileutil"
)

// Delimiter opens and closes a front matter block.
const Delimiter = "---"

// delimiterPattern splits a document into the region after the opening
// delimiter, the closing delimiter and the body. The region is the shortest
// run that is followed by line breaks and a closing "---"; the closing
// delimiter may be followed by one line break, which then belongs to it.
var delimiterPattern = regexp.MustCompile(`(?s)\A---(.*?)[\r\n]+---(?:\r\n|\r|\n)?(.*)\z`)

// split holds the pieces of a document with a front matter block.
type split struct {
	raw    string
	region string
	body   string
}

// splitDocument finds the front matter block at the start of text.
func splitDocument(text string) (split, bool) {
	loc := delimiterPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return split{}, false
	}
	region := text[loc[2]:loc[3]]
	// The opening delimiter must be a line of its own: "----" never opens
	// a block.
	if region != "" && region[0] != '\n' && region[0] != '\r' {
		return split{}, false
	}
	return split{
		raw:    text[:loc[4]],
		region: region,
		body:   text[loc[4]:],
	}, true
}

// Option configures a Parser.
type Option func(*Parser)

// WithDecoder sets the decoder used for the front matter region. The
// default is YAML.
func WithDecoder(d Decoder) Option {
	return func(p *Parser) {
		if d != nil {
			p.decoder = d
		}
	}
}

// WithLogger sets the logger the parser reports its decisions to at debug
// level. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxFileSize limits how many bytes ParseFile and ParseReader read.
// Zero or less means fileutil.MaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(p *Parser) {
		p.maxFileSize = n
	}
}

// Parser splits documents into front matter and body. It holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	decoder     Decoder
	logger      *slog.Logger
	maxFileSize int64
}

// NewParser creates a Parser. Without options it decodes YAML.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		decoder: YAMLDecoder(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Decoder returns the decoder the parser hands front matter regions to.
func (p *Parser) Decoder() Decoder {
	return p.decoder
}

// HasFrontMatter reports whether text starts with a front matter block. It
// does not decode the block.
func (p *Parser) HasFrontMatter(text string) bool {
	_, ok := splitDocument(text)
	return ok
}

// Parse splits text into front matter and body and decodes the front
// matter.
//
// Text without a front matter block yields the empty FrontMatter and the
// whole text as body. A block with nothing but whitespace between the
// delimiters yields empty data. Otherwise the region is decoded: decoder
// failures match ErrFrontMatterCanNotBeParsed, and anything other than a
// mapping with string keys matches ErrFrontMatterIsNotAnObject. A null
// document, such as YAML holding only comments, yields empty data.
func (p *Parser) Parse(text string) (Document, error) {
	s, ok := splitDocument(text)
	if !ok {
		p.logger.Debug("no front matter found", "bytes", len(text))
		return NewDocument(EmptyFrontMatter(), NewText(text)), nil
	}

	raw := NewText(s.raw)
	body := NewText(s.body)

	if strings.TrimSpace(s.region) == "" {
		p.logger.Debug("front matter is blank", "raw_bytes", len(s.raw), "body_bytes", len(s.body))
		return NewDocument(NewFrontMatter(raw, EmptyData()), body), nil
	}

	v, err := p.decoder.Decode(s.region)
	if err != nil {
		return Document{}, &DecodeError{Format: p.decoder.Name(), Err: err}
	}

	data, err := dataFromValue(v)
	if err != nil {
		return Document{}, err
	}

	p.logger.Debug("front matter parsed",
		"format", p.decoder.Name(),
		"keys", data.Len(),
		"raw_bytes", len(s.raw),
		"body_bytes", len(s.body),
	)
	return NewDocument(NewFrontMatter(raw, data), body), nil
}

func dataFromValue(v Value) (Data, error) {
	switch v := v.(type) {
	case Null:
		return EmptyData(), nil
	case Mapping:
		data, err := FromMapping(v)
		if errors.Is(err, ErrInvalidKeys) {
			return Data{}, errors.Mark(err, ErrFrontMatterIsNotAnObject)
		}
		return data, err
	default:
		return Data{}, errors.Wrapf(ErrFrontMatterIsNotAnObject, "decoded a %s", v.Kind())
	}
}

// ParseReader reads r to the end, up to the parser's size limit, and parses
// it.
func (p *Parser) ParseReader(r io.Reader) (Document, error) {
	content, err := fileutil.ReadAllWithLimit(r, p.maxFileSize)
	if err != nil {
		return Document{}, errors.Wrap(err, "reading document")
	}
	return p.Parse(string(content))
}

// ParseFile reads the file at path, up to the parser's size limit, and
// parses it.
func (p *Parser) ParseFile(path string) (Document, error) {
	content, err := fileutil.ReadFileWithLimit(path, p.maxFileSize)
	if err != nil {
		return Document{}, errors.Wrapf(err, "reading %s", path)
	}
	doc, err := p.Parse(string(content))
	if err != nil {
		return Document{}, errors.Wrapf(err, "parsing %s", path)
	}
	return doc, nil
}

var defaultParser = NewParser()

// HasFrontMatter reports whether text starts with a front matter block.
func HasFrontMatter(text string) bool {
	return defaultParser.HasFrontMatter(text)
}

// Parse parses text with a YAML parser.
func Parse(text string) (Document, error) {
	return defaultParser.Parse(text)
}

// ParseFile parses the file at path with a YAML parser.
func ParseFile(path string) (Document, error) {
	return defaultParser.ParseFile(path)
}
