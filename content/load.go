package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scrollway/phase"
)

// ErrInvalid marks a content document that cannot be displayed
var ErrInvalid = errors.New("invalid content")

// MaxLineLength bounds any single text field after sanitizing
const MaxLineLength = 240

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// Load reads a YAML document from path on top of Default
// Keys left out of the file keep their built-in values
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open content %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("content %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a YAML document from r on top of Default, then sanitizes and validates it
func Decode(r io.Reader) (Document, error) {
	doc := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	doc.sanitize()
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Validate checks the section order and every colour
func (d *Document) Validate() error {
	if len(d.Sections) != phase.Count {
		return fmt.Errorf("%w: want %d sections, got %d", ErrInvalid, phase.Count, len(d.Sections))
	}
	for i, s := range d.Sections {
		p := phase.FromIndex(i)
		if s.ID != p.String() {
			return fmt.Errorf("%w: section %d id %q, want %q", ErrInvalid, i, s.ID, p)
		}
		if s.Title == "" {
			return fmt.Errorf("%w: section %q has no title", ErrInvalid, s.ID)
		}
		for _, hex := range []string{s.TitleColor, s.SubtitleColor} {
			if _, err := colorful.Hex(hex); err != nil {
				return fmt.Errorf("%w: section %q colour %q", ErrInvalid, s.ID, hex)
			}
		}
	}
	if d.Final.Heading == "" {
		return fmt.Errorf("%w: final page has no heading", ErrInvalid)
	}
	return nil
}

func (d *Document) sanitize() {
	d.Header.Logo = sanitizeLine(d.Header.Logo)
	sanitizeLinks(d.Header.Links)
	for i := range d.Sections {
		s := &d.Sections[i]
		s.ID = strings.ToLower(sanitizeLine(s.ID))
		s.Title = sanitizeLine(s.Title)
		s.Description = sanitizeLine(s.Description)
		s.Subtitle = sanitizeLine(s.Subtitle)
		s.TitleColor = strings.TrimSpace(s.TitleColor)
		s.SubtitleColor = strings.TrimSpace(s.SubtitleColor)
		for j := range s.Details {
			s.Details[j] = sanitizeLine(s.Details[j])
		}
	}
	d.Final.Heading = sanitizeLine(d.Final.Heading)
	d.Final.Tagline = sanitizeLine(d.Final.Tagline)
	d.Final.Footer = sanitizeLine(d.Final.Footer)
	sanitizeLinks(d.Final.Actions)
}

func sanitizeLinks(links []Link) {
	for i := range links {
		links[i].Label = sanitizeLine(links[i].Label)
		links[i].URL = sanitizeLine(links[i].URL)
	}
}

// sanitizeLine strips ANSI sequences and control characters, turning tabs and newlines into spaces
func sanitizeLine(line string) string {
	line = ansiPattern.ReplaceAllString(line, "")

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		case r == unicode.ReplacementChar:
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	if len([]rune(out)) > MaxLineLength {
		out = string([]rune(out)[:MaxLineLength])
	}
	return out
}
