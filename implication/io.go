package implication

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/katalvlaran/hasse/set"
)

// Sentinel errors for parsing and saving.
var (
	// ErrUnknownExtension indicates that no codec is registered for
	// the extension of the given filename.
	ErrUnknownExtension = errors.New("implication: unknown file extension")

	// ErrMalformedRule indicates a rule line without the "->" marker.
	ErrMalformedRule = errors.New("implication: malformed rule line")
)

// Codec reads and writes a System in one serialisation format.
type Codec interface {
	Parse(r io.Reader) (*System, error)
	Save(w io.Writer, s *System) error
}

// Factory maps filename extensions (without the dot) to codecs. Build
// custom factories with NewFactory and pass them to ParseFileWith /
// SaveFileWith; DefaultFactory serves the plain-text format.
type Factory struct {
	codecs map[string]Codec
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{codecs: make(map[string]Codec)}
}

// Register binds ext (without the dot) to codec, replacing any
// previous binding.
func (f *Factory) Register(ext string, codec Codec) {
	f.codecs[ext] = codec
}

// Lookup returns the codec bound to ext and whether one exists.
func (f *Factory) Lookup(ext string) (Codec, bool) {
	c, ok := f.codecs[ext]

	return c, ok
}

var (
	defaultOnce    sync.Once
	defaultFactory *Factory
)

// DefaultFactory returns the lazily initialised process-wide factory,
// with the text codec registered under "txt". The factory is
// read-mostly after initialisation; register additional codecs before
// spawning concurrent readers.
func DefaultFactory() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = NewFactory()
		defaultFactory.Register("txt", TextCodec{})
	})

	return defaultFactory
}

// TextCodec implements the line-oriented text format:
//
//	e1 e2 e3 ... en     ← ground set, whitespace-separated
//	p1 p2 -> c1 c2      ← zero or more rule lines
//
// Parsing drops rule tokens not declared on the first line and skips
// rules whose conclusion empties after the drop.
type TextCodec struct{}

// Parse reads a System from r.
func (TextCodec) Parse(r io.Reader) (*System, error) {
	sc := bufio.NewScanner(r)
	s := New()
	first := true
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if first {
			for _, e := range strings.Fields(text) {
				s.AddElement(e)
			}
			first = false

			continue
		}
		parts := strings.SplitN(text, "->", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRule, line, text)
		}
		premise, conclusion := set.New(), set.New()
		for _, e := range strings.Fields(parts[0]) {
			// undeclared elements are silently dropped from the rule
			if s.ground.Has(e) {
				premise.Add(e)
			}
		}
		for _, e := range strings.Fields(parts[1]) {
			if s.ground.Has(e) {
				conclusion.Add(e)
			}
		}
		if !conclusion.IsEmpty() {
			s.AddRule(NewRule(premise, conclusion))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("implication: parse: %w", err)
	}

	return s, nil
}

// Save writes s to w in the text format.
func (TextCodec) Save(w io.Writer, s *System) error {
	var sb strings.Builder
	writeText(&sb, s)
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("implication: save: %w", err)
	}

	return nil
}

// writeText renders s in the text format. Elements are emitted with
// internal whitespace squeezed out so the output stays tokenisable.
func writeText(sb *strings.Builder, s *System) {
	elems := s.ground.Elements()
	for i, e := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(squeeze(e))
	}
	sb.WriteByte('\n')
	for _, r := range s.sigma {
		for _, e := range r.premise.Elements() {
			sb.WriteString(squeeze(e))
			sb.WriteByte(' ')
		}
		sb.WriteString("->")
		for _, e := range r.conclusion.Elements() {
			sb.WriteByte(' ')
			sb.WriteString(squeeze(e))
		}
		sb.WriteByte('\n')
	}
}

// squeeze concatenates the whitespace-separated fragments of e.
func squeeze(e string) string {
	return strings.Join(strings.Fields(e), "")
}

// Parse reads a System from r in the text format.
func Parse(r io.Reader) (*System, error) {
	return TextCodec{}.Parse(r)
}

// ParseFile reads a System from path, picking the codec by file
// extension from the default factory.
func ParseFile(path string) (*System, error) {
	return ParseFileWith(DefaultFactory(), path)
}

// ParseFileWith reads a System from path, picking the codec by file
// extension from factory.
func ParseFileWith(factory *Factory, path string) (*System, error) {
	codec, ok := factory.Lookup(ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("implication: parse: %w", err)
	}
	defer f.Close()

	return codec.Parse(f)
}

// SaveFile writes s to path, picking the codec by file extension from
// the default factory.
func (s *System) SaveFile(path string) error {
	return s.SaveFileWith(DefaultFactory(), path)
}

// SaveFileWith writes s to path, picking the codec by file extension
// from factory. The file is closed on every path and close errors are
// reported.
func (s *System) SaveFileWith(factory *Factory, path string) error {
	codec, ok := factory.Lookup(ext(path))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExtension, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("implication: save: %w", err)
	}
	if err = codec.Save(f, s); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("implication: save: %w", err)
	}

	return nil
}

// ext extracts the filename extension without its dot.
func ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
