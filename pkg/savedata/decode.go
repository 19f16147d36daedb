// avsg-go: Axiom Verge save game inspector
// Copyright (C) 2018  Yishen Miao
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package savedata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/encoding/unicode"

	"github.com/mys721tx/avsg-go/internal/enum"
	"github.com/mys721tx/avsg-go/pkg/creature"
)

var (
	// ErrInvalidUTF8 is returned when the save data is not UTF-8 text,
	// usually because it is still encrypted.
	ErrInvalidUTF8 = errors.New("save data is not valid UTF-8")
	// ErrUnknownElement is returned for an element the schema does not list.
	ErrUnknownElement = errors.New("unknown element")
	// ErrMissingField is returned when a required element is missing.
	ErrMissingField = errors.New("missing required element")
	// ErrDuplicateField is returned when a single valued element repeats.
	ErrDuplicateField = errors.New("duplicate element")
	// ErrInvalidValue is returned when element content cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")
)

// DecodeError reports where in the document decoding failed.
type DecodeError struct {
	// Path is the slash separated element path, e.g.
	// "THSaveData/THItemRecord/mType".
	Path string
	// Line is the input line the decoder had reached.
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("%s (line %d): %v", e.Path, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}

	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// Decode decodes a plaintext save file.
func Decode(data []byte) (*SaveData, error) {
	data, err := normalize(data)
	if err != nil {
		return nil, err
	}

	d := newDecoder(bytes.NewReader(data))

	start, err := d.root()
	if err != nil {
		return nil, err
	}

	if start.Name.Local != RootTag {
		return nil, d.errorf(start.Name.Local, "%w: document element <%s>, want <%s>",
			ErrUnknownElement, start.Name.Local, RootTag)
	}

	s := new(SaveData)

	d.push(RootTag)

	if err := d.record(s.schema(), s.bind()); err != nil {
		return nil, d.wrap(err)
	}

	d.pop()

	if err := d.end(); err != nil {
		return nil, err
	}

	return s, nil
}

// normalize turns the save data into BOM-less UTF-8. The PC release writes
// UTF-8; UTF-16 is accepted when it carries a byte order mark.
func normalize(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()

		b, err := dec.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
		}

		data = b
	}

	data = bytes.TrimPrefix(data, bomUTF8)

	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	return data, nil
}

type decoder struct {
	dec  *xml.Decoder
	path []string
}

func newDecoder(r io.Reader) *decoder {
	dec := xml.NewDecoder(r)

	// The text is UTF-8 by now, whatever the declaration says.
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		if strings.HasPrefix(strings.ToLower(label), "utf-16") {
			return input, nil
		}

		return nil, fmt.Errorf("unsupported encoding %q", label)
	}

	return &decoder{dec: dec}
}

func (d *decoder) line() int {
	line, _ := d.dec.InputPos()

	return line
}

func (d *decoder) push(tag string) {
	d.path = append(d.path, tag)
}

func (d *decoder) pop() {
	d.path = d.path[:len(d.path)-1]
}

// wrap attaches the current path to err unless it already has one.
func (d *decoder) wrap(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	return &DecodeError{Path: strings.Join(d.path, "/"), Line: d.line(), Err: err}
}

// errorf returns a DecodeError for the child element tag of the current path.
func (d *decoder) errorf(tag, format string, args ...interface{}) error {
	path := append(append([]string(nil), d.path...), tag)

	return &DecodeError{
		Path: strings.Join(path, "/"),
		Line: d.line(),
		Err:  fmt.Errorf(format, args...),
	}
}

func (d *decoder) token() (xml.Token, error) {
	tok, err := d.dec.Token()
	if err == io.EOF {
		return nil, d.wrap(io.ErrUnexpectedEOF)
	}

	if err != nil {
		return nil, d.wrap(err)
	}

	return tok, nil
}

// root returns the document element.
func (d *decoder) root() (xml.StartElement, error) {
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, d.wrap(fmt.Errorf("%w: no <%s> element", ErrMissingField, RootTag))
		}

		if err != nil {
			return xml.StartElement{}, d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return xml.StartElement{}, d.wrap(fmt.Errorf("%w: text before <%s>", ErrInvalidValue, RootTag))
			}
		}
	}
}

// end checks that nothing but whitespace, comments and processing
// instructions follow the document element.
func (d *decoder) end() error {
	for {
		tok, err := d.dec.Token()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return d.wrap(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return d.errorf(t.Name.Local, "%w: element after <%s>", ErrUnknownElement, RootTag)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return d.wrap(fmt.Errorf("%w: text after <%s>", ErrInvalidValue, RootTag))
			}
		}
	}
}

// record decodes the children of the element just read into the fields
// bound in b. It consumes the matching end element.
func (d *decoder) record(s *Schema, b map[string]binder) error {
	seen := make(map[string]bool, len(s.Fields))

	for {
		tok, err := d.token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			tag := t.Name.Local

			f, ok := s.ByTag(tag)
			if !ok {
				return d.errorf(tag, "%w <%s> in %s", ErrUnknownElement, tag, s.Record)
			}

			if seen[f.Name] && !f.Repeated {
				return d.errorf(tag, "%w <%s> in %s", ErrDuplicateField, tag, s.Record)
			}

			seen[f.Name] = true

			fb, ok := b[f.Name]
			if !ok {
				panic(fmt.Sprintf("savedata: %s.%s is not bound", s.Record, f.Name))
			}

			d.push(tag)

			if err := fb.elem(d, t); err != nil {
				return d.wrap(err)
			}

			d.pop()
		case xml.EndElement:
			return d.missing(s, b, seen)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return d.wrap(fmt.Errorf("%w: unexpected text %q in %s",
					ErrInvalidValue, strings.TrimSpace(string(t)), s.Record))
			}
		}
	}
}

// missing applies defaults and reports required fields that were not seen.
func (d *decoder) missing(s *Schema, b map[string]binder, seen map[string]bool) error {
	for _, f := range s.Fields {
		if seen[f.Name] {
			continue
		}

		if f.Default != "" {
			if err := b[f.Name].text(f.Default); err != nil {
				return d.errorf(f.Tag, "default: %w", err)
			}

			continue
		}

		if f.Optional || f.Repeated {
			continue
		}

		return d.wrap(fmt.Errorf("%w <%s> in %s", ErrMissingField, f.Tag, s.Record))
	}

	return nil
}

// text returns the character data of the element just read and consumes its
// end element.
func (d *decoder) text() (string, error) {
	var sb strings.Builder

	for {
		tok, err := d.token()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		case xml.StartElement:
			return "", d.errorf(t.Name.Local, "%w: unexpected element <%s> in text",
				ErrInvalidValue, t.Name.Local)
		}
	}
}

// isNil reports whether an element carries xsi:nil="true".
func isNil(start xml.StartElement) bool {
	for _, a := range start.Attr {
		if a.Name.Local == "nil" && (a.Name.Space == xsiNamespace || a.Name.Space == "xsi") {
			return strings.TrimSpace(a.Value) == "true"
		}
	}

	return false
}

// binder decodes one field. text is set for scalar fields and is used to
// apply schema defaults.
type binder struct {
	elem func(d *decoder, start xml.StartElement) error
	text func(s string) error
}

type recordPtr[T any] interface {
	*T
	schema() *Schema
	bind() map[string]binder
}

func value[T any](p *T, parse func(string) (T, error)) binder {
	set := func(s string) error {
		v, err := parse(s)
		if err != nil {
			return err
		}

		*p = v

		return nil
	}

	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			s, err := d.text()
			if err != nil {
				return err
			}

			return set(s)
		},
		text: set,
	}
}

func optValue[T any](p *Optional[T], parse func(string) (T, error)) binder {
	set := func(s string) error {
		v, err := parse(s)
		if err != nil {
			return err
		}

		*p = Some(v)

		return nil
	}

	return binder{
		elem: func(d *decoder, start xml.StartElement) error {
			if isNil(start) {
				*p = None[T]()
				return d.dec.Skip()
			}

			s, err := d.text()
			if err != nil {
				return err
			}

			return set(s)
		},
		text: set,
	}
}

func list[T any](p *[]T, parse func(string) (T, error)) binder {
	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			s, err := d.text()
			if err != nil {
				return err
			}

			v, err := parse(s)
			if err != nil {
				return err
			}

			*p = append(*p, v)

			return nil
		},
	}
}

func optList[T any](p *Optional[[]T], parse func(string) (T, error)) binder {
	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			s, err := d.text()
			if err != nil {
				return err
			}

			v, err := parse(s)
			if err != nil {
				return err
			}

			*p = Some(append(p.OrZero(), v))

			return nil
		},
	}
}

// stringSet decodes a repeated string element into a set. Order of first
// appearance is kept.
func stringSet(p *Optional[[]string]) binder {
	seen := mapset.New[string]()

	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			s, err := d.text()
			if err != nil {
				return err
			}

			if !seen.Has(s) {
				seen.Put(s)
				*p = Some(append(p.OrZero(), s))
			}

			return nil
		},
	}
}

// creatureSet decodes the glitch log. The game logs each creature once;
// repeats are dropped.
func creatureSet(p *Optional[[]creature.Creature]) binder {
	seen := mapset.New[creature.Creature]()

	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			s, err := d.text()
			if err != nil {
				return err
			}

			c, err := creature.Tokens.Parse(strings.TrimSpace(s))
			if err != nil {
				return err
			}

			if !seen.Has(c) {
				seen.Put(c)
				*p = Some(append(p.OrZero(), c))
			}

			return nil
		},
	}
}

// dictionary decodes an element whose children map keys to text values.
func dictionary(p *Optional[map[string]string]) binder {
	return binder{
		elem: func(d *decoder, start xml.StartElement) error {
			if isNil(start) {
				*p = None[map[string]string]()
				return d.dec.Skip()
			}

			m := make(map[string]string)

			for {
				tok, err := d.token()
				if err != nil {
					return err
				}

				switch t := tok.(type) {
				case xml.StartElement:
					key := t.Name.Local

					if _, ok := m[key]; ok {
						return d.errorf(key, "%w <%s>", ErrDuplicateField, key)
					}

					d.push(key)

					v, err := d.text()
					if err != nil {
						return d.wrap(err)
					}

					d.pop()

					m[key] = v
				case xml.EndElement:
					*p = Some(m)
					return nil
				case xml.CharData:
					if len(bytes.TrimSpace(t)) != 0 {
						return fmt.Errorf("%w: unexpected text in dictionary", ErrInvalidValue)
					}
				}
			}
		},
	}
}

func record[T any, P recordPtr[T]](p *T) binder {
	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			r := P(p)

			return d.record(r.schema(), r.bind())
		},
	}
}

func recordList[T any, P recordPtr[T]](p *[]T) binder {
	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			var v T

			r := P(&v)
			if err := d.record(r.schema(), r.bind()); err != nil {
				return err
			}

			*p = append(*p, v)

			return nil
		},
	}
}

func optRecordList[T any, P recordPtr[T]](p *Optional[[]T]) binder {
	return binder{
		elem: func(d *decoder, _ xml.StartElement) error {
			var v T

			r := P(&v)
			if err := d.record(r.schema(), r.bind()); err != nil {
				return err
			}

			*p = Some(append(p.OrZero(), v))

			return nil
		},
	}
}

func invalid(s, kind string) error {
	return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidValue, s, kind)
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, invalid(s, "int")
	}

	return int(v), nil
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, invalid(s, "long")
	}

	return v, nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, invalid(s, "uint")
	}

	return uint32(v), nil
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, invalid(s, "float")
	}

	return float32(v), nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, invalid(s, "double")
	}

	return v, nil
}

// parseBool accepts the xsd:boolean lexical forms.
func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}

	return false, invalid(s, "boolean")
}

func parseEnum[E comparable](t *enum.Table[E]) func(string) (E, error) {
	return func(s string) (E, error) {
		return t.Parse(strings.TrimSpace(s))
	}
}
