package formulas

import (
	"unicode/utf8"

	"github.com/zform/zform/de"
	"github.com/zform/zform/errs"
	"github.com/zform/zform/schema"
	"github.com/zform/zform/ser"
)

// String is an unbounded, exact-size, heapless formula for a UTF-8 string.
// It satisfies NonRefFormula; being unbounded, it is still written behind a
// reference header when it is a WriteValue field or a Seq element.
type String struct{ schema.NonRefTag }

func (String) Bound() schema.Bound { return schema.Unbounded() }
func (String) ExactSize() bool     { return true }
func (String) Heapless() bool      { return true }

func (String) Serialize(s *ser.Serializer, v string) error {
	return s.WriteBytes([]byte(v))
}

func (String) Deserialize(d *de.Deserializer) (string, error) {
	b, err := d.ReadBytes(d.Stack())
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.NonUtf8Error{Err: errUtf8}
	}
	return string(b), nil
}

var errUtf8 = utf8Error{}

type utf8Error struct{}

func (utf8Error) Error() string { return "invalid utf-8 byte sequence" }
