package record

import (
	"errors"
	"fmt"
	"io"

	"listkit/sds"
	"listkit/util"
)

// Ordering is the outcome of comparing two values. Incomparable covers
// both an unusable key and "not equal" under the equality-only keys.
type Ordering int

const (
	Less         Ordering = -1
	Equal        Ordering = 0
	Greater      Ordering = 1
	Incomparable Ordering = 2
)

// Key selects which field a comparison looks at and whether the right
// hand side is another Record or a bare value.
type Key int

const (
	ByNumber    Key = iota + 1 // Record vs Record, three-way on Number
	ByText                     // Record vs Record, Text equality only
	ByRawNumber                // Record vs bare int, equality only
	ByRawText                  // Record vs bare string or []byte, equality only
)

var (
	ErrNilRecord = errors.New("record: nil record")
	ErrNilList   = errors.New("record: nil list")
)

// Record is one list payload: a number and an exclusively owned text
// buffer. New and Dup copy text in, Free releases it; no two live
// Records share a buffer.
type Record struct {
	Number int
	Text   sds.SDS
}

// New builds a Record from a number and a borrowed text buffer. The
// bytes are copied, the caller keeps ownership of text.
func New(number int, text []byte) *Record {
	return &Record{Number: number, Text: sds.NewLen(util.Bytes2String(text))}
}

// Free releases the Record's owned text. Freeing nil fails. Freeing the
// same Record twice is a caller bug, nil the handle after Free.
func Free(r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	r.Text = sds.SDS{}
	return nil
}

// Fprint writes the Record in its fixed textual form. The Record is not
// mutated.
func Fprint(w io.Writer, r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	_, err := fmt.Fprintf(w, "Data Element: %d %s\n",
		r.Number, util.Bytes2String(r.Text.BufData(0)))
	return err
}

// Compare orders two Records by Number alone. Equal numbers are Equal
// even when the text differs; this is the comparator sorting uses.
func Compare(a, b *Record) Ordering {
	if a == nil || b == nil {
		return Incomparable
	}
	switch {
	case a.Number < b.Number:
		return Less
	case a.Number > b.Number:
		return Greater
	}
	return Equal
}

// CompareWithKey compares a Record against other under key. ByNumber is
// the only three-way key. ByText, ByRawNumber and ByRawText answer
// equality only and never return Less or Greater: they exist for
// membership search, not for ordering, so do not sort with them. An
// unknown key or a right hand side of the wrong type is Incomparable.
func CompareWithKey(a *Record, other interface{}, key Key) Ordering {
	if a == nil {
		return Incomparable
	}
	switch key {
	case ByNumber:
		b, ok := other.(*Record)
		if !ok {
			return Incomparable
		}
		return Compare(a, b)
	case ByText:
		b, ok := other.(*Record)
		if !ok || b == nil {
			return Incomparable
		}
		if sds.Cmp(a.Text, b.Text) {
			return Equal
		}
		return Incomparable
	case ByRawNumber:
		n, ok := other.(int)
		if !ok {
			return Incomparable
		}
		if a.Number == n {
			return Equal
		}
		return Incomparable
	case ByRawText:
		switch v := other.(type) {
		case string:
			if util.StrCmp(a.Text.BufData(0), v) {
				return Equal
			}
		case []byte:
			if util.BytesCmp(a.Text.BufData(0), v) {
				return Equal
			}
		}
		return Incomparable
	}
	return Incomparable
}

// Dup deep-copies a Record. The copy owns a fresh text buffer and
// shares no storage with the source. Nil in, nil out.
func Dup(r *Record) *Record {
	if r == nil {
		return nil
	}
	return &Record{Number: r.Number, Text: sds.Dup(r.Text)}
}
