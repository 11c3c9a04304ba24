package record

import (
	"bytes"
	"testing"

	"listkit/sds"
)

func TestNewCopiesInput(t *testing.T) {
	buf := []byte("Hello")
	r := New(13, buf)

	buf[0] = 'J'
	if got := string(r.Text.BufData(0)); got != "Hello" {
		t.Errorf("Record text = %q, mutating the input buffer leaked in", got)
	}
	if r.Number != 13 {
		t.Errorf("Number = %d, want 13", r.Number)
	}
}

func TestNewEmptyText(t *testing.T) {
	r := New(1, nil)
	if got := sds.Len(r.Text); got != 0 {
		t.Errorf("empty text length = %d, want 0", got)
	}
}

func TestFree(t *testing.T) {
	if err := Free(nil); err != ErrNilRecord {
		t.Errorf("Free(nil) = %v, want ErrNilRecord", err)
	}

	r := New(1, []byte("abc"))
	if err := Free(r); err != nil {
		t.Fatalf("Free = %v", err)
	}
	if sds.Len(r.Text) != 0 {
		t.Errorf("text not released, length = %d", sds.Len(r.Text))
	}
}

func TestFprint(t *testing.T) {
	var out bytes.Buffer
	if err := Fprint(&out, nil); err != ErrNilRecord {
		t.Errorf("Fprint(nil) = %v, want ErrNilRecord", err)
	}

	out.Reset()
	if err := Fprint(&out, New(13, []byte("Hello"))); err != nil {
		t.Fatalf("Fprint = %v", err)
	}
	if got := out.String(); got != "Data Element: 13 Hello\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCompare(t *testing.T) {
	a := New(1, []byte("a"))
	b := New(2, []byte("b"))
	c := New(2, []byte("c"))

	if got := Compare(a, b); got != Less {
		t.Errorf("Compare(1,2) = %v, want Less", got)
	}
	if got := Compare(b, a); got != Greater {
		t.Errorf("Compare(2,1) = %v, want Greater", got)
	}
	// Ties are Equal even when the text differs.
	if got := Compare(b, c); got != Equal {
		t.Errorf("Compare(2,2) = %v, want Equal", got)
	}
	if got := Compare(nil, a); got != Incomparable {
		t.Errorf("Compare(nil, a) = %v, want Incomparable", got)
	}
	if got := Compare(a, nil); got != Incomparable {
		t.Errorf("Compare(a, nil) = %v, want Incomparable", got)
	}
}

func TestCompareWithKey(t *testing.T) {
	a := New(5, []byte("Donald"))
	sameText := New(9, []byte("Donald"))
	otherText := New(5, []byte("Louie"))

	tests := []struct {
		name  string
		other interface{}
		key   Key
		want  Ordering
	}{
		{"number less", New(9, []byte("x")), ByNumber, Less},
		{"number greater", New(1, []byte("x")), ByNumber, Greater},
		{"number equal", New(5, []byte("x")), ByNumber, Equal},
		{"number wrong type", "nope", ByNumber, Incomparable},
		{"text equal", sameText, ByText, Equal},
		{"text not equal", otherText, ByText, Incomparable},
		{"text wrong type", 5, ByText, Incomparable},
		{"raw number equal", 5, ByRawNumber, Equal},
		{"raw number not equal", 6, ByRawNumber, Incomparable},
		{"raw number wrong type", "5", ByRawNumber, Incomparable},
		{"raw text string equal", "Donald", ByRawText, Equal},
		{"raw text bytes equal", []byte("Donald"), ByRawText, Equal},
		{"raw text not equal", "Louie", ByRawText, Incomparable},
		{"raw text wrong type", 1, ByRawText, Incomparable},
		{"invalid key", sameText, Key(9), Incomparable},
	}
	for _, tt := range tests {
		if got := CompareWithKey(a, tt.other, tt.key); got != tt.want {
			t.Errorf("%s: CompareWithKey = %v, want %v", tt.name, got, tt.want)
		}
	}

	if got := CompareWithKey(nil, a, ByNumber); got != Incomparable {
		t.Errorf("nil record: CompareWithKey = %v, want Incomparable", got)
	}
}

func TestDupNoAliasing(t *testing.T) {
	if Dup(nil) != nil {
		t.Error("Dup(nil) != nil")
	}

	r := New(7, []byte("Webby"))
	cp := Dup(r)
	if Compare(r, cp) != Equal {
		t.Fatalf("Compare(r, Dup(r)) != Equal")
	}
	if !sds.Cmp(r.Text, cp.Text) {
		t.Fatalf("text differs: %q vs %q", r.Text.BufData(0), cp.Text.BufData(0))
	}

	cp.Text.BufData(0)[0] = 'Z'
	if got := string(r.Text.BufData(0)); got != "Webby" {
		t.Errorf("mutating the copy changed the source text to %q", got)
	}
}
