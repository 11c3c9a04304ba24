package fileio

import (
	"bufio"
	"io"

	"listkit/sds"
)

// MaxWordLen caps the length of a word returned by NextWord. Longer
// alphabetic runs are consumed in full but truncated in the result.
const MaxWordLen = 255

// Scanner pulls integer and word tokens out of an ASCII byte stream.
// It reads one byte at a time and keeps a single byte of pushback so a
// token's terminator is seen again by the next call.
type Scanner struct {
	rd     io.ByteReader
	unread byte
	pushed bool
}

// New wraps r. Readers that cannot serve single bytes get buffered.
func New(r io.Reader) *Scanner {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{rd: br}
}

func (s *Scanner) readByte() (byte, error) {
	if s.pushed {
		s.pushed = false
		return s.unread, nil
	}
	return s.rd.ReadByte()
}

func (s *Scanner) unreadByte(c byte) {
	s.unread = c
	s.pushed = true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// skipComment discards bytes up to, and including, the next newline.
func (s *Scanner) skipComment() error {
	for {
		c, err := s.readByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// skipTo consumes the stream until a byte satisfying match comes up and
// returns it. '#' starts a line comment wherever it appears and is
// discarded up to the newline. Any '-' seen on the way is reported so
// NextInt can sign the first digit; bytes inside comments do not count.
// io.EOF means the stream ran out before anything matched.
func (s *Scanner) skipTo(match func(byte) bool) (c byte, minus bool, err error) {
	for {
		c, err = s.readByte()
		if err != nil {
			return 0, minus, err
		}
		if c == '#' {
			if err = s.skipComment(); err != nil {
				return 0, minus, err
			}
			continue
		}
		if c == '-' {
			minus = true
			continue
		}
		if match(c) {
			return c, minus, nil
		}
	}
}

// NextInt returns the next integer in the stream. Non-digit noise and
// comments before it are skipped; a '-' seen anywhere before the first
// digit makes the result negative. The digit fold uses native int
// arithmetic and wraps silently on pathological runs. The byte that
// ends the number is pushed back unless the stream truly ended.
// Returns io.EOF when the stream runs out before any digit.
func (s *Scanner) NextInt() (int, error) {
	c, minus, err := s.skipTo(isDigit)
	if err != nil {
		return 0, err
	}

	n := 0
	for isDigit(c) {
		n = n*10 + int(c-'0')
		if c, err = s.readByte(); err != nil {
			break
		}
	}
	if err == nil {
		s.unreadByte(c)
	}

	if minus {
		n = -n
	}
	return n, nil
}

// NextWord returns the next run of ASCII letters, truncated to
// MaxWordLen bytes. The whole run is consumed even when the result is
// truncated, so the following token starts after it. The terminating
// byte is pushed back unless the stream truly ended. Returns io.EOF
// when the stream runs out before any letter.
func (s *Scanner) NextWord() ([]byte, error) {
	c, _, err := s.skipTo(isAlpha)
	if err != nil {
		return nil, err
	}

	word := sds.Empty()
	for isAlpha(c) {
		if sds.Len(word) < MaxWordLen {
			word = sds.Catlen(word, []byte{c}, 1)
		}
		if c, err = s.readByte(); err != nil {
			break
		}
	}
	if err == nil {
		s.unreadByte(c)
	}

	return word.BufData(0), nil
}
