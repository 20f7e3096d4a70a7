package document

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/buffalo/internal/engine/store"
)

// Read loads a document from r, splitting on line feeds.
// Empty input yields a single empty line.
func Read(r io.Reader, kind store.Kind) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	segments := bytes.Split(data, []byte{'\n'})
	d := &Document{kind: kind, lines: make([]*Line, 0, len(segments))}
	for _, seg := range segments {
		l, err := d.NewLine(seg)
		if err != nil {
			return nil, err
		}
		d.lines = append(d.lines, l)
	}
	return d, nil
}

// WriteTo writes every line's content followed by a line feed, except
// after the final line. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i, l := range d.lines {
		written, err := bw.Write(l.Bytes())
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("write line %d: %w", i, err)
		}
		if i != len(d.lines)-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return n, fmt.Errorf("write line %d: %w", i, err)
			}
			n++
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush document: %w", err)
	}
	return n, nil
}
