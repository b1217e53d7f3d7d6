package cxt

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/formal"
)

// Write emits fc in Burmeister format; labels default to decimal indices.
func Write(w io.Writer, fc *formal.Context) error {
	if fc == nil {
		return errors.New("cxt: context is nil")
	}
	bw := bufio.NewWriter(w)
	line := func(s string) {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}

	line("B")
	line(fc.Name())
	line(strconv.Itoa(fc.Objects()))
	line(strconv.Itoa(fc.Attributes()))
	line("")
	for o := 0; o < fc.Objects(); o++ {
		line(fc.ObjectLabel(o))
	}
	for a := 0; a < fc.Attributes(); a++ {
		line(fc.AttributeLabel(a))
	}
	row := make([]byte, fc.Attributes())
	for o := 0; o < fc.Objects(); o++ {
		for a := range row {
			row[a] = '.'
			if fc.HasAttribute(o, a) {
				row[a] = 'X'
			}
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "cxt: write")
}
