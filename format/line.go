package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/xrv/xrv"
)

// LineEncoder writes one tab-separated summary line per document element,
// suitable for grep and awk.
type LineEncoder struct {
	w   io.Writer
	doc *Document
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for _, j := range e.doc.Jumps {
		fmt.Fprintf(&sb, "jump\t%s\t%d\t%d\n", j.Name, j.Seek, j.Length)
	}

	for _, t := range e.doc.Tables {
		fmt.Fprintf(&sb, "table\t%s\t%s\t%d\t%d\t%s\n",
			t.ID, t.Name, t.DataPos, t.DataLen, e.columnsStr(t))
	}

	for _, s := range e.doc.Styles {
		fmt.Fprintf(&sb, "style\t%s\t%s\n", s.ID, pairsStr(s.Props))
	}

	for _, r := range e.doc.Records {
		fmt.Fprintf(&sb, "record\t%s\t%s\n", r.Table, pairsStr(r.Values))
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) columnsStr(t *xrv.TableSchema) string {
	if len(t.Columns) == 0 {
		return "-"
	}
	var parts []string
	for _, c := range t.Columns {
		parts = append(parts, c.Name+":"+c.Type.String())
	}
	return strings.Join(parts, ",")
}

func pairsStr(pairs []Pair) string {
	if len(pairs) == 0 {
		return "-"
	}
	var parts []string
	for _, p := range pairs {
		parts = append(parts, p.Name+"="+p.Value)
	}
	return strings.Join(parts, ",")
}
