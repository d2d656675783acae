// Package format renders parsed XRV documents for output.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/xrv/xrv"
)

// Pair is one name/value property, decoded out of its line buffer so a
// Document can outlive the Reader that produced it.
type Pair struct {
	Name  string
	Value string
}

// Style is a style entry with its opaque properties.
type Style struct {
	ID    string
	Props []Pair
}

// Record is one data row keyed by its table id.
type Record struct {
	Table  string
	Values []Pair
}

// Document is everything one pass over an XRV file produced: the jump
// index, the table schemas, the styles and the record rows in file order.
type Document struct {
	Jumps   []xrv.JumpEntry
	Tables  []*xrv.TableSchema
	Styles  []Style
	Records []Record
}

// Collect drains a Reader and gathers its output into a Document. Tables,
// styles and jumps come from the registry after the last line, so
// overwritten ids appear once with their newest definition.
func Collect(r *xrv.Reader) (*Document, error) {
	doc := &Document{}
	for {
		parsed, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}
		if parsed.Kind != xrv.KindRecord {
			continue
		}
		row := parsed.Record
		record := Record{Table: row.TableID, Values: make([]Pair, len(row.Values))}
		for i := range row.Values {
			name, value := row.Pair(i)
			record.Values[i] = Pair{Name: string(name), Value: string(value)}
		}
		doc.Records = append(doc.Records, record)
	}

	reg := r.Registry()
	for _, name := range reg.JumpNames() {
		entry, _ := reg.Jump(name)
		doc.Jumps = append(doc.Jumps, entry)
	}
	for _, id := range reg.TableIDs() {
		table, _ := reg.Table(id)
		doc.Tables = append(doc.Tables, table)
	}
	for _, id := range reg.StyleIDs() {
		style, _ := reg.Style(id)
		props := make([]Pair, len(style.Props))
		for i, f := range style.Props {
			props[i] = Pair{Name: style.Line.Text(f.Name), Value: style.Line.Text(f.Value)}
		}
		doc.Styles = append(doc.Styles, Style{ID: style.ID, Props: props})
	}
	return doc, nil
}
