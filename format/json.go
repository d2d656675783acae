package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildDocument(), "", "  ")
}

type jsonDocument struct {
	Jumps   []jsonJump   `json:"jumps,omitempty"`
	Tables  []jsonTable  `json:"tables,omitempty"`
	Styles  []jsonStyle  `json:"styles,omitempty"`
	Records []jsonRecord `json:"records,omitempty"`
}

type jsonJump struct {
	Name   string `json:"name"`
	Seek   uint64 `json:"seek"`
	Length uint64 `json:"length"`
}

type jsonTable struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Pos     uint64       `json:"pos"`
	Len     uint64       `json:"len"`
	Columns []jsonColumn `json:"columns,omitempty"`
}

type jsonColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonStyle struct {
	ID    string     `json:"id"`
	Props []jsonPair `json:"props,omitempty"`
}

type jsonRecord struct {
	Table  string     `json:"table"`
	Values []jsonPair `json:"values,omitempty"`
}

type jsonPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (e *JSONEncoder) buildDocument() jsonDocument {
	var doc jsonDocument
	for _, j := range e.doc.Jumps {
		doc.Jumps = append(doc.Jumps, jsonJump{Name: j.Name, Seek: j.Seek, Length: j.Length})
	}
	for _, t := range e.doc.Tables {
		table := jsonTable{ID: t.ID, Name: t.Name, Pos: t.DataPos, Len: t.DataLen}
		for _, c := range t.Columns {
			table.Columns = append(table.Columns, jsonColumn{Name: c.Name, Type: c.Type.String()})
		}
		doc.Tables = append(doc.Tables, table)
	}
	for _, s := range e.doc.Styles {
		doc.Styles = append(doc.Styles, jsonStyle{ID: s.ID, Props: jsonPairs(s.Props)})
	}
	for _, r := range e.doc.Records {
		doc.Records = append(doc.Records, jsonRecord{Table: r.Table, Values: jsonPairs(r.Values)})
	}
	return doc
}

func jsonPairs(pairs []Pair) []jsonPair {
	out := make([]jsonPair, len(pairs))
	for i, p := range pairs {
		out[i] = jsonPair{Name: p.Name, Value: p.Value}
	}
	return out
}
