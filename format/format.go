package format

import "encoding"

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}
