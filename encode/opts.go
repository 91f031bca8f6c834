package encode

import "github.com/advaoptical/alpakka/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			es.colors = nil
			return
		}
		es.Color = c.Color
		es.colors = c
	}
}

// EncodeWire selects the compact single line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
