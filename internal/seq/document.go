package seq

import (
	"bytes"
	"encoding/json"
)

// Document is the JSON object an entity was decoded from. Encoding an entity starts from
// its Document: fields this package does not model are written back as they were read,
// and modeled fields that did not change keep their original encoding.
type Document struct {
	raw     map[string]json.RawMessage
	decoded map[string]json.RawMessage
}

// decodeDocument decodes data into v and remembers it in doc.
// v must be a type without its own UnmarshalJSON.
func decodeDocument[T any](data []byte, v *T, doc *Document) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := encodeFields(v)
	if err != nil {
		return err
	}
	*doc = Document{raw: raw, decoded: decoded}
	return nil
}

// encodeDocument encodes v on top of doc. A modeled field omitted from the encoding of v
// but present when the document was decoded has been cleared and is dropped.
func encodeDocument[T any](v *T, doc Document) ([]byte, error) {
	if doc.raw == nil {
		return json.Marshal(v)
	}
	fields, err := encodeFields(v)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(doc.raw)+len(fields))
	for k, raw := range doc.raw {
		out[k] = raw
	}
	for k := range doc.decoded {
		if _, ok := fields[k]; !ok {
			delete(out, k)
		}
	}
	for k, encoded := range fields {
		if prev, ok := doc.decoded[k]; ok && bytes.Equal(prev, encoded) {
			if _, kept := out[k]; kept {
				continue
			}
		}
		out[k] = encoded
	}
	return json.Marshal(out)
}

func encodeFields(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
