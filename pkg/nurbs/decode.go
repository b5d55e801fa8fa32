package nurbs

import "encoding/json"

// Decoder turns the bytes of a curve document into records.
type Decoder interface {
	Decode(data []byte) ([]Descriptor, error)
}

// JSONDecoder decodes a JSON array of curve records. Every record must carry
// degree, controlPoints and knotVector; other fields are ignored.
type JSONDecoder struct{}

// Decode implements Decoder. Syntax and type errors come from encoding/json;
// errors inside a record are wrapped in a RecordError.
func (JSONDecoder) Decode(data []byte) ([]Descriptor, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrRootNotArray
	}

	records := make([]Descriptor, len(raw))
	for i, msg := range raw {
		if err := json.Unmarshal(msg, &records[i]); err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
	}
	return records, nil
}
