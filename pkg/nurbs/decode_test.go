package nurbs_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/opennurbs-go/pkg/nurbs"
)

func TestJSONDecoderDecode(t *testing.T) {
	doc := `[
		{"degree": 2, "controlPoints": [[0,0,0,1],[1,2,0,1],[2,0,0,1]], "knotVector": [0,0,0,1,1,1], "color": "red"},
		{"degree": 1, "controlPoints": [[0,0,0,1],[1,0,0,1]], "knotVector": [0,0,1,1]}
	]`

	records, err := nurbs.JSONDecoder{}.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int32(2), records[0].Degree)
	assert.Equal(t, []nurbs.Vec4{{0, 0, 0, 1}, {1, 2, 0, 1}, {2, 0, 0, 1}}, records[0].ControlPoints)
	assert.Equal(t, []float32{0, 0, 0, 1, 1, 1}, records[0].KnotVector)
	assert.Equal(t, int32(1), records[1].Degree)
}

func TestJSONDecoderEmptyArray(t *testing.T) {
	records, err := nurbs.JSONDecoder{}.Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestJSONDecoderEmptySequencesArePresent(t *testing.T) {
	records, err := nurbs.JSONDecoder{}.Decode([]byte(`[{"degree": 1, "controlPoints": [], "knotVector": []}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].ControlPoints)
	assert.Empty(t, records[0].KnotVector)
}

func TestJSONDecoderMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"no degree", `[{"controlPoints": [[0,0,0,1]], "knotVector": [0,1]}]`, "degree"},
		{"null control points", `[{"degree": 1, "controlPoints": null, "knotVector": [0,1]}]`, "controlPoints"},
		{"no knots", `[{"degree": 1, "controlPoints": [[0,0,0,1]]}]`, "knotVector"},
		{"empty object", `[{}]`, "degree"},
		{"null record", `[null]`, "degree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nurbs.JSONDecoder{}.Decode([]byte(tt.doc))
			var fieldErr *nurbs.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)

			var recErr *nurbs.RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, 0, recErr.Index)
		})
	}
}

func TestJSONDecoderTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"fractional degree", `[{"degree": 2.5, "controlPoints": [], "knotVector": []}]`},
		{"degree overflows int32", `[{"degree": 4294967296, "controlPoints": [], "knotVector": []}]`},
		{"string knot", `[{"degree": 1, "controlPoints": [], "knotVector": ["0"]}]`},
		{"record is a number", `[3]`},
		{"root is an object", `{"degree": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := nurbs.JSONDecoder{}.Decode([]byte(tt.doc))
			var typeErr *json.UnmarshalTypeError
			assert.ErrorAs(t, err, &typeErr)
		})
	}
}

func TestJSONDecoderMalformed(t *testing.T) {
	_, err := nurbs.JSONDecoder{}.Decode([]byte(`[{"degree": 1,`))
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	_, err = nurbs.JSONDecoder{}.Decode([]byte(`null`))
	assert.True(t, errors.Is(err, nurbs.ErrRootNotArray))
}

func TestJSONDecoderBadControlPoint(t *testing.T) {
	_, err := nurbs.JSONDecoder{}.Decode([]byte(`[
		{"degree": 1, "controlPoints": [[0,0,0,1],[1,0,0,1]], "knotVector": [0,0,1,1]},
		{"degree": 1, "controlPoints": [[0,0,1],[1,0,0,1]], "knotVector": [0,0,1,1]}
	]`))

	var compErr *nurbs.ComponentError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, 3, compErr.Got)

	var recErr *nurbs.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, recErr.Index)
}
