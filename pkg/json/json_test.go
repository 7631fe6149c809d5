package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attributeDoc struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

func TestMarshalUnmarshal(t *testing.T) {
	in := attributeDoc{Name: "AlphaMask", Type: "Float", Value: 0.5}

	data, err := Marshal(in)
	require.NoError(t, err)

	var out attributeDoc
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Type, out.Type)
	assert.InDelta(t, 0.5, out.Value, 1e-9)
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(attributeDoc{Name: "DoubleSided", Type: "Bool", Value: true}, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"name\"")
}

func TestMarshalToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := MarshalToWriter(&buf, map[string]string{"layer": "ClearCoat"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"layer":"ClearCoat"}`, buf.String())
}

func TestUnmarshalFromReader(t *testing.T) {
	var doc attributeDoc
	err := UnmarshalFromReader(bytes.NewReader([]byte(`{"name":"LayerFactor","type":"Float","value":0.3}`)), &doc)
	require.NoError(t, err)
	assert.Equal(t, "LayerFactor", doc.Name)
}

func TestBufferPoolReuse(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("scratch")
	PutBuffer(buf)

	again := GetBuffer()
	defer PutBuffer(again)
	assert.Zero(t, again.Len())
}

func TestEncoderDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf)
	defer PutEncoder(enc)

	require.NoError(t, enc.Encode(map[string]string{"swizzle": "<RGB>"}))
	assert.Contains(t, buf.String(), "<RGB>")
}
