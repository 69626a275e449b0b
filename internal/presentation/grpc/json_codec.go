package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name of the wire codec clients must request via the "json" content
// subtype. The comparison DTOs carry shopspring decimals, which marshal as
// JSON strings; a proto codec would reject them.
const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec serializes comparison requests and responses with the standard
// JSON encoder.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}
