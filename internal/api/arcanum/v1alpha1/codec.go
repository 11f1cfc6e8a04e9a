// Package v1alpha1 declares the arcanum.v1alpha1 gRPC services: their wire
// messages, service descriptors and client stubs. Messages travel as JSON
// under the "json" content subtype.
package v1alpha1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype of every arcanum call.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals messages as JSON
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal decodes JSON into v. An empty payload leaves v untouched.
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns CodecName
func (Codec) Name() string {
	return CodecName
}
