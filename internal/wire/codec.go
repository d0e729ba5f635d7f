package wire

import (
	"encoding"

	grpcencoding "google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

// CodecName is the gRPC content subtype of the binary encoding
const CodecName = "battlewire"

// Registered so clients can select the codec with grpc.CallContentSubtype(CodecName)
// while other services on the same server keep the default proto codec.
func init() {
	grpcencoding.RegisterCodec(Codec{})
}

// Message is a request or response in the binary layout
type Message interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Codec is a gRPC codec for Message values. Protobuf messages, such as those of the
// health and reflection services sharing the server, are passed through to proto.
type Codec struct{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.MarshalBinary()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, errors.Internalf("wire: cannot marshal %T", v)
	}
}

// Unmarshal decodes data into v
func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.UnmarshalBinary(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return errors.Internalf("wire: cannot unmarshal into %T", v)
	}
}

// Name returns the codec name
func (Codec) Name() string {
	return CodecName
}
