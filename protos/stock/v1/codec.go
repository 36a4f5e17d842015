package v1

import (
	"github.com/pkg/errors"
)

// CodecName is the content-subtype the stock service is served with, the
// same one protoc generated stubs use.
const CodecName = "proto"

// Message is implemented by every stock message.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Codec puts the stock messages on the grpc transport in protobuf wire
// format. It is passed explicitly to the server and the client so the
// process wide "proto" codec is left alone.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, errors.Errorf("cannot marshal %T, not a stock message", v)
	}
	b, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %T", v)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(Message)
	if !ok {
		return errors.Errorf("cannot unmarshal into %T, not a stock message", v)
	}
	if err := m.Unmarshal(data); err != nil {
		return errors.Wrapf(err, "unmarshal %T", v)
	}
	return nil
}

func (Codec) Name() string {
	return CodecName
}
