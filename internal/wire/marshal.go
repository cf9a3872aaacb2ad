package wire

import (
	"bytes"
	"errors"
	"sync"

	"github.com/tinylib/msgp/msgp"
)

// ErrUnknownMessageType is returned for frames whose type field is not a
// known message.
var ErrUnknownMessageType = errors.New("unknown message type")

var bufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// Marshal serializes a message to msgpack.
func Marshal(v msgp.Encodable) ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	writer := msgp.NewWriter(buf)
	if err := v.EncodeMsg(writer); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}

	// Copy out so the pooled buffer can be reused.
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Unmarshal deserializes msgpack data into v.
func Unmarshal(data []byte, v msgp.Decodable) error {
	return v.DecodeMsg(msgp.NewReader(bytes.NewReader(data)))
}

// Decode reads a frame of either message type.
func Decode(data []byte) (any, error) {
	typ, err := PeekType(data)
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypePlay:
		var p Play
		if err := Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &p, nil
	case TypeResult:
		var r Result
		if err := Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, ErrUnknownMessageType
	}
}

// PeekType returns the "type" field of a frame without decoding the rest.
func PeekType(data []byte) (string, error) {
	reader := msgp.NewReader(bytes.NewReader(data))
	n, err := reader.ReadMapHeader()
	if err != nil {
		return "", err
	}
	for ; n > 0; n-- {
		field, err := reader.ReadMapKeyPtr()
		if err != nil {
			return "", err
		}
		if string(field) == "type" {
			return reader.ReadString()
		}
		if err := reader.Skip(); err != nil {
			return "", err
		}
	}
	return "", ErrUnknownMessageType
}
