package codec

import "google.golang.org/protobuf/proto"

// Protobuf encodes proto messages. Records are marshaled deterministically.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *pb.Event { return &pb.Event{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (Protobuf[T]) Encode(m T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(m)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
