package message

import (
	"fmt"
	"google.golang.org/protobuf/encoding/protowire"
)

// NewWireStrategy creates the speed-optimized strategy. Person values are
// encoded and decoded by hand with protowire, no reflection is involved.
func NewWireStrategy() IMessageStrategy {
	return &wireStrategyImpl{}
}

// wireStrategyImpl implements IMessageStrategy on *Person
type wireStrategyImpl struct {
}

// Bit flags to track which required fields were read
const (
	seenID   byte = 1 << 0
	seenName byte = 1 << 1
)

// --------------------------------------------------------------------------
// Interface Methods (docu see message.IMessageStrategy)
// --------------------------------------------------------------------------

func (w wireStrategyImpl) Name() string {
	return "speed"
}

func (w wireStrategyImpl) Build(id int32, name string) (any, error) {
	return &Person{ID: id, Name: name}, nil
}

func (w wireStrategyImpl) Serialize(msg any) ([]byte, error) {
	p, ok := msg.(*Person)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrWrongType, msg)
	}

	// int32 is sign extended to 64 bit, negative ids always take 10 bytes
	id := uint64(int64(p.ID))

	result := make([]byte, 0, w.sizeBytes(p))
	result = protowire.AppendTag(result, FieldID, protowire.VarintType)
	result = protowire.AppendVarint(result, id)
	result = protowire.AppendTag(result, FieldName, protowire.BytesType)
	result = protowire.AppendString(result, p.Name)

	return result, nil
}

func (w wireStrategyImpl) Deserialize(data []byte) (any, error) {
	p := &Person{}
	var seen byte

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: tag: %v", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == FieldID && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: id: %v", ErrMalformed, protowire.ParseError(n))
			}
			p.ID = int32(v)
			seen |= seenID

		case num == FieldName && typ == protowire.BytesType:
			var v string
			v, n = protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: name: %v", ErrMalformed, protowire.ParseError(n))
			}
			p.Name = v
			seen |= seenName

		default:
			// unknown field or known field with unexpected wire type, skip it
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
		}
		data = data[n:]
	}

	if seen&seenID == 0 {
		return nil, fmt.Errorf("%w: id", ErrMissingField)
	}
	if seen&seenName == 0 {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	return p, nil
}

func (w wireStrategyImpl) ToPerson(msg any) (Person, error) {
	p, ok := msg.(*Person)
	if !ok {
		return Person{}, fmt.Errorf("%w: got %T", ErrWrongType, msg)
	}
	return *p, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// sizeBytes calculates the total size needed for serialization
func (w wireStrategyImpl) sizeBytes(p *Person) int {
	return protowire.SizeTag(FieldID) + protowire.SizeVarint(uint64(int64(p.ID))) +
		protowire.SizeTag(FieldName) + protowire.SizeBytes(len(p.Name))
}
