package message

import (
	"fmt"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// personDescriptor is the descriptor of the Person message, built once from
// its file descriptor
var personDescriptor = mustPersonDescriptor()

// NewReflectStrategy creates the size-optimized strategy. It carries no
// message specific code: building, serializing and parsing are driven by the
// message descriptor through the protobuf reflection API.
func NewReflectStrategy() IMessageStrategy {
	fields := personDescriptor.Fields()
	return &reflectStrategyImpl{
		desc:      personDescriptor,
		idField:   fields.ByNumber(FieldID),
		nameField: fields.ByNumber(FieldName),
		marshal:   proto.MarshalOptions{Deterministic: true},
		unmarshal: proto.UnmarshalOptions{AllowPartial: true},
	}
}

// reflectStrategyImpl implements IMessageStrategy with dynamicpb messages
type reflectStrategyImpl struct {
	desc      protoreflect.MessageDescriptor
	idField   protoreflect.FieldDescriptor
	nameField protoreflect.FieldDescriptor
	marshal   proto.MarshalOptions
	unmarshal proto.UnmarshalOptions
}

// --------------------------------------------------------------------------
// Interface Methods (docu see message.IMessageStrategy)
// --------------------------------------------------------------------------

func (r *reflectStrategyImpl) Name() string {
	return "size"
}

func (r *reflectStrategyImpl) Build(id int32, name string) (any, error) {
	msg := dynamicpb.NewMessage(r.desc)
	msg.Set(r.idField, protoreflect.ValueOfInt32(id))
	msg.Set(r.nameField, protoreflect.ValueOfString(name))

	// the reflective part of building: walk the descriptor to check required fields
	if err := proto.CheckInitialized(msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return msg, nil
}

func (r *reflectStrategyImpl) Serialize(msg any) ([]byte, error) {
	m, err := r.cast(msg)
	if err != nil {
		return nil, err
	}
	return r.marshal.Marshal(m)
}

func (r *reflectStrategyImpl) Deserialize(b []byte) (any, error) {
	msg := dynamicpb.NewMessage(r.desc)
	if err := r.unmarshal.Unmarshal(b, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := proto.CheckInitialized(msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return msg, nil
}

func (r *reflectStrategyImpl) ToPerson(msg any) (Person, error) {
	m, err := r.cast(msg)
	if err != nil {
		return Person{}, err
	}
	return Person{
		ID:   int32(m.Get(r.idField).Int()),
		Name: m.Get(r.nameField).String(),
	}, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// cast checks that msg is a Person built by this strategy
func (r *reflectStrategyImpl) cast(msg any) (*dynamicpb.Message, error) {
	m, ok := msg.(*dynamicpb.Message)
	if !ok || m.Descriptor() != r.desc {
		return nil, fmt.Errorf("%w: got %T", ErrWrongType, msg)
	}
	return m, nil
}

// mustPersonDescriptor builds the Person descriptor. A failure is a bug in the
// descriptor literal below, so it panics.
func mustPersonDescriptor() protoreflect.MessageDescriptor {
	required := descriptorpb.FieldDescriptorProto_LABEL_REQUIRED

	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("dbench/person.proto"),
		Package: proto.String("dbench"),
		Syntax:  proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Person"),
			Field: []*descriptorpb.FieldDescriptorProto{
				{
					Name:     proto.String("id"),
					JsonName: proto.String("id"),
					Number:   proto.Int32(FieldID),
					Label:    required.Enum(),
					Type:     descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
				},
				{
					Name:     proto.String("name"),
					JsonName: proto.String("name"),
					Number:   proto.Int32(FieldName),
					Label:    required.Enum(),
					Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
				},
			},
		}},
	}

	fd, err := protodesc.NewFile(file, new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("invalid person descriptor: %v", err))
	}
	return fd.Messages().ByName("Person")
}
