package message

import "errors"

// IMessageStrategy is the interface for the Person message implementations.
// Messages are passed around as opaque values, each strategy only accepts the
// messages it built or deserialized itself.
type IMessageStrategy interface {
	// Name returns the short name of the strategy (e.g. "size" or "speed")
	Name() string
	// Build creates a new, fully initialized message
	Build(id int32, name string) (any, error)
	// Serialize serializes a message into the protobuf wire format
	Serialize(msg any) ([]byte, error)
	// Deserialize parses the protobuf wire format into a new message
	Deserialize(b []byte) (any, error)
	// ToPerson converts a message of this strategy into a plain Person
	ToPerson(msg any) (Person, error)
}

// Person is the plain value carried by the message:
//
//	syntax = "proto2";
//	message Person {
//	  required int32  id   = 1;
//	  required string name = 2;
//	}
type Person struct {
	ID   int32
	Name string
}

// Field numbers of the Person message
const (
	FieldID   = 1
	FieldName = 2
)

// Values used by the benchmarks
const (
	DefaultID   int32 = 1234
	DefaultName       = "John Doe"
)

var (
	// ErrMissingField is returned when a required field is not set
	ErrMissingField = errors.New("required field not set")
	// ErrMalformed is returned when the input is not valid protobuf wire data
	ErrMalformed = errors.New("malformed message")
	// ErrWrongType is returned when a message of another strategy is passed in
	ErrWrongType = errors.New("message belongs to another strategy")
)
