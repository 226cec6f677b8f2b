// Package message compares two ways of implementing the same protobuf message.
// Both implementations produce and accept the identical wire format for the
// Person message (proto2, required int32 id = 1, required string name = 2).
//
// Key Components:
//
//   - IMessageStrategy: Build, Serialize, Deserialize and ToPerson over opaque
//     message values.
//
//   - reflectStrategyImpl ("size"): Generic code driven by the message
//     descriptor. Messages are dynamicpb messages, required fields are
//     validated by walking the descriptor on build and on parse. Small code,
//     paid for with reflective calls on every operation.
//
//   - wireStrategyImpl ("speed"): Message specific code on a plain struct,
//     encoded and decoded with protowire. No reflection at all.
//
// Both strategies are stateless after construction and safe for concurrent use.
package message
