package mc

import "context"

// Portal is the command transport collaborator: one synchronous call that
// submits a command buffer and blocks until the firmware completes it,
// writing the response payload and completion status back into the same
// buffer.
//
// Everything about the channel itself — serialization of concurrent
// submissions, retries, timeouts — belongs to the implementation. A Submit
// that returns nil guarantees the firmware reported StatusOK; a nonzero
// completion status must surface as a *StatusError. Other errors mean the
// command never completed and the buffer's response area is undefined.
type Portal interface {
	Submit(ctx context.Context, cmd *Command) error
}
