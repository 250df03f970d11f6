package toolpath

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// Sink executes motion commands, on a real or simulated robot,
// or by converting them to another format.
type Sink interface {
	// Send executes one command. It may block until the
	// motion is done, and should return early if `ctx` is cancelled.
	Send(ctx context.Context, c Command) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, c Command) error

func (f SinkFunc) Send(ctx context.Context, c Command) error { return f(ctx, c) }

// MultiSink sends every command to all its sinks, in order.
type MultiSink []Sink

func (ms MultiSink) Send(ctx context.Context, c Command) error {
	var errs []error
	for _, s := range ms {
		if err := s.Send(ctx, c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder is a Sink keeping all the commands it receives.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Send(_ context.Context, c Command) error {
	r.Commands = append(r.Commands, c)
	return nil
}

// Dispatch sends the commands of `seq` to `sink`, in order.
// It stops at the first error returned by the sink, or when `ctx`
// is cancelled; the returned error then tells how many commands
// were executed.
func Dispatch(ctx context.Context, seq iter.Seq[Command], sink Sink) error {
	n := 0
	for c := range seq {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dispatch interrupted after %d commands: %w", n, err)
		}
		if err := sink.Send(ctx, c); err != nil {
			return fmt.Errorf("command %d (%v): %w", n, c, err)
		}
		n++
	}
	return nil
}
