package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/cancelreader"

	"github.com/jask/winstack/core"
)

// ReaderSource decodes keys from a byte stream, normally stdin in raw mode.
type ReaderSource struct {
	in io.Reader
}

func NewReaderSource(in io.Reader) *ReaderSource {
	return &ReaderSource{in: in}
}

// Run reads until EOF, cancellation or a closed channel. A read blocked on a
// terminal is cancelled when ctx ends.
func (s *ReaderSource) Run(ctx context.Context, out core.Publisher) error {
	r, err := cancelreader.NewReader(s.in)
	if err != nil {
		return fmt.Errorf("input reader: %w", err)
	}
	defer r.Close()
	stop := context.AfterFunc(ctx, func() { r.Cancel() })
	defer stop()

	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, key := range DecodeKeys(buf[:n]) {
			if perr := out.Publish(ctx, core.Input(key)); perr != nil {
				if errors.Is(perr, core.ErrChannelClosed) || ctx.Err() != nil {
					return nil
				}
				return perr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cancelreader.ErrCanceled) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}
