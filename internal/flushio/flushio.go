package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that throws everything away.
var Discard WriteFlusher = nopFlusher{io.Discard}

// New wraps w so that it can be flushed: writers that already flush, or that
// never need to (in-memory buffers, the discard writer), are passed through;
// anything else gets a bufio.Writer.
func New(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return Discard
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// bytes.Buffer and strings.Builder shaped writers hold everything in
	// memory already
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Multi fans writes and flushes out to every given WriteFlusher; nil entries
// are dropped, and a single survivor is returned unwrapped.
func Multi(wfs ...WriteFlusher) WriteFlusher {
	var all multi
	for _, wf := range wfs {
		if sub, ok := wf.(multi); ok {
			all = append(all, sub...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type multi []WriteFlusher

func (ws multi) Write(p []byte) (n int, err error) {
	for _, wf := range ws {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (ws multi) Flush() (err error) {
	for _, wf := range ws {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
