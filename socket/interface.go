/*
 * MIT License
 *
 * Copyright (c) 2024 Salim Abouaram
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package socket

import (
	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	"github.com/sirupsen/logrus"
)

// Socket is a line-oriented view over one TCP file descriptor.
//
// Buffer and GetLine are only ever called by the event loop that owns the
// descriptor; Write may be called concurrently by command and transfer
// workers and serializes internally.
type Socket interface {
	// Fd returns the underlying file descriptor, or -1 once closed.
	Fd() int

	// Dirty reports whether a deferred Close was requested.
	Dirty() bool

	// DeferredClose switches the socket to deferred-close mode.
	DeferredClose()

	// ThrowOnClose makes Close return a network error after closing the
	// descriptor, so that a blocking read loop unwinds.
	ThrowOnClose()

	// Write sends the whole buffer in one call, retrying only interrupted
	// or would-block attempts. A short write fails with a network error.
	Write(p []byte) liberr.Error

	// WriteString is Write for a string.
	WriteString(s string) liberr.Error

	// Buffer performs one read of up to 256 bytes into the receive buffer.
	// It returns the number of bytes read and whether the peer performed an
	// orderly shutdown. A would-block condition returns (0, false, nil).
	Buffer() (n int, eof bool, err liberr.Error)

	// GetLine extracts one full line from the receive buffer, without its
	// trailing newline. It never reads from the descriptor.
	GetLine() (line string, ok bool)

	// ReadLine blocks until a full line is available, looping Buffer and
	// GetLine. On EOF with an empty buffer the socket is closed and a
	// network error returned.
	ReadLine() (line string, err liberr.Error)

	// Close follows the configured mode: deferred mode only marks the
	// socket dirty, throw-on-close mode closes the descriptor and returns
	// a network error, the default mode closes the descriptor silently.
	Close() liberr.Error

	// CloseFd closes the underlying descriptor unconditionally.
	CloseFd()
}

// New wraps an already connected file descriptor. The logger provider may be
// nil.
func New(fd int, log func() *logrus.Entry) Socket {
	return &sck{
		fd:  fd,
		drt: libatm.NewValue[bool](),
		log: log,
	}
}
