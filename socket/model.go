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
	"bytes"
	"sync"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// readSize is the number of bytes pulled from the descriptor on each call to
// Buffer.
const readSize = 256

type sck struct {
	m   sync.Mutex // guards fd and writes
	fd  int
	buf []byte // received bytes not yet extracted as lines

	def bool // deferred-close mode
	thr bool // throw-on-close mode
	drt libatm.Value[bool]

	log func() *logrus.Entry
}

func (o *sck) Fd() int {
	o.m.Lock()
	defer o.m.Unlock()
	return o.fd
}

func (o *sck) Dirty() bool {
	return o.drt.Load()
}

func (o *sck) DeferredClose() {
	o.def = true
}

func (o *sck) ThrowOnClose() {
	o.thr = true
}

func (o *sck) Write(p []byte) liberr.Error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.fd < 0 {
		return ErrorSocketClosed.Error(nil)
	}

	for {
		n, e := unix.Write(o.fd, p)

		if e == unix.EINTR {
			continue
		} else if e == unix.EAGAIN {
			waitWritable(o.fd)
			continue
		} else if e != nil {
			return ErrorSocketWrite.Error(e)
		} else if n != len(p) {
			// A short write is a failure of the stream contract, not
			// something to paper over by resending the remainder.
			return ErrorSocketWrite.Error(nil)
		}

		return nil
	}
}

func (o *sck) WriteString(s string) liberr.Error {
	return o.Write([]byte(s))
}

func (o *sck) Buffer() (int, bool, liberr.Error) {
	o.m.Lock()
	fd := o.fd
	o.m.Unlock()

	if fd < 0 {
		return 0, true, nil
	}

	var b [readSize]byte

	for {
		n, e := unix.Read(fd, b[:])

		if e == unix.EINTR {
			continue
		} else if e == unix.EAGAIN || e == unix.EWOULDBLOCK {
			return 0, false, nil
		} else if e != nil {
			return 0, false, ErrorSocketRead.Error(e)
		} else if n == 0 {
			return 0, true, nil
		}

		o.buf = append(o.buf, b[:n]...)
		return n, false, nil
	}
}

func (o *sck) GetLine() (string, bool) {
	i := bytes.IndexByte(o.buf, '\n')
	if i < 0 {
		return "", false
	}

	line := string(o.buf[:i])
	o.buf = o.buf[i+1:]
	return line, true
}

func (o *sck) ReadLine() (string, liberr.Error) {
	for {
		if line, ok := o.GetLine(); ok {
			return line, nil
		}

		waitReadable(o.Fd())

		_, eof, err := o.Buffer()

		if err != nil {
			return "", err
		} else if eof {
			// Flush a final unterminated line before reporting the close.
			if len(o.buf) > 0 {
				line := string(o.buf)
				o.buf = nil
				return line, nil
			}
			o.CloseFd()
			return "", ErrorSocketClosed.Error(nil)
		}
	}
}

func (o *sck) Close() liberr.Error {
	if o.def {
		o.drt.Store(true)
		return nil
	}

	o.CloseFd()

	if o.thr {
		return ErrorSocketClosed.Error(nil)
	}

	return nil
}

func (o *sck) CloseFd() {
	o.m.Lock()
	defer o.m.Unlock()

	if o.fd >= 0 {
		_ = unix.Close(o.fd)
		o.fd = -1
	}
}

func waitWritable(fd int) {
	p := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLOUT}}
	for {
		if _, e := unix.Poll(p, -1); e != unix.EINTR {
			return
		}
	}
}

func waitReadable(fd int) {
	if fd < 0 {
		return
	}
	p := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		if _, e := unix.Poll(p, -1); e != unix.EINTR {
			return
		}
	}
}
