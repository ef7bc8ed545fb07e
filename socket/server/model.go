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

package server

import (
	"context"
	"time"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	libsck "github.com/sabouaram/remotefs/socket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// selectTimeout bounds each readiness wait so the loop can reap sockets
// closed cooperatively by workers.
const selectTimeout = 100 * time.Millisecond

type srv struct {
	fd     int
	port   uint16
	active map[int]libsck.Socket

	onConnection FuncConnection
	onPacket     FuncPacket
	onClosing    FuncConnection

	stop libatm.Value[bool]
	log  func() *logrus.Entry
}

func (o *srv) Port() uint16 {
	return o.port
}

func (o *srv) RegisterOnConnection(f FuncConnection) {
	o.onConnection = f
}

func (o *srv) RegisterOnPacket(f FuncPacket) {
	o.onPacket = f
}

func (o *srv) RegisterOnClosing(f FuncConnection) {
	o.onClosing = f
}

func (o *srv) Stop() {
	o.stop.Store(true)
}

func (o *srv) OpenConnections() int {
	return len(o.active)
}

func (o *srv) Listen(ctx context.Context) liberr.Error {
	defer o.closeAll()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if o.stop.Load() {
			return nil
		}

		set, max := o.makeDescriptorSet()
		tv := unix.NsecToTimeval(selectTimeout.Nanoseconds())

		n, e := unix.Select(max+1, set, nil, nil, &tv)
		if e == unix.EINTR {
			continue
		} else if e != nil {
			return ErrorServerSelect.Error(e)
		}

		if n > 0 && set.IsSet(o.fd) {
			o.acceptPending()
		}

		if n > 0 {
			o.drainReady(set)
		}

		o.reapDirty()
	}
}

func (o *srv) makeDescriptorSet() (*unix.FdSet, int) {
	var set unix.FdSet

	set.Zero()
	set.Set(o.fd)
	max := o.fd

	for fd := range o.active {
		set.Set(fd)
		if fd > max {
			max = fd
		}
	}

	return &set, max
}

// acceptPending accepts one pending connection if any. The listening socket
// is non-blocking, so a client vanishing between select and accept cannot
// stall the loop.
func (o *srv) acceptPending() {
	nfd, sa, e := unix.Accept4(o.fd, unix.SOCK_NONBLOCK)
	if e != nil {
		return
	}

	if _, dup := o.active[nfd]; dup {
		// A descriptor still present in the active map coming back from
		// accept is pathological: refuse it.
		_ = unix.Close(nfd)
		return
	}

	s := libsck.New(nfd, o.log)
	s.DeferredClose()
	o.active[nfd] = s

	if l := o.logger(); l != nil {
		if in4, ok := sa.(*unix.SockaddrInet4); ok {
			l.WithField("fd", nfd).WithField("peer", in4.Addr).Info("new connection")
		} else {
			l.WithField("fd", nfd).Info("new connection")
		}
	}

	if o.onConnection != nil {
		o.onConnection(s)
	}
}

func (o *srv) drainReady(set *unix.FdSet) {
	for fd, s := range o.active {
		if !set.IsSet(fd) {
			continue
		}

		_, eof, err := s.Buffer()
		if eof || err != nil {
			// Deferred mode: Close only marks the socket dirty, the reap
			// step below erases it.
			_ = s.Close()
			continue
		}

		for {
			line, ok := s.GetLine()
			if !ok {
				break
			}
			if o.onPacket != nil {
				o.onPacket(s, line)
			}
		}
	}
}

func (o *srv) reapDirty() {
	for fd, s := range o.active {
		if !s.Dirty() {
			continue
		}

		if o.onClosing != nil {
			o.onClosing(s)
		}

		if l := o.logger(); l != nil {
			l.WithField("fd", fd).Info("connection closed")
		}

		s.CloseFd()
		delete(o.active, fd)
	}
}

func (o *srv) closeAll() {
	for fd, s := range o.active {
		if o.onClosing != nil {
			o.onClosing(s)
		}
		s.CloseFd()
		delete(o.active, fd)
	}

	if o.fd >= 0 {
		_ = unix.Close(o.fd)
		o.fd = -1
	}
}

func (o *srv) logger() *logrus.Entry {
	if o.log == nil {
		return nil
	}
	return o.log()
}
