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

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	libsck "github.com/sabouaram/remotefs/socket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// FuncConnection is called when a connection enters the active map.
type FuncConnection func(s libsck.Socket)

// FuncPacket is called for each complete line extracted from a connection.
// The socket reference stays valid until the loop's next iteration thanks to
// deferred close.
type FuncPacket func(s libsck.Socket, line string)

// Server is the connection-pool event loop.
type Server interface {
	// Port returns the bound port, useful when constructed with port 0.
	Port() uint16

	// RegisterOnConnection sets the handler fired on accept.
	RegisterOnConnection(f FuncConnection)

	// RegisterOnPacket sets the handler fired for each extracted line.
	RegisterOnPacket(f FuncPacket)

	// RegisterOnClosing sets the handler fired before a dirty socket is
	// erased from the active map.
	RegisterOnClosing(f FuncConnection)

	// Listen runs the event loop until the context is done or Stop is
	// called. All remaining connections are closed on return.
	Listen(ctx context.Context) liberr.Error

	// Stop asks the loop to exit at its next iteration.
	Stop()

	// OpenConnections returns the current size of the active map. Only
	// meaningful from the loop's own goroutine or after Listen returned.
	OpenConnections() int
}

// New creates the listening socket immediately (bind + listen), so the bound
// port is known before the loop runs. Pass port 0 for an OS-assigned port.
func New(port uint16, log func() *logrus.Entry) (Server, liberr.Error) {
	fd, e := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK, 0)
	if e != nil {
		return nil, ErrorServerCreate.Error(e)
	}

	if e = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); e != nil {
		_ = unix.Close(fd)
		return nil, ErrorServerCreate.Error(e)
	}

	if e = unix.Bind(fd, &unix.SockaddrInet4{Port: int(port)}); e != nil {
		_ = unix.Close(fd)
		return nil, ErrorServerBind.Error(e)
	}

	if e = unix.Listen(fd, unix.SOMAXCONN); e != nil {
		_ = unix.Close(fd)
		return nil, ErrorServerListen.Error(e)
	}

	bound := port
	if sa, e := unix.Getsockname(fd); e == nil {
		if in4, ok := sa.(*unix.SockaddrInet4); ok {
			bound = uint16(in4.Port)
		}
	}

	return &srv{
		fd:     fd,
		port:   bound,
		active: make(map[int]libsck.Socket),
		stop:   libatm.NewValue[bool](),
		log:    log,
	}, nil
}
