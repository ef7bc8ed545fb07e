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

package transfer

import (
	"fmt"
	"io"

	liberr "github.com/nabbar/golib/errors"
	libsiz "github.com/nabbar/golib/size"
	fspath "github.com/sabouaram/remotefs/fspath"
	libpol "github.com/sabouaram/remotefs/pool"
	libsck "github.com/sabouaram/remotefs/socket"
	libvfs "github.com/sabouaram/remotefs/vfs"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// blockSize is the unit of file content moved per read.
var blockSize = (4 * libsiz.SizeKilo).Int()

type mgr struct {
	fs   *libvfs.VFS
	pool libpol.Pool[Key]
	log  func() *logrus.Entry
}

func (m *mgr) Join() {
	m.pool.Join()
}

// listenFd opens a fresh TCP socket bound to an OS-assigned loopback port
// and returns it with the port. Listening happens inside the job.
func (m *mgr) listenFd() (int, int, liberr.Error) {
	fd, e := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if e != nil {
		return -1, 0, ErrorBind.Error(e)
	}

	sa := &unix.SockaddrInet4{Addr: [4]byte{127, 0, 0, 1}}
	if e = unix.Bind(fd, sa); e != nil {
		_ = unix.Close(fd)
		return -1, 0, ErrorBind.Error(e)
	}

	gsa, e := unix.Getsockname(fd)
	if e != nil {
		_ = unix.Close(fd)
		return -1, 0, ErrorBind.Error(e)
	}

	in4, ok := gsa.(*unix.SockaddrInet4)
	if !ok {
		_ = unix.Close(fd)
		return -1, 0, ErrorBind.Error(nil)
	}

	return fd, in4.Port, nil
}

func (m *mgr) Get(s libsck.Socket, path fspath.Path) liberr.Error {
	fd, port, err := m.listenFd()
	if err != nil {
		return err
	}

	m.pool.Schedule(NewKey(path), func() {
		m.runGet(s, path, fd, port)
	})

	return nil
}

func (m *mgr) Put(s libsck.Socket, path fspath.Path, size int) liberr.Error {
	fd, port, err := m.listenFd()
	if err != nil {
		return err
	}

	m.pool.Schedule(NewKey(path), func() {
		m.runPut(s, path, size, fd, port)
	})

	return nil
}

func (m *mgr) runGet(s libsck.Socket, path fspath.Path, fd, port int) {
	defer func() { _ = unix.Close(fd) }()

	f, size, err := m.fs.Read(path)
	if err != nil {
		m.report(s, err)
		return
	}
	defer func() { _ = f.Close() }()

	// Signal the client that it can start to pull data.
	if we := s.WriteString(fmt.Sprintf("get port: %d size: %d\n", port, size)); we != nil {
		m.warn(path, we)
		return
	}

	cfd, err := m.await(fd, path)
	if err != nil {
		m.report(s, err)
		return
	}
	defer func() { _ = unix.Close(cfd) }()

	buf := make([]byte, blockSize)

	for {
		n, re := f.Read(buf)
		if n > 0 {
			if we := writeAll(cfd, buf[:n]); we != nil {
				m.report(s, we)
				return
			}
		}
		if re == io.EOF {
			break
		} else if re != nil {
			m.report(s, ErrorSend.Error(re))
			return
		}
	}

	if l := m.logger(); l != nil {
		l.WithField("path", path.String()).WithField("size", size).Info("file sent")
	}
}

func (m *mgr) runPut(s libsck.Socket, path fspath.Path, size, fd, port int) {
	defer func() { _ = unix.Close(fd) }()

	tmp, err := m.fs.Create(path)
	if err != nil {
		m.report(s, err)
		return
	}

	// Signal the client that it can start to push data.
	if we := s.WriteString(fmt.Sprintf("put port: %d path: %s\n", port, path.String())); we != nil {
		tmp.Abort()
		m.warn(path, we)
		return
	}

	cfd, err := m.await(fd, path)
	if err != nil {
		tmp.Abort()
		m.report(s, err)
		return
	}
	defer func() { _ = unix.Close(cfd) }()

	buf := make([]byte, blockSize)
	total := 0

	for total < size {
		n, re := unix.Read(cfd, buf)
		if re == unix.EINTR {
			continue
		} else if re != nil {
			tmp.Abort()
			m.report(s, ErrorReceive.Error(re))
			return
		} else if n == 0 {
			break
		}

		keep := n
		if size-total < keep {
			keep = size - total
		}

		if _, we := tmp.Write(buf[:keep]); we != nil {
			tmp.Abort()
			m.report(s, ErrorReceive.Error(we))
			return
		}

		total += n
	}

	if total < size {
		// A short upload never reaches the tree: the temporary content is
		// dropped on the floor.
		tmp.Abort()
		m.report(s, ErrorIncomplete.Errorf(total))
		return
	}

	if err = m.fs.Commit(tmp); err != nil {
		m.report(s, err)
		return
	}

	if l := m.logger(); l != nil {
		l.WithField("path", path.String()).WithField("size", size).Info("file received")
	}
}

// await starts listening on the transfer socket and blocks until the client
// connects.
func (m *mgr) await(fd int, path fspath.Path) (int, liberr.Error) {
	if e := unix.Listen(fd, unix.SOMAXCONN); e != nil {
		return -1, ErrorListen.Error(e)
	}

	if l := m.logger(); l != nil {
		l.WithField("path", path.String()).Info("awaiting transfer connection")
	}

	for {
		cfd, _, e := unix.Accept(fd)
		if e == unix.EINTR {
			continue
		} else if e != nil {
			return -1, ErrorAccept.Error(e)
		}
		return cfd, nil
	}
}

// report sends a job failure back on the command socket; if that write
// fails too, the failure goes to the logs.
func (m *mgr) report(s libsck.Socket, err liberr.Error) {
	if we := s.WriteString("Error: " + err.StringError() + "\n"); we != nil {
		if l := m.logger(); l != nil {
			l.WithError(err).Warn("transfer failed and could not be reported")
		}
	}
}

func (m *mgr) warn(path fspath.Path, err liberr.Error) {
	if l := m.logger(); l != nil {
		l.WithField("path", path.String()).WithError(err).Warn("transfer aborted")
	}
}

func (m *mgr) logger() *logrus.Entry {
	if m.log == nil {
		return nil
	}
	return m.log()
}

func writeAll(fd int, p []byte) liberr.Error {
	for len(p) > 0 {
		n, e := unix.Write(fd, p)
		if e == unix.EINTR {
			continue
		} else if e != nil {
			return ErrorSend.Error(e)
		}
		p = p[n:]
	}
	return nil
}
