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
	liberr "github.com/nabbar/golib/errors"
	fspath "github.com/sabouaram/remotefs/fspath"
	libpol "github.com/sabouaram/remotefs/pool"
	libsck "github.com/sabouaram/remotefs/socket"
	libvfs "github.com/sabouaram/remotefs/vfs"
	"github.com/sirupsen/logrus"
)

// Manager schedules out-of-band transfers over its own tagged worker pool.
type Manager interface {
	// Get streams a file out. The advertised control line is
	// `get port: <p> size: <s>`.
	Get(s libsck.Socket, path fspath.Path) liberr.Error

	// Put receives at most size bytes into a temporary file and commits it
	// on full receipt. The advertised control line is
	// `put port: <p> path: <path>`.
	Put(s libsck.Socket, path fspath.Path, size int) liberr.Error

	// Join stops the transfer pool and waits for in-flight jobs.
	Join()
}

// New builds a transfer manager over its own pool of the given width.
func New(fs *libvfs.VFS, workers int, log func() *logrus.Entry) Manager {
	return &mgr{
		fs:   fs,
		pool: libpol.New[Key](workers, log),
		log:  log,
	}
}
