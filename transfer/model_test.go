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

package transfer_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	fspath "github.com/sabouaram/remotefs/fspath"
	"github.com/sabouaram/remotefs/transfer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transfer manager", func() {
	Context("get", func() {
		It("should advertise a port with the size and stream the file out", func() {
			fs := newFS()
			conn := newTestConn()

			seedFile(fs.Base(), "data.bin", "hello world")
			Expect(fs.Scan()).To(BeNil())

			m := transfer.New(fs, 2, nil)
			defer m.Join()

			Expect(m.Get(conn.sock, fspath.Parse("data.bin"))).To(BeNil())

			var port, size int
			_, serr := fmt.Sscanf(conn.readLine(), "get port: %d size: %d", &port, &size)
			Expect(serr).ToNot(HaveOccurred())
			Expect(size).To(Equal(11))

			side := dialPort(port)
			defer func() { _ = side.Close() }()

			got, rerr := io.ReadAll(side)
			Expect(rerr).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("hello world"))
		})

		It("should report a missing file on the command socket", func() {
			fs := newFS()
			conn := newTestConn()

			m := transfer.New(fs, 2, nil)
			defer m.Join()

			Expect(m.Get(conn.sock, fspath.Parse("ghost"))).To(BeNil())
			Expect(conn.readLine()).To(Equal("Error: ghost not found"))
		})
	})

	Context("put", func() {
		It("should advertise a port with the path and commit a full upload", func() {
			fs := newFS()
			conn := newTestConn()

			m := transfer.New(fs, 2, nil)
			defer m.Join()

			Expect(m.Put(conn.sock, fspath.Parse("data.bin"), 11)).To(BeNil())

			var port int
			var path string
			_, serr := fmt.Sscanf(conn.readLine(), "put port: %d path: %s", &port, &path)
			Expect(serr).ToNot(HaveOccurred())
			Expect(path).To(Equal("data.bin"))

			side := dialPort(port)
			_, werr := side.Write([]byte("hello world"))
			Expect(werr).ToNot(HaveOccurred())
			Expect(side.Close()).ToNot(HaveOccurred())

			m.Join()

			got, rerr := os.ReadFile(filepath.Join(fs.Base(), "data.bin"))
			Expect(rerr).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("hello world"))

			ent, eerr := fs.Entry(fspath.Parse("data.bin"))
			Expect(eerr).ToNot(HaveOccurred())
			Expect(ent.Size).To(Equal(int64(11)))
		})

		It("should drop a short upload without leaving a partial file", func() {
			fs := newFS()
			conn := newTestConn()

			m := transfer.New(fs, 2, nil)

			Expect(m.Put(conn.sock, fspath.Parse("data.bin"), 100)).To(BeNil())

			var port int
			var path string
			_, serr := fmt.Sscanf(conn.readLine(), "put port: %d path: %s", &port, &path)
			Expect(serr).ToNot(HaveOccurred())

			side := dialPort(port)
			_, werr := side.Write([]byte("only a few bytes"))
			Expect(werr).ToNot(HaveOccurred())
			Expect(side.Close()).ToNot(HaveOccurred())

			Expect(conn.readLine()).To(Equal("Error: did not receive the whole file (16 bytes read)."))

			m.Join()

			_, gerr := os.Stat(filepath.Join(fs.Base(), "data.bin"))
			Expect(os.IsNotExist(gerr)).To(BeTrue())

			_, eerr := fs.Entry(fspath.Parse("data.bin"))
			Expect(eerr).To(HaveOccurred())

			ents, derr := os.ReadDir(fs.TempDir())
			Expect(derr).ToNot(HaveOccurred())
			Expect(ents).To(BeEmpty())
		})

		It("should cap the written content at the declared size", func() {
			fs := newFS()
			conn := newTestConn()

			m := transfer.New(fs, 2, nil)

			Expect(m.Put(conn.sock, fspath.Parse("data.bin"), 5)).To(BeNil())

			var port int
			var path string
			_, serr := fmt.Sscanf(conn.readLine(), "put port: %d path: %s", &port, &path)
			Expect(serr).ToNot(HaveOccurred())

			side := dialPort(port)
			_, werr := side.Write([]byte("hello world, way too much"))
			Expect(werr).ToNot(HaveOccurred())
			Expect(side.Close()).ToNot(HaveOccurred())

			m.Join()

			got, rerr := os.ReadFile(filepath.Join(fs.Base(), "data.bin"))
			Expect(rerr).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("hello"))
		})
	})

	Context("same-path serialization", func() {
		It("should commit exactly one of two concurrent uploads in full", func() {
			fs := newFS()
			connA := newTestConn()
			connB := newTestConn()

			m := transfer.New(fs, 8, nil)

			a := strings.Repeat("A", 4096)
			b := strings.Repeat("B", 4096)

			Expect(m.Put(connA.sock, fspath.Parse("same.bin"), len(a))).To(BeNil())
			Expect(m.Put(connB.sock, fspath.Parse("same.bin"), len(b))).To(BeNil())

			push := func(conn *testConn, payload string) {
				defer GinkgoRecover()

				var port int
				var path string
				_, serr := fmt.Sscanf(conn.readLine(), "put port: %d path: %s", &port, &path)
				Expect(serr).ToNot(HaveOccurred())

				side := dialPort(port)
				_, werr := side.Write([]byte(payload))
				Expect(werr).ToNot(HaveOccurred())
				Expect(side.Close()).ToNot(HaveOccurred())
			}

			// Same tag: the two jobs run back to back on one worker.
			var wg sync.WaitGroup
			wg.Add(2)
			go func() { defer wg.Done(); push(connA, a) }()
			go func() { defer wg.Done(); push(connB, b) }()
			wg.Wait()

			m.Join()

			got, rerr := os.ReadFile(filepath.Join(fs.Base(), "same.bin"))
			Expect(rerr).ToNot(HaveOccurred())

			full := string(got) == a || string(got) == b
			Expect(full).To(BeTrue())
		})
	})
})

func seedFile(base, rel, content string) {
	p := filepath.Join(base, rel)
	Expect(os.MkdirAll(filepath.Dir(p), 0775)).ToNot(HaveOccurred())
	Expect(os.WriteFile(p, []byte(content), 0664)).ToNot(HaveOccurred())
}
