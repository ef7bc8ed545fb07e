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

// remotefs-client is the interactive test client: it sends one command per
// line, prints the replies, and handles the out-of-band transfer
// sub-protocol when the server advertises an ephemeral port.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	prompt   = color.New(color.FgGreen).SprintFunc()
	errColor = color.New(color.FgRed).SprintFunc()

	rootCmd = &cobra.Command{
		Use:           "remotefs-client <server-ip> <server-port>",
		Short:         "Interactive client for the remotefs protocol",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errColor(err.Error()))
		os.Exit(1)
	}
}

// cli owns the control connection and the name of the last requested
// download, needed when the matching control line arrives.
type cli struct {
	host string
	conn net.Conn

	mu      sync.Mutex
	lastGet string
}

func run(host, port string) error {
	conn, err := net.Dial("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	c := &cli{host: host, conn: conn}

	done := make(chan struct{})
	go c.readLoop(done)

	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(prompt("> "))

		if !in.Scan() {
			return nil
		}

		line := in.Text()
		c.trackRequest(line)

		if _, err = conn.Write([]byte(line + "\n")); err != nil {
			return err
		}

		if strings.TrimSpace(line) == "exit" {
			<-done
			return nil
		}

		select {
		case <-done:
			return nil
		default:
		}
	}
}

// trackRequest remembers the target of a `get` so the download can be named
// once the server advertises the port.
func (c *cli) trackRequest(line string) {
	fields := strings.Fields(line)
	if len(fields) == 2 && fields[0] == "get" {
		c.mu.Lock()
		c.lastGet = fields[1]
		c.mu.Unlock()
	}
}

// readLoop prints server lines and spawns side-channel transfers when a
// control line shows up.
func (c *cli) readLoop(done chan<- struct{}) {
	defer close(done)

	sc := bufio.NewScanner(c.conn)

	for sc.Scan() {
		line := sc.Text()

		var port, size int
		var path string

		if n, _ := fmt.Sscanf(line, "get port: %d size: %d", &port, &size); n == 2 {
			fmt.Println(line)
			go c.download(port, size)
			continue
		}

		if n, _ := fmt.Sscanf(line, "put port: %d path: %s", &port, &path); n == 2 {
			fmt.Println(line)
			go c.upload(port, path)
			continue
		}

		if strings.HasPrefix(line, "Error: ") {
			fmt.Println(errColor(line))
			continue
		}

		fmt.Println(line)
	}
}

// download pulls exactly size bytes from the advertised port into a local
// file named after the last requested path.
func (c *cli) download(port, size int) {
	c.mu.Lock()
	name := filepath.Base(c.lastGet)
	c.mu.Unlock()

	if name == "" || name == "." {
		name = "download.out"
	}

	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", c.host, port))
	if err != nil {
		fmt.Println(errColor("transfer failed: " + err.Error()))
		return
	}
	defer func() { _ = conn.Close() }()

	f, err := os.Create(name)
	if err != nil {
		fmt.Println(errColor("transfer failed: " + err.Error()))
		return
	}
	defer func() { _ = f.Close() }()

	if _, err = io.CopyN(f, conn, int64(size)); err != nil {
		fmt.Println(errColor("transfer incomplete: " + err.Error()))
		return
	}

	fmt.Println("received " + name)
}

// upload pushes the local file matching the advertised path to the
// advertised port.
func (c *cli) upload(port int, path string) {
	name := filepath.Base(path)

	f, err := os.Open(name)
	if err != nil {
		fmt.Println(errColor("transfer failed: " + err.Error()))
		return
	}
	defer func() { _ = f.Close() }()

	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", c.host, port))
	if err != nil {
		fmt.Println(errColor("transfer failed: " + err.Error()))
		return
	}
	defer func() { _ = conn.Close() }()

	if _, err = io.Copy(conn, f); err != nil {
		fmt.Println(errColor("transfer incomplete: " + err.Error()))
		return
	}

	fmt.Println("sent " + name)
}
