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

// remotefs-server serves a directory over the line-oriented command
// protocol: it loads the configuration, scans the base directory into the
// cache, then runs the accept loop with one pool of command workers and one
// pool of transfer workers until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sabouaram/remotefs/command"
	"github.com/sabouaram/remotefs/config"
	"github.com/sabouaram/remotefs/pool"
	libsck "github.com/sabouaram/remotefs/socket"
	"github.com/sabouaram/remotefs/socket/server"
	"github.com/sabouaram/remotefs/session"
	"github.com/sabouaram/remotefs/transfer"
	"github.com/sabouaram/remotefs/vfs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	commandWorkers  = 4
	transferWorkers = 8
)

var (
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "remotefs-server",
		Short:         "Multi-user file server over a line-oriented TCP protocol",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "remotefs.conf", "configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, cfg, log, nil)
}

// serve wires the cache, the pools and the event loop, then blocks until
// the context is done. The bound port is published on ready when asked for.
func serve(ctx context.Context, cfg *config.Config, log *logrus.Logger, ready chan<- uint16) error {
	logE := func() *logrus.Entry {
		return logrus.NewEntry(log)
	}

	fs, err := vfs.New(cfg.Base, logE)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg.Port, logE)
	if err != nil {
		return err
	}

	cmdPool := pool.New[int](commandWorkers, logE)
	xfer := transfer.New(fs, transferWorkers, logE)

	registry := session.NewRegistry()
	sessions := make(map[int]*session.Session)

	srv.RegisterOnConnection(func(s libsck.Socket) {
		sessions[s.Fd()] = session.New()
	})

	srv.RegisterOnClosing(func(s libsck.Socket) {
		if ss, ok := sessions[s.Fd()]; ok {
			ss.Release(registry)
			delete(sessions, s.Fd())
		}
	})

	srv.RegisterOnPacket(func(s libsck.Socket, line string) {
		env := command.Env{
			Sock:  s,
			Sess:  sessions[s.Fd()],
			Users: registry,
			FS:    fs,
			Auth:  cfg,
			Xfer:  xfer,
			Log:   logE,
		}

		cmdPool.Schedule(s.Fd(), func() {
			command.Run(env, line)
		})
	})

	log.WithField("port", srv.Port()).WithField("base", cfg.Base).Info("listening")

	if ready != nil {
		ready <- srv.Port()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if lerr := srv.Listen(gctx); lerr != nil {
			return lerr
		}
		return nil
	})

	werr := g.Wait()

	// In-flight jobs finish before the pools give back control.
	cmdPool.Join()
	xfer.Join()

	if werr != nil {
		return werr
	}

	log.Info("clean shutdown")
	return nil
}
