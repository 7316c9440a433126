// Command posestream serves recorded head-mounted display poses over a
// websocket, for driving the drag-look demo without a headset.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seqsense/draglook/hmd"
	"github.com/seqsense/draglook/internal/logging"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	tracePath := flag.String("trace", "", "YAML pose trace (streams a still pose if empty)")
	rate := flag.Float64("rate", 0, "frames per second (default: rate of the trace)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	trace, err := loadTrace(*tracePath)
	if err != nil {
		logger.Fatal("Failed to load trace", zap.String("path", *tracePath), zap.Error(err))
	}
	if *rate > 0 {
		trace.Rate = *rate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:        *addr,
		Handler:     newMux(newPoseServer(trace.Poses(), trace.Loop, trace.Rate, logger)),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	if err := serve(ctx, srv, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newMux(ps *poseServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", ps)
	return mux
}

func loadTrace(path string) (*hmd.Trace, error) {
	if path == "" {
		return &hmd.Trace{
			Rate:   1,
			Loop:   true,
			Frames: []hmd.TraceFrame{{Quaternion: &[4]float32{0, 0, 0, 1}}},
		}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hmd.LoadTrace(f)
}

// serve runs srv until ctx is canceled, then shuts it down.
func serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("Listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return eg.Wait()
}
