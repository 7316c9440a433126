package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/seqsense/draglook/hmd"
)

const writeTimeout = time.Second

// poseServer streams a recorded pose sequence to every websocket client.
type poseServer struct {
	poses    []hmd.Pose
	loop     bool
	interval time.Duration
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func newPoseServer(poses []hmd.Pose, loop bool, rate float64, logger *zap.Logger) *poseServer {
	return &poseServer{
		poses:    poses,
		loop:     loop,
		interval: time.Duration(float64(time.Second) / rate),
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (s *poseServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}
	logger := s.logger.With(
		zap.Stringer("session", uuid.New()),
		zap.String("remote", r.RemoteAddr),
	)
	logger.Info("Client connected")

	err = s.stream(r.Context(), conn)
	switch {
	case err == nil, errors.Is(err, context.Canceled), websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
		logger.Info("Client disconnected")
	default:
		logger.Warn("Stream aborted", zap.Error(err))
	}
}

func (s *poseServer) stream(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		// Incoming messages are discarded. A read error means the peer is gone.
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for seq := uint64(0); ; seq++ {
		i := int(seq % uint64(len(s.poses)))
		if !s.loop && seq >= uint64(len(s.poses)) {
			return conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "end of trace"),
				time.Now().Add(writeTimeout))
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(hmd.NewFrame(seq, s.poses[i])); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
