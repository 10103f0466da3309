package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pcbinspect/internal/config"
	"pcbinspect/pkg/domain"
	"pcbinspect/pkg/logger"
	"pcbinspect/pkg/relay"
	"pcbinspect/pkg/relay/wsconn"
)

// watchCommand relays one live stream in the terminal, logging the frame rate
// and optionally writing every displayed pair to a directory.
func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "watch [detection|factory]",
		Short:     "Relays a live backend stream and reports its frame rate",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.StreamDetection), string(domain.StreamFactory)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.StreamKind(args[0])
			if !kind.Valid() {
				return fmt.Errorf("unknown stream %q", args[0])
			}
			pcbID, _ := cmd.Flags().GetInt64("pcb-id")
			out, _ := cmd.Flags().GetString("out")
			if out != "" {
				if err := os.MkdirAll(out, 0o755); err != nil {
					return fmt.Errorf("could not create output directory: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := getBackend(ctx, cfg)
			streamURL, err := client.StreamURL(kind, domain.PCBID(pcbID))
			if err != nil {
				return fmt.Errorf("could not resolve stream url: %w", err)
			}
			ctx = logger.WithFields(ctx, zap.String("stream", string(kind)))

			r := relay.New(wsconn.NewDialer(streamURL, cfg.Backend.HandshakeTimeout), relay.Options{
				Name:             string(kind),
				MinPCBFrameBytes: cfg.Relay.MinPCBFrameBytes,
				FPSInterval:      cfg.Relay.FPSInterval,
				ReconnectDelay:   cfg.Relay.ReconnectDelay,
				OnControl: func(ctx context.Context, msg domain.ControlMessage) {
					logger.Info(ctx, "control message", zap.String("type", msg.Type))
				},
				OnPair: func(p relay.Pair) {
					if out != "" {
						writePair(ctx, out, p)
					}
				},
			})

			go reportFPS(ctx, r, cfg.Relay.FPSInterval)

			logger.Info(ctx, "watching stream", zap.String("url", streamURL))
			err = r.Run(ctx)
			snap := r.Snapshot()
			logger.Info(ctx, "stream closed",
				zap.Uint64("frames", snap.Frames),
				zap.Uint64("pairs", snap.Pairs),
				zap.String("status", snap.Status))

			return err
		},
	}

	cmd.Flags().Int64("pcb-id", 0, "PCB inspected by the factory stream")
	cmd.Flags().String("out", "", "Directory receiving the displayed frames")

	return cmd
}

func reportFPS(ctx context.Context, r *relay.Relay, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := r.Snapshot()
			logger.Info(ctx, "relay",
				zap.String("state", string(snap.State)),
				zap.Int("fps", snap.FPS),
				zap.Int("pending", snap.Pending))
		}
	}
}

func writePair(ctx context.Context, dir string, p relay.Pair) {
	write := func(ch relay.Channel, data []byte) {
		name := filepath.Join(dir, fmt.Sprintf("%06d_%s.jpg", p.Seq, ch))
		if err := os.WriteFile(name, data, 0o600); err != nil {
			logger.Warn(ctx, "could not write frame", zap.String("file", name), zap.Error(err))
		}
	}

	write(relay.ChannelCamera, p.Camera.Data)
	if p.PCB != nil {
		write(relay.ChannelPCB, p.PCB.Data)
	}
}
