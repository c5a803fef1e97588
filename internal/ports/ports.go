package ports

import (
	"context"
	"errors"
	"image"
)

var (
	// ErrTransport marks completion endpoint failures (network, non-2xx,
	// timeout). Generators catch it and fall back; it never reaches end users.
	ErrTransport = errors.New("completion endpoint unavailable")

	// ErrNoCaptions means the video has no usable captions in any
	// configured language.
	ErrNoCaptions = errors.New("captions are disabled or unavailable")

	// ErrInvalidURL means the supplied URL does not reference a video.
	ErrInvalidURL = errors.New("invalid video URL")
)

type Completer interface {
	Complete(ctx context.Context, systemMsg, userMsg string) (string, error)
}

type TranscriptSource interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

type VideoDownloader interface {
	Download(ctx context.Context, videoURL, outPath string) error
}

type VideoReader interface {
	CountFrames(ctx context.Context, videoPath string) (int, error)
	DecodeFrame(ctx context.Context, videoPath string, index int) (image.Image, error)
}
