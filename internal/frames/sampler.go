// Package frames samples representative key frames from a downloaded video.
package frames

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"go.uber.org/zap"

	"github.com/mindreel/mindreel/internal/ports"
	"github.com/mindreel/mindreel/internal/storage"
)

const jpegQuality = 85

type Sampler struct {
	reader ports.VideoReader
	store  *storage.Media
	log    *zap.SugaredLogger
}

func NewSampler(reader ports.VideoReader, store *storage.Media, log *zap.SugaredLogger) *Sampler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Sampler{reader: reader, store: store, log: log}
}

// Sample decodes up to maxFrames frames at evenly spaced indices
// (index i = i*total/maxFrames, floored) and writes each as a JPEG into the
// media dir under a unique name prefixed with videoID. The evenly spaced
// variant covers the whole video regardless of the total/max ratio, unlike
// stride-based sampling.
//
// An unreadable video or one reporting zero frames yields an empty result,
// not an error. A frame that fails to decode is skipped, so the result may be
// shorter than maxFrames. Consecutive duplicate indices (total < maxFrames)
// are decoded once.
func (s *Sampler) Sample(ctx context.Context, videoPath, videoID string, maxFrames int) ([]string, error) {
	if maxFrames <= 0 {
		return nil, nil
	}

	total, err := s.reader.CountFrames(ctx, videoPath)
	if err != nil {
		s.log.Warnw("frame count failed", "video", videoPath, "error", err)
		return nil, nil
	}
	if total <= 0 {
		return nil, nil
	}

	var saved []string
	prev := -1
	for i := 0; i < maxFrames; i++ {
		idx := i * total / maxFrames
		if idx == prev {
			continue
		}
		prev = idx

		img, err := s.reader.DecodeFrame(ctx, videoPath, idx)
		if err != nil {
			s.log.Warnw("frame decode failed", "index", idx, "error", err)
			continue
		}

		path := s.store.FramePath(videoID)
		if err := writeJPEG(path, img); err != nil {
			return saved, err
		}
		saved = append(saved, path)
	}
	return saved, nil
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode frame: %w", err)
	}
	return f.Close()
}
