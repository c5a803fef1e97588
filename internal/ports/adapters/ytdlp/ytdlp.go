// Package ytdlp downloads videos by shelling out to the yt-dlp binary.
package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
)

type Adapter struct {
	bin string
}

func New(binPath string) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	return &Adapter{bin: binPath}
}

func (a *Adapter) Download(ctx context.Context, videoURL, outPath string) error {
	cmd := exec.CommandContext(ctx, a.bin,
		"-f", "bestvideo+bestaudio/best",
		"--merge-output-format", "mp4",
		"--no-playlist",
		"--quiet",
		"-o", outPath,
		videoURL,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("yt-dlp download: %w\n%s", err, string(b))
	}
	return nil
}
