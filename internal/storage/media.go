// Package storage manages the shared media directory holding downloaded
// videos and extracted frames. Every file name starts with the owning
// request's video id, so listing and cleanup stay isolated per request even
// though the directory is shared.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Media struct {
	root string
}

func NewMedia(root string) (*Media, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", root, err)
	}
	return &Media{root: root}, nil
}

func (m *Media) Root() string {
	return m.root
}

// VideoPath is where the downloaded video for the given id lives.
func (m *Media) VideoPath(videoID string) string {
	return filepath.Join(m.root, videoID+".mp4")
}

// FramePath returns a fresh unique path for one extracted frame. The video id
// prefix ties the file to its request; the random suffix avoids collisions
// between frames of the same video.
func (m *Media) FramePath(videoID string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return filepath.Join(m.root, videoID+"_"+suffix+".jpg")
}

// ListFrames returns the frame files generated for the given id, sorted by
// name.
func (m *Media) ListFrames(videoID string) ([]string, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return nil, fmt.Errorf("read media dir: %w", err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, videoID+"_") && strings.HasSuffix(name, ".jpg") {
			out = append(out, filepath.Join(m.root, name))
		}
	}
	sort.Strings(out)
	return out, nil
}

// Cleanup removes every file owned by the given id (video and frames) and
// reports how many were deleted. Files of other ids are never touched.
func (m *Media) Cleanup(videoID string) (int, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		return 0, fmt.Errorf("read media dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name != videoID+".mp4" && !strings.HasPrefix(name, videoID+"_") {
			continue
		}
		if err := os.Remove(filepath.Join(m.root, name)); err != nil {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed++
	}
	return removed, nil
}
