// Package captions fetches YouTube caption tracks through the public
// timedtext endpoint and flattens them into one transcript string.
package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mindreel/mindreel/internal/ports"
)

var videoIDRE = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the 11-character video id out of a YouTube URL.
func ExtractVideoID(videoURL string) (string, error) {
	m := videoIDRE.FindStringSubmatch(videoURL)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ports.ErrInvalidURL, videoURL)
	}
	return m[1], nil
}

type Client struct {
	baseURL string
	langs   []string
	client  *http.Client
}

// New builds a transcript source trying the given caption languages in order.
func New(langs []string) *Client {
	if len(langs) == 0 {
		langs = []string{"en", "hi"}
	}
	return &Client{
		baseURL: "https://video.google.com",
		langs:   langs,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the concatenated caption text for the video, or
// ports.ErrNoCaptions when no configured language has a track.
func (c *Client) Fetch(ctx context.Context, videoURL string) (string, error) {
	id, err := ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}

	for _, lang := range c.langs {
		text, err := c.fetchTrack(ctx, id, lang)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}
	return "", ports.ErrNoCaptions
}

func (c *Client) fetchTrack(ctx context.Context, videoID, lang string) (string, error) {
	q := url.Values{}
	q.Set("lang", lang)
	q.Set("v", videoID)
	reqURL := c.baseURL + "/timedtext?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch captions: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	// The endpoint answers 200 with an empty body when the track is missing.
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", nil
	}

	var track struct {
		Texts []struct {
			Value string `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.Unmarshal(body, &track); err != nil {
		return "", fmt.Errorf("parse captions: %w", err)
	}

	parts := make([]string, 0, len(track.Texts))
	for _, t := range track.Texts {
		v := strings.TrimSpace(html.UnescapeString(t.Value))
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}
