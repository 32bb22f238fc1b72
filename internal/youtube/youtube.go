// Package youtube resolves searches and watch URLs into streamable clips.
// Display metadata is fetched when the clip is requested; the raw audio URL
// only when the clip is about to play, since those URLs expire.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bruhbot/internal/playback"

	_ "github.com/bdandy/go-socks4" // registers the socks4 proxy scheme
	ytdl "github.com/kkdai/youtube/v2"
	"golang.org/x/net/proxy"
)

type Client struct {
	yt       ytdl.Client
	resolver *Resolver
}

// New builds a client, optionally tunnelling YouTube traffic through a
// SOCKS proxy (socks4://... or socks5://...).
func New(proxyURL string) (*Client, error) {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	if proxyURL != "" {
		transport, err := proxyTransport(proxyURL)
		if err != nil {
			return nil, err
		}
		httpClient.Transport = transport
	}

	return &Client{
		yt:       ytdl.Client{HTTPClient: httpClient},
		resolver: NewResolver(httpClient),
	}, nil
}

// Find resolves a search string or watch URL into a streamed clip.
func (c *Client) Find(input string) (playback.Clip, error) {
	input = strings.TrimSpace(input)

	watchURL := input
	if !isWatchURL(input) {
		var err error
		watchURL, err = c.resolver.SearchFirstVideoURL(input)
		if err != nil {
			return playback.Clip{}, err
		}
	}

	video, err := c.yt.GetVideo(watchURL)
	if err != nil {
		return playback.Clip{}, fmt.Errorf("fetch video metadata: %w", err)
	}

	clip := playback.Clip{
		Kind:      playback.ClipStreamed,
		Source:    watchURL,
		Title:     video.Title,
		Duration:  video.Duration,
		OriginURL: watchURL,
	}
	if len(video.Thumbnails) > 0 {
		clip.ThumbnailURL = video.Thumbnails[0].URL
	}
	return clip, nil
}

// StreamURL resolves the clip's raw audio URL. Called at play time, not at
// enqueue time.
func (c *Client) StreamURL(clip playback.Clip) (string, error) {
	video, err := c.yt.GetVideo(clip.Source)
	if err != nil {
		return "", fmt.Errorf("fetch video: %w", err)
	}

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return "", errors.New("video has no audio formats")
	}
	best := &formats[0]
	for i := range formats {
		if formats[i].Bitrate > best.Bitrate {
			best = &formats[i]
		}
	}
	return c.yt.GetStreamURL(video, best)
}

func isWatchURL(s string) bool {
	return strings.Contains(s, "youtube.com/watch?v=") ||
		strings.Contains(s, "music.youtube.com/watch?v=") ||
		strings.Contains(s, "youtu.be/")
}

func proxyTransport(proxyURL string) (*http.Transport, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL: %w", err)
	}

	dialer, err := proxy.FromURL(u, &net.Dialer{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("proxy dialer: %w", err)
	}

	return &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		},
	}, nil
}
