// Package speech pronounces characters through Google Translate TTS.
// Audio is best-effort: every failure is swallowed so a missing player
// or offline machine never interrupts a quiz.
package speech

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	ttsEndpoint = "https://translate.google.com/translate_tts"
	ttsLang     = "zh-CN"
	fetchLimit  = 10 * time.Second
)

// players that can play an mp3 from the command line, in preference
// order.
var players = [][]string{
	{"afplay"},
	{"mpg123", "-q"},
	{"mpv", "--no-terminal"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// Speaker fetches and plays pronunciations, caching the mp3s on disk.
type Speaker struct {
	client   *http.Client
	cacheDir string
	player   []string
	muted    bool
}

// New builds a Speaker. The returned Speaker is disabled (but safe to
// use) when no supported audio player is on PATH.
func New() *Speaker {
	s := &Speaker{
		client: &http.Client{Timeout: fetchLimit},
	}
	for _, p := range players {
		if _, err := exec.LookPath(p[0]); err == nil {
			s.player = p
			break
		}
	}
	if dir, err := os.UserCacheDir(); err == nil {
		s.cacheDir = filepath.Join(dir, "radmaster", "tts")
	}
	return s
}

// Enabled reports whether audio playback is possible at all.
func (s *Speaker) Enabled() bool { return s.player != nil }

// Muted reports the mute state.
func (s *Speaker) Muted() bool { return s.muted }

// ToggleMute flips the mute state and returns the new value.
func (s *Speaker) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Say pronounces text asynchronously. Muted speakers stay silent
// unless force is set. Errors are dropped.
func (s *Speaker) Say(text string, force bool) {
	if s.player == nil || text == "" {
		return
	}
	if s.muted && !force {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		path, err := s.fetch(ctx, text)
		if err != nil {
			return
		}
		args := append(s.player[1:], path)
		_ = exec.CommandContext(ctx, s.player[0], args...).Run()
	}()
}

// fetch returns the cached mp3 for text, downloading it on a miss.
func (s *Speaker) fetch(ctx context.Context, text string) (string, error) {
	sum := sha1.Sum([]byte(ttsLang + ":" + text))
	path := filepath.Join(s.cacheDir, hex.EncodeToString(sum[:])+".mp3")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", ttsLang)
	q.Set("q", text)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ttsEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tts: status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(s.cacheDir, "dl-*.mp3")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	tmp.Close()
	return path, os.Rename(tmp.Name(), path)
}
