// Package soundboard picks playable clips out of a directory of audio
// files. Search is fuzzy so "brh" still finds "bruh.mp3".
package soundboard

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bruhbot/internal/playback"
)

var ErrNoClips = errors.New("soundboard directory has no clips")

type Library struct {
	dir string
}

func New(dir string) *Library {
	return &Library{dir: dir}
}

// Names lists every clip name (file name without extension), sorted.
func (l *Library) Names() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read soundboard dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		names = append(names, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(names)
	return names, nil
}

// Find returns the clip whose name best matches search. There is always a
// best match as long as the directory has any clips at all.
func (l *Library) Find(search string) (playback.Clip, error) {
	files, err := l.files()
	if err != nil {
		return playback.Clip{}, err
	}

	bestFile := ""
	bestScore := -1.0
	for _, file := range files {
		name := strings.TrimSuffix(file, filepath.Ext(file))
		score := tokenSetScore(search, name)
		if score > bestScore {
			bestScore = score
			bestFile = file
		}
	}
	return l.clip(bestFile), nil
}

// Random picks any clip.
func (l *Library) Random() (playback.Clip, error) {
	files, err := l.files()
	if err != nil {
		return playback.Clip{}, err
	}
	return l.clip(files[rand.Intn(len(files))]), nil
}

func (l *Library) files() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read soundboard dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, ErrNoClips
	}
	return files, nil
}

func (l *Library) clip(file string) playback.Clip {
	name := strings.TrimSuffix(file, filepath.Ext(file))
	return playback.Clip{
		Kind:   playback.ClipLocal,
		Source: filepath.Join(l.dir, file),
		Title:  name + " (soundboard)",
	}
}
