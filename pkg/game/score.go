package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ScoreStore persists the single high score.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

var ErrNoScore = errors.New("no high score stored")

// FileStore keeps the high score as one integer in a plain text file.
type FileStore struct {
	Path string
}

// Load returns the stored score. A missing, empty or malformed file yields 0
// together with an error describing why.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s does not exist", ErrNoScore, s.Path)
	} else if err != nil {
		return 0, fmt.Errorf("failed to read high score: %w", err)
	}

	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	if line == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrNoScore, s.Path)
	}

	score, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score in %s: %w", s.Path, err)
	}

	return score, nil
}

// Save writes score when it is strictly greater than the stored one.
func (s *FileStore) Save(score int) error {
	stored, _ := s.Load()
	if score <= stored {
		return nil
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create high score directory: %w", err)
		}
	}

	err := os.WriteFile(s.Path, []byte(strconv.Itoa(score)+"\n"), 0644)
	if err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}

	return nil
}

// MemoryStore keeps the high score in memory.
type MemoryStore struct {
	Score int
	Saves int
}

func (s *MemoryStore) Load() (int, error) {
	return s.Score, nil
}

func (s *MemoryStore) Save(score int) error {
	if score > s.Score {
		s.Score = score
		s.Saves++
	}

	return nil
}
