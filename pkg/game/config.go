package game

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultWidth         = 10
	DefaultHeight        = 20
	DefaultFallInterval  = 270 * time.Millisecond
	DefaultGameOverDelay = 1500 * time.Millisecond
	DefaultScorePerRow   = 10
	DefaultFrameRate     = 60
)

// Config holds everything the game loop needs that used to be global state.
type Config struct {
	Width  int
	Height int

	// FallInterval is how long the falling piece waits before dropping a row.
	FallInterval time.Duration
	// GameOverDelay is how long the lost board stays on screen.
	GameOverDelay time.Duration
	ScorePerRow   int
	FrameRate     int

	// Randomizer is "uniform" or "bag".
	Randomizer string
	Seed       int64

	PlayerName string
}

func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FallInterval:  DefaultFallInterval,
		GameOverDelay: DefaultGameOverDelay,
		ScorePerRow:   DefaultScorePerRow,
		FrameRate:     DefaultFrameRate,
		Randomizer:    "uniform",
	}
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 4:
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval must be positive, got %s", ErrInvalidConfig, c.FallInterval)
	case c.GameOverDelay < 0:
		return fmt.Errorf("%w: game over delay must not be negative, got %s", ErrInvalidConfig, c.GameOverDelay)
	case c.ScorePerRow < 0:
		return fmt.Errorf("%w: score per row must not be negative, got %d", ErrInvalidConfig, c.ScorePerRow)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	}

	return nil
}

// FrameDuration is the time between two ticks of the loop.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
