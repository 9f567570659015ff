package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"
)

// castHeader is the first line of an asciinema v2 recording.
type castHeader struct {
	Version   int    `json:"version"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Title     string `json:"title,omitempty"`
}

// GenerateASCIICast writes frames as an asciinema v2 recording: a JSON
// header line followed by one [time, "o", data] event per frame. Each
// frame clears the screen and redraws, so playback looks like the live
// program.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	header := castHeader{
		Version:   2,
		Width:     width,
		Height:    height,
		Timestamp: time.Now().Unix(),
		Title:     "jot demo",
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("error encoding cast header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", headerJSON); err != nil {
		return err
	}

	elapsed := 0.0
	for _, frame := range frames {
		elapsed += frame.Delay.Seconds()

		// Clear screen and home the cursor before each redraw
		payload := "\x1b[2J\x1b[H" + frame.Content
		event := []interface{}{roundCastTime(elapsed), "o", payload}
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("error encoding cast event: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", eventJSON); err != nil {
			return err
		}
	}
	return nil
}

// roundCastTime keeps event timestamps to millisecond precision so the
// cast file stays readable.
func roundCastTime(t float64) float64 {
	return math.Round(t*1000) / 1000
}
