// Command reader is a terminal RSVP client for a running FastReader server.
// It fetches a document's text, plays it frame by frame, and reports the
// session when the reader quits.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fastreader/cmd/reader/ui"
)

func main() {
	serverFlag := flag.String("server", "http://localhost:8080", "FastReader server base URL")
	docFlag := flag.Int64("doc", 0, "Document ID to read")
	wpmFlag := flag.Int("wpm", 300, "Reading speed in words per minute")
	chunkFlag := flag.Int("chunk", 1, "Words per frame")
	flag.Parse()

	if *docFlag < 1 {
		fmt.Fprintln(os.Stderr, "usage: reader -doc <id> [-server URL] [-wpm N] [-chunk N]")
		os.Exit(2)
	}

	content, err := fetchText(*serverFlag, *docFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	p := tea.NewProgram(ui.InitialModel(content, *wpmFlag, *chunkFlag), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	if err := reportSession(*serverFlag, *docFlag, *wpmFlag, *chunkFlag, int(time.Since(start).Seconds())); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session: %v\n", err)
	}
}

func fetchText(baseURL string, docID int64) (string, error) {
	resp, err := http.Get(fmt.Sprintf("%s/api/text/%d", baseURL, docID))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("document %d not found", docID)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s", resp.Status)
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.Content, nil
}

func reportSession(baseURL string, docID int64, wpm, chunk, durationSeconds int) error {
	body, err := json.Marshal(map[string]any{
		"speed_wpm":        wpm,
		"chunk_size":       chunk,
		"duration_seconds": durationSeconds,
	})
	if err != nil {
		return err
	}

	resp, err := http.Post(
		fmt.Sprintf("%s/api/log/%d", baseURL, docID),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}
