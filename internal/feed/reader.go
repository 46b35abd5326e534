package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Line struct {
	Text string
	Time time.Time
}

// Reader tails the newest *.log file under Path (or Path itself when it is
// a file) and sends every non-empty line on Lines.
type Reader struct {
	Path  string
	Lines chan Line

	CheckInterval time.Duration
	PollInterval  time.Duration
	Backlog       int64
}

func NewReader(path string) *Reader {
	return &Reader{
		Path:          path,
		Lines:         make(chan Line, 1000),
		CheckInterval: 3 * time.Second,
		PollInterval:  100 * time.Millisecond,
		Backlog:       5000,
	}
}

func (r *Reader) Start(ctx context.Context) error {
	if _, err := os.Stat(r.Path); err != nil {
		return fmt.Errorf("feed path: %w", err)
	}
	go r.pollAndRead(ctx)
	return nil
}

func (r *Reader) pollAndRead(ctx context.Context) {
	defer close(r.Lines)

	var currentPath string
	var file *os.File
	var reader *bufio.Reader
	defer func() {
		if file != nil {
			file.Close()
		}
	}()

	lastCheck := time.Time{}

	for {
		if ctx.Err() != nil {
			return
		}

		// 1. Switch to a newer log when one appears
		if time.Since(lastCheck) > r.CheckInterval {
			latestPath, err := r.findLatest()
			if err == nil && latestPath != currentPath {
				fmt.Printf("🔄 Loading feed: %s\n", filepath.Base(latestPath))

				newFile, err := os.Open(latestPath)
				if err != nil {
					fmt.Printf("❌ Error opening feed: %v\n", err)
				} else {
					if file != nil {
						file.Close()
					}
					// Back up a little so events written just before we
					// attached are not lost.
					if stat, err := newFile.Stat(); err == nil {
						startPos := stat.Size() - r.Backlog
						if startPos < 0 {
							startPos = 0
						}
						newFile.Seek(startPos, io.SeekStart)
					}

					file = newFile
					currentPath = latestPath
					reader = bufio.NewReader(file)
				}
			}
			lastCheck = time.Now()
		}

		// 2. Read
		if reader == nil {
			r.sleep(ctx, time.Second)
			continue
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			// Re-queue a partial line until the writer finishes it.
			reader = bufio.NewReader(io.MultiReader(strings.NewReader(line), file))
			r.sleep(ctx, r.PollInterval)
			continue
		}

		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		select {
		case r.Lines <- Line{Text: clean, Time: time.Now()}:
		case <-ctx.Done():
			return
		}
	}
}

func (r *Reader) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (r *Reader) findLatest() (string, error) {
	info, err := os.Stat(r.Path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return r.Path, nil
	}

	logs, err := scanDir(r.Path)
	if err != nil {
		return "", err
	}
	if len(logs) == 0 {
		return "", fmt.Errorf("no feed logs in %s", r.Path)
	}

	// Sort Oldest -> Newest
	sort.Slice(logs, func(i, j int) bool {
		fi, _ := os.Stat(logs[i])
		fj, _ := os.Stat(logs[j])
		if fi == nil || fj == nil {
			return logs[i] < logs[j]
		}
		return fi.ModTime().Before(fj.ModTime())
	})

	return logs[len(logs)-1], nil
}

func scanDir(path string) ([]string, error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var logs []string
	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ".log") {
			logs = append(logs, filepath.Join(path, f.Name()))
		}
	}
	return logs, nil
}
