package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/advent/internal/config"
)

// Loader resolves puzzle input for a day: cached file, interactively
// captured fixture, or authenticated download.
type Loader struct {
	cfg      config.Config
	fixture  int // 0 means real puzzle input
	prompter Prompter
	client   *http.Client
}

// NewLoader creates a loader. fixture selects the test fixture to use,
// or 0 for real puzzle input. A nil client falls back to
// http.DefaultClient.
func NewLoader(cfg config.Config, fixture int, prompter Prompter, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{cfg: cfg, fixture: fixture, prompter: prompter, client: client}
}

// Load returns the puzzle data for day, populating the cache first if
// needed.
func (l *Loader) Load(day int) (*PuzzleData, error) {
	dir := filepath.Join(l.cfg.CacheDir, fmt.Sprintf("day%d", day))
	name := "input.txt"
	if l.fixture != 0 {
		name = fmt.Sprintf("test%d.txt", l.fixture)
	}
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil {
		slog.Debug("using cached puzzle input", "day", day, "path", path)
		return NewPuzzleData(path, l.fixture != 0), nil
	}

	var content string
	if l.fixture != 0 {
		slog.Info("fixture not cached; requesting content from user", "path", path)
		lines, expected, err := l.prompter.ReadFixture(l.fixture)
		if err != nil {
			return nil, fmt.Errorf("reading fixture %d: %w", l.fixture, err)
		}
		content = resultPrefix + expected + "\nInput:\n" + strings.Join(lines, "\n")
	} else {
		var err error
		content, err = l.download(day)
		if err != nil {
			return nil, err
		}
	}

	if err := l.save(content, dir, path); err != nil {
		return nil, err
	}
	return NewPuzzleData(path, l.fixture != 0), nil
}

func (l *Loader) download(day int) (string, error) {
	cookie, err := l.loadCookie()
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", l.cfg.BaseURL, l.cfg.Year, day)
	slog.Info("downloading puzzle input", "url", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: cookie})

	resp, err := l.client.Do(req)
	if err != nil {
		return "", &LoadError{
			Code:    CodeDownloadFailed,
			Message: fmt.Sprintf("requesting %s", url),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &LoadError{
			Code:    CodeDownloadFailed,
			Message: fmt.Sprintf("unexpected status %s fetching %s", resp.Status, url),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &LoadError{
			Code:    CodeDownloadFailed,
			Message: "reading response body",
			Err:     err,
		}
	}
	return string(body), nil
}

func (l *Loader) loadCookie() (string, error) {
	data, err := os.ReadFile(l.cfg.CookieFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &LoadError{
			Code:    CodeMissingCookie,
			Message: "a session cookie is required to download puzzle input",
			Path:    l.cfg.CookieFile,
		}
	}
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimRight(first, " \t\r"), nil
}

func (l *Loader) save(content, dir, path string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
