package update

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/peon-ping-cli/internal/ports"
)

const (
	// DefaultVersionURL serves the latest released version string.
	DefaultVersionURL = "https://raw.githubusercontent.com/bnema/peon-ping-cli/main/VERSION"

	versionFileName   = "VERSION"
	lastCheckFileName = ".last_update_check"
	pendingFileName   = ".update_available"

	checkInterval = 24 * time.Hour
	fetchTimeout  = 5 * time.Second
)

// Checker compares the locally installed version against the published one,
// at most once per day, and leaves a flag file behind when they differ. It is
// best effort: every failure mode is swallowed so the hook response path is
// never affected.
type Checker struct {
	dir    string
	url    string
	client *http.Client
	clock  ports.Clock
}

func NewChecker(dir, url string, client *http.Client, clock ports.Clock) *Checker {
	if url == "" {
		url = DefaultVersionURL
	}
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Checker{dir: dir, url: url, client: client, clock: clock}
}

// RunBackground starts a throttled check on its own goroutine. The caller
// does not wait for it beyond the process's grace period.
func (c *Checker) RunBackground() {
	go func() {
		_, _, _ = c.check(false)
	}()
}

// CheckNow bypasses the throttle and reports both versions.
func (c *Checker) CheckNow() (local, remote string, err error) {
	return c.check(true)
}

func (c *Checker) check(force bool) (string, string, error) {
	now := c.clock.Now().Unix()
	if !force && !c.due(now) {
		return "", "", nil
	}
	_ = os.WriteFile(filepath.Join(c.dir, lastCheckFileName), []byte(strconv.FormatInt(now, 10)), 0o644)

	local := c.localVersion()

	remote, err := c.fetchRemote()
	if err != nil {
		return local, "", err
	}

	pending := filepath.Join(c.dir, pendingFileName)
	if remote != "" && local != "" && remote != local {
		_ = os.WriteFile(pending, []byte(remote), 0o644)
	} else {
		_ = os.Remove(pending)
	}

	return local, remote, nil
}

func (c *Checker) due(now int64) bool {
	data, err := os.ReadFile(filepath.Join(c.dir, lastCheckFileName))
	if err != nil {
		return true
	}
	last, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return true
	}
	return now-last > int64(checkInterval/time.Second)
}

func (c *Checker) localVersion() string {
	data, err := os.ReadFile(filepath.Join(c.dir, versionFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (c *Checker) fetchRemote() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build version request: %w", err)
	}
	req.Header.Set("User-Agent", "peon-ping")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch remote version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch remote version: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read remote version: %w", err)
	}

	return strings.TrimSpace(string(body)), nil
}

// Pending returns the version recorded by the last successful check when it
// differs from the installed one.
func (c *Checker) Pending() (string, bool) {
	data, err := os.ReadFile(filepath.Join(c.dir, pendingFileName))
	if err != nil {
		return "", false
	}
	version := strings.TrimSpace(string(data))
	return version, version != ""
}

// Notice returns the stderr line announcing a pending update, if any.
func (c *Checker) Notice() (string, bool) {
	newVersion, ok := c.Pending()
	if !ok {
		return "", false
	}

	current := c.localVersion()
	if current == "" {
		current = "?"
	}

	return fmt.Sprintf("peon-ping update available: %s → %s — run: curl -fsSL https://raw.githubusercontent.com/bnema/peon-ping-cli/main/install.sh | bash",
		current, newVersion), true
}
