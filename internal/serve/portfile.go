package serve

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	stateDirName     = ".codenest"
	portFileName     = "serve-port"
	portLockFileName = "serve-port.lock"
	instancePrefix   = "page_"
	healthTimeout    = 2 * time.Second
)

// PortInfo is written to .codenest/serve-port while a page server runs so
// other processes can find it.
type PortInfo struct {
	Addr       string    `json:"addr"`
	Port       int       `json:"port"`
	PID        int       `json:"pid"`
	StartedAt  time.Time `json:"started_at"`
	InstanceID string    `json:"instance_id"`
}

// URL returns the address of the landing page.
func (p *PortInfo) URL() string {
	host := p.Addr
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(p.Port)) + "/"
}

// GenerateInstanceID returns "page_" followed by 6 random hex characters.
func GenerateInstanceID() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate instance id: %w", err)
	}
	return instancePrefix + hex.EncodeToString(b), nil
}

func portFilePath(baseDir string) string {
	return filepath.Join(baseDir, stateDirName, portFileName)
}

func portLockFilePath(baseDir string) string {
	return filepath.Join(baseDir, stateDirName, portLockFileName)
}

// acquireFileLockTimeout polls tryFileLock, backing off from 5ms to 50ms,
// until timeout.
func acquireFileLockTimeout(f *os.File, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	backoff := 5 * time.Millisecond
	const maxBackoff = 50 * time.Millisecond

	for {
		if err := tryFileLock(f); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout after %v waiting for port file lock", timeout)
		}
		time.Sleep(backoff)
		backoff = min(backoff*2, maxBackoff)
	}
}

// WritePortFile registers a running server. It holds an exclusive lock on
// serve-port.lock while checking for a live server and writing, so two
// servers started together cannot both register.
func WritePortFile(baseDir string, info *PortInfo) error {
	if err := os.MkdirAll(filepath.Join(baseDir, stateDirName), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	lockFile, err := os.OpenFile(portLockFilePath(baseDir), os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open port lock file: %w", err)
	}
	defer lockFile.Close()

	if err := acquireFileLockTimeout(lockFile, 5*time.Second); err != nil {
		return fmt.Errorf("acquire port lock: %w", err)
	}
	defer releaseFileLock(lockFile)

	if existing, err := ReadPortFile(baseDir); err == nil {
		if !IsPortFileStale(existing) {
			return fmt.Errorf("codenest serve already running at %s (pid %d)", existing.URL(), existing.PID)
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal port info: %w", err)
	}
	if err := os.WriteFile(portFilePath(baseDir), data, 0644); err != nil {
		return fmt.Errorf("write port file: %w", err)
	}
	return nil
}

// ReadPortFile reads .codenest/serve-port.
func ReadPortFile(baseDir string) (*PortInfo, error) {
	data, err := os.ReadFile(portFilePath(baseDir))
	if err != nil {
		return nil, fmt.Errorf("read port file: %w", err)
	}

	var info PortInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse port file: %w", err)
	}

	if info.Port == 0 {
		return nil, fmt.Errorf("port file missing required field: port")
	}
	if info.PID == 0 {
		return nil, fmt.Errorf("port file missing required field: pid")
	}
	if info.InstanceID == "" {
		return nil, fmt.Errorf("port file missing required field: instance_id")
	}
	return &info, nil
}

// DeletePortFile removes the port file on shutdown.
func DeletePortFile(baseDir string) error {
	if err := os.Remove(portFilePath(baseDir)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove port file: %w", err)
	}
	return nil
}

// IsServerHealthy probes the landing page. The page is the only route, so a
// 200 from HEAD / means the server is up.
func IsServerHealthy(info *PortInfo) bool {
	client := &http.Client{Timeout: healthTimeout}
	req, err := http.NewRequest(http.MethodHead, info.URL(), nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// IsPortFileStale reports whether the registered server is gone: its PID is
// dead or its page does not answer.
func IsPortFileStale(info *PortInfo) bool {
	if !isProcessAlive(info.PID) {
		return true
	}
	return !IsServerHealthy(info)
}
