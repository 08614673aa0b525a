// Package workdir resolves the directory that holds codenest's state
// (.codenest/config.json and the serve port file).
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const stateDir = ".codenest"

// ResolveBaseDir resolves the project root with conservative heuristics:
//  1. Use baseDir if it already has a .codenest directory.
//  2. If inside git, use the git root when it has a .codenest directory.
//
// Otherwise it returns baseDir unchanged.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	if hasStateDir(baseDir) {
		return baseDir
	}

	gitRoot, err := gitTopLevel(baseDir)
	if err != nil || gitRoot == "" {
		return baseDir
	}
	gitRoot = filepath.Clean(gitRoot)

	if hasStateDir(gitRoot) {
		return gitRoot
	}
	return baseDir
}

func hasStateDir(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, stateDir))
	return err == nil && fi.IsDir()
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
