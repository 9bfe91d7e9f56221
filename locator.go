package easel

import (
	"fmt"
	"os"
	"path/filepath"
)

// locatorEnv is the filesystem view used by the resource locator.
type locatorEnv struct {
	getwd      func() (string, error)
	executable func() (string, error)
	isDir      func(path string) bool
	chdir      func(dir string) error
}

func osLocatorEnv() locatorEnv {
	return locatorEnv{
		getwd:      os.Getwd,
		executable: os.Executable,
		isDir: func(path string) bool {
			fi, err := os.Stat(path)
			return err == nil && fi.IsDir()
		},
		chdir: os.Chdir,
	}
}

// maxAncestorLevels is how far above the executable directory the locator
// looks.
const maxAncestorLevels = 3

// LocateResourceDir searches for a directory named folder and makes it the
// process working directory. The candidates, in order, are folder relative to
// the working directory, folder inside the executable's directory, and folder
// inside each of the three directories above the executable's directory. It
// returns the absolute path that was selected, or an error wrapping
// ErrStartup without changing directory when no candidate exists.
func LocateResourceDir(folder string) (string, error) {
	return locateResourceDir(osLocatorEnv(), folder)
}

func locateResourceDir(env locatorEnv, folder string) (string, error) {
	candidates, err := resourceCandidates(env, folder)
	if err != nil {
		return "", err
	}
	for _, dir := range candidates {
		if !env.isDir(dir) {
			continue
		}
		if err := env.chdir(dir); err != nil {
			return "", fmt.Errorf("%w: change directory to %s: %v", ErrStartup, dir, err)
		}
		return dir, nil
	}
	return "", fmt.Errorf("%w: could not find the %q folder", ErrStartup, folder)
}

// resourceCandidates lists the absolute paths LocateResourceDir tries.
func resourceCandidates(env locatorEnv, folder string) ([]string, error) {
	if folder == "" {
		return nil, fmt.Errorf("%w: empty resource folder name", ErrStartup)
	}
	candidates := make([]string, 0, 2+maxAncestorLevels)

	if filepath.IsAbs(folder) {
		candidates = append(candidates, filepath.Clean(folder))
	} else if wd, err := env.getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, folder))
	}

	exe, err := env.executable()
	if err != nil {
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: resolve executable: %v", ErrStartup, err)
		}
		return candidates, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	candidates = append(candidates, filepath.Join(dir, folder))
	for i := 0; i < maxAncestorLevels; i++ {
		dir = filepath.Dir(dir)
		candidates = append(candidates, filepath.Join(dir, folder))
	}
	return candidates, nil
}
