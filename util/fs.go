package util

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

var illegalFilenameChars = []string{"/", "\\", "|", "?", "*", ":", ">", "<", "\""}

// LegalizeFilename strips characters most filesystems
// would refuse in a file name
func LegalizeFilename(filename string) string {
	for _, char := range illegalFilenameChars {
		filename = strings.ReplaceAll(filename, char, "")
	}
	return strings.TrimSpace(filename)
}

// FileBaseStem returns the file name deprived of its extension
func FileBaseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CacheFile returns the path of the given file name
// within the application cache directory
func CacheFile(name string) string {
	path, err := xdg.CacheFile(filepath.Join("tunegrab", name))
	if err != nil {
		return filepath.Join(os.TempDir(), "tunegrab", name)
	}
	return path
}

// FileMoveOrCopy relocates a file, falling back to a
// copy-and-remove when rename crosses filesystems
func FileMoveOrCopy(source, destination string, overwrite ...bool) error {
	if len(overwrite) == 0 || !overwrite[0] {
		if _, err := os.Stat(destination); err == nil {
			return os.ErrExist
		}
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return err
	}

	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer output.Close()

	if _, err := io.Copy(output, input); err != nil {
		return err
	}
	return os.Remove(source)
}
