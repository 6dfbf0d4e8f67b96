package fileurl

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IsDir determines if the given path is a directory.
func IsDir(p string) bool {
	s, err := os.Stat(p)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// IsFile determines if the given path is a file.
func IsFile(p string) bool {
	return !IsDir(p)
}

// IsExist determines if the given path exists.
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// GetFileExt gets file extension, including the dot.
func GetFileExt(name string) string {
	return path.Ext(name)
}

// GetFileNameOrRandom returns name, or a random unique name when the
// original is empty or the clipboard default.
// Attachments pasted from the clipboard all arrive as "image.png".
func GetFileNameOrRandom(name string) string {
	if name == "" {
		return uuid.New().String()
	}
	if name == "image.png" {
		return uuid.New().String() + ".png"
	}
	return name
}

// CreatePath creates the parent directory of dst.
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// GetExePath gets the directory of the current executable.
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	p, _ := filepath.Abs(file)
	index := strings.LastIndex(p, string(os.PathSeparator))
	return p[:index]
}

// PathSuffixCheckAdd appends suffix to path if not already present.
// Empty paths stay empty so prefix joins do not produce a leading slash.
func PathSuffixCheckAdd(p string, suffix string) string {
	if p == "" {
		return p
	}
	if !strings.HasSuffix(p, suffix) {
		p = p + suffix
	}
	return p
}
