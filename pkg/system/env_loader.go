package system

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// find in root
func findFileInProjectRoot(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, filename)); err == nil {
			return dir, nil
		}
		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}
	return "", os.ErrNotExist
}

// LoadEnv loads variables from filename, looking in the working directory
// first and then in each parent. Variables already set are left alone.
func LoadEnv(filename string) error {
	path := filename
	if _, err := os.Stat(path); err != nil {
		rootDir, rootErr := findFileInProjectRoot(filename)
		if rootErr != nil {
			return rootErr
		}
		path = filepath.Join(rootDir, filename)
	}
	return godotenv.Load(path)
}

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
