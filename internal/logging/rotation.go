package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const filePrefix = appName + "_"

// rotate keeps at most maxFiles log files in dir, removing the oldest by
// modification time. Only files named "tmux-toaster_*.log" are considered.
// maxFiles <= 0 disables rotation.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		path    string
		modTime int64
	}
	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		f := logFile{path: filepath.Join(dir, name)}
		if info, err := entry.Info(); err == nil {
			f.modTime = info.ModTime().UnixNano()
		}
		files = append(files, f)
	}
	if len(files) <= maxFiles {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].modTime == files[j].modTime {
			return files[i].path < files[j].path
		}
		return files[i].modTime < files[j].modTime
	})
	for _, f := range files[:len(files)-maxFiles] {
		os.Remove(f.path) // ignore errors
	}
	return nil
}
