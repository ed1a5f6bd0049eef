package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves paths that include a tilde (~) to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// ValidatePath checks if the given path is a valid file path for reading.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path stat error: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path %q is a directory, not a file", path)
	}

	if info.Mode()&os.ModeType != 0 {
		return fmt.Errorf("path %q is not a regular file", path)
	}
	return nil
}

// DefaultOutputPath replaces the extension of input with suffix.
// "scans/weekly.nessus" with "_vulnerabilities.yml" gives "scans/weekly_vulnerabilities.yml".
// Leading dots of the file name do not start an extension, so ".nessus" keeps its name.
func DefaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	if !strings.Contains(strings.TrimLeft(filepath.Base(input), "."), ".") {
		ext = ""
	}
	return strings.TrimSuffix(input, ext) + suffix
}

// WriteFileAtomic streams write into a temporary file next to path and renames it into place.
// The destination is either fully written or left untouched.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed creating file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	datawriter := bufio.NewWriter(tmp)
	if err = write(datawriter); err != nil {
		return err
	}
	if err = datawriter.Flush(); err != nil {
		return fmt.Errorf("error writing data to file: %w", err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}
