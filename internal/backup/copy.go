package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyPath copies src to dst, dispatching on the source type: regular
// files are copied as files, directories recursively. A missing source is
// an error the caller records as a per-item failure.
func CopyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source %s: %w", src, err)
	}
	if info.IsDir() {
		return CopyDir(src, dst)
	}
	return CopyFile(src, dst, info.Mode())
}

// CopyDir recursively copies the directory tree rooted at srcDir into
// dstDir, creating directories as needed and merging into an existing
// destination. Symbolic links are skipped to keep the copy behavior
// predictable.
func CopyDir(srcDir, dstDir string) error {
	return filepath.Walk(srcDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error walking source directory at %s: %w", path, walkErr)
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dstDir, relPath)

		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}

		if info.IsDir() {
			if err := os.MkdirAll(dstPath, info.Mode()); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}

		return CopyFile(path, dstPath, info.Mode())
	})
}

// CopyFile copies a single file from src to dst, preserving the file mode.
// io.Copy streams the contents, so large files are not loaded into memory.
func CopyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}
