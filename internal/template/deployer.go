package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is a rendered file ready to be written below an output root.
type File struct {
	// Path is slash-separated and relative to the output root.
	Path    string
	Content []byte
}

// WriteObserver is called after each file is written, with the file's
// root-relative path.
type WriteObserver func(relPath string)

// Deployer writes rendered files below an output root.
type Deployer interface {
	// EnsureDir creates dir (relative to root) and its parents. It does
	// not fail when the directory already exists.
	EnsureDir(root, dir string) error

	// Deploy writes every file in order, fully overwriting existing files.
	// It stops at the first failure and returns the paths written so far;
	// files already written are left in place.
	Deploy(ctx context.Context, root string, files []File, observe WriteObserver) ([]string, error)
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	perm fs.FileMode
}

// NewDeployer creates a Deployer that writes files with 0644 permissions.
func NewDeployer() Deployer {
	return &deployer{perm: 0o644}
}

// EnsureDir creates root/dir with all parents.
func (d *deployer) EnsureDir(root, dir string) error {
	root = filepath.Clean(root)
	if err := validateDeployPath(root, dir); err != nil {
		return err
	}
	target := filepath.Join(root, filepath.FromSlash(dir))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", target, err)
	}
	return nil
}

// Deploy writes files below root, checking for cancellation before each one.
func (d *deployer) Deploy(ctx context.Context, root string, files []File, observe WriteObserver) ([]string, error) {
	root = filepath.Clean(root)
	written := make([]string, 0, len(files))

	for _, f := range files {
		select {
		case <-ctx.Done():
			return written, ctx.Err()
		default:
		}

		if err := validateDeployPath(root, f.Path); err != nil {
			return written, err
		}

		destPath := filepath.Join(root, filepath.FromSlash(f.Path))
		destDir := filepath.Dir(destPath)
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return written, fmt.Errorf("create directory %q: %w", destDir, err)
		}

		if err := os.WriteFile(destPath, f.Content, d.perm); err != nil {
			return written, fmt.Errorf("write %q: %w", destPath, err)
		}

		written = append(written, f.Path)
		if observe != nil {
			observe(f.Path)
		}
	}

	return written, nil
}

// validateDeployPath ensures a target path does not escape root.
func validateDeployPath(root, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve output root: %w", err)
	}

	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return fmt.Errorf("%w: %q escapes output root", ErrPathTraversal, relPath)
	}

	return nil
}
