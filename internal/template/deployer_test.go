package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func testFiles() []File {
	return []File{
		{Path: "scss/_variables.scss", Content: []byte("$primary-color: #000;\n")},
		{Path: "scss/main.scss", Content: []byte("@import './variables';\n")},
		{Path: "SHADCN.md", Content: []byte("# ShadCN\n")},
	}
}

func TestDeployerDeploy(t *testing.T) {
	t.Run("successful_deployment", func(t *testing.T) {
		root := t.TempDir()
		d := NewDeployer()

		var observed []string
		written, err := d.Deploy(context.Background(), root, testFiles(), func(rel string) {
			observed = append(observed, rel)
		})
		if err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		want := []string{"scss/_variables.scss", "scss/main.scss", "SHADCN.md"}
		if !slices.Equal(written, want) {
			t.Errorf("written = %v, want %v", written, want)
		}
		if !slices.Equal(observed, want) {
			t.Errorf("observed = %v, want %v", observed, want)
		}
		for _, f := range want {
			if _, err := os.Stat(filepath.Join(root, f)); err != nil {
				t.Errorf("expected file %q to exist: %v", f, err)
			}
		}
	})

	t.Run("overwrites_existing_files", func(t *testing.T) {
		root := t.TempDir()
		target := filepath.Join(root, "SHADCN.md")
		if err := os.WriteFile(target, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatal(err)
		}

		d := NewDeployer()
		if _, err := d.Deploy(context.Background(), root, testFiles(), nil); err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "# ShadCN\n" {
			t.Errorf("content = %q, want overwritten content", string(data))
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		root := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		written, err := NewDeployer().Deploy(ctx, root, testFiles(), nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if len(written) != 0 {
			t.Errorf("written = %v, want none", written)
		}
	})

	t.Run("path_traversal_rejected", func(t *testing.T) {
		root := t.TempDir()
		files := []File{{Path: "../escape.txt", Content: []byte("x")}}

		_, err := NewDeployer().Deploy(context.Background(), root, files, nil)
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got %v", err)
		}
	})

	t.Run("write_failure_keeps_earlier_files", func(t *testing.T) {
		root := t.TempDir()
		// A regular file where a directory is needed makes MkdirAll fail.
		if err := os.WriteFile(filepath.Join(root, "blocked"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		files := []File{
			{Path: "ok.md", Content: []byte("ok")},
			{Path: "blocked/inner.md", Content: []byte("no")},
		}

		written, err := NewDeployer().Deploy(context.Background(), root, files, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if !slices.Equal(written, []string{"ok.md"}) {
			t.Errorf("written = %v, want [ok.md]", written)
		}
		if _, statErr := os.Stat(filepath.Join(root, "ok.md")); statErr != nil {
			t.Errorf("earlier file should remain: %v", statErr)
		}
	})
}

func TestDeployerEnsureDir(t *testing.T) {
	root := t.TempDir()
	d := NewDeployer()

	for i := range 2 {
		if err := d.EnsureDir(root, "a/b/c"); err != nil {
			t.Fatalf("EnsureDir attempt %d error: %v", i+1, err)
		}
	}
	info, err := os.Stat(filepath.Join(root, "a", "b", "c"))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}

	if err := d.EnsureDir(root, "../outside"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("expected ErrPathTraversal, got %v", err)
	}
}

func TestValidateDeployPath(t *testing.T) {
	root := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "theme/palette.ts", false},
		{"root file", "SHADCN.md", false},
		{"dotdot name", "..hidden", false},
		{"parent", "../x", true},
		{"nested parent", "a/../../x", true},
		{"absolute", "/etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeployPath(root, tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDeployPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
