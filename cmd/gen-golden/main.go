package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/chipmd"
)

const marker = "{{chip}}"

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		if err := chipmd.ValidateInput(src); err != nil {
			fatalf("validate %s: %v", path, err)
		}
		segments := strings.Split(string(src), marker)
		if err := chipmd.ValidateSegments(segments); err != nil {
			fatalf("validate %s: %v", path, err)
		}
		res := chipmd.Render(chipmd.PrepareText(segments))
		if got, want := len(res.InsertionPoints), len(segments)-1; got != want {
			fatalf("render %s: %d insertion points, want %d", path, got, want)
		}
		goldenPath := strings.TrimSuffix(path, ".md") + ".golden"
		if err := os.WriteFile(goldenPath, []byte(res.Tree.String()+"\n"), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
