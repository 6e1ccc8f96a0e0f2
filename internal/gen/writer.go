package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file to path, creating parent directories.
// An empty path or "-" writes to stdout instead.
func WriteFile(file *GeneratedFile, path string, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(file.Content)
		if err != nil {
			return fmt.Errorf("writing %s: %w", file.Filename, err)
		}

		return nil
	}

	if dir := filepath.Dir(path); dir != "" {
		err := os.MkdirAll(dir, dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	err := os.WriteFile(path, file.Content, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// WriteFiles writes all generated files into outputDir under their own names.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. Best-effort; errors are returned but callers ignore them.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
