package core

import (
	"compress/gzip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// GetCachedPage returns a previously exported page.
func GetCachedPage(outputDir, relPath string) ([]byte, bool) {
	content, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(relPath)))
	if err != nil {
		return nil, false
	}
	return content, true
}

// SaveCachedPage writes content to relPath under outputDir together with a
// gzipped copy next to it.
func SaveCachedPage(outputDir, relPath string, content []byte) error {
	target := filepath.Join(outputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}

	if err := os.WriteFile(target, content, 0644); err != nil {
		return err
	}

	f, err := os.Create(target + ".gz")
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(content); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// ExportSite renders the index, every demo page and the static assets into
// outputDir using the same URL layout the server uses. It returns the
// written paths relative to outputDir.
func ExportSite(r Renderer, assets *Assets, outputDir string) ([]string, error) {
	var written []string

	index, err := RenderTemplate(r, IndexTemplate, IndexValues())
	if err != nil {
		return written, fmt.Errorf("render index: %w", err)
	}
	if err := SaveCachedPage(outputDir, "index.html", index); err != nil {
		return written, fmt.Errorf("save index: %w", err)
	}
	written = append(written, "index.html")

	for _, demo := range Demos() {
		html, err := RenderTemplate(r, demo.TemplateFile, DemoValues(demo))
		if err != nil {
			return written, fmt.Errorf("render %s: %w", demo.TemplateFile, err)
		}
		rel := "demos/" + demo.TemplateFile
		if err := SaveCachedPage(outputDir, rel, html); err != nil {
			return written, fmt.Errorf("save %s: %w", rel, err)
		}
		written = append(written, rel)
	}

	if assets == nil {
		return written, nil
	}

	names, err := fs.Glob(assets.fsys, "*")
	if err != nil {
		return written, err
	}
	for _, name := range names {
		content, _, err := assets.Load(name)
		if err != nil {
			return written, err
		}
		rel := "static/" + name
		if err := SaveCachedPage(outputDir, rel, content); err != nil {
			return written, fmt.Errorf("save %s: %w", rel, err)
		}
		written = append(written, rel)
	}

	return written, nil
}
