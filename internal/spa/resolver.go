// Package spa resolves non-API requests against a built single page
// application: assets first, then top-level files, then the index document
// so client-side routes work, and finally a diagnostic page when the build
// is missing.
package spa

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

const (
	AssetsPrefix = "assets/"
	IndexFile    = "index.html"
)

// Result is what a strategy decided to send.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
	// Source names the strategy that produced the result.
	Source string
}

// Strategy resolves a cleaned, slash-free relative path. ok is false when
// the strategy does not apply and the next one should run.
type Strategy interface {
	Name() string
	Resolve(rel string) (res Result, ok bool, err error)
}

// Resolver tries its strategies in order.
type Resolver struct {
	strategies []Strategy
}

func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Default returns the production order over fsys rooted at the build
// output directory. distLabel and cwd only feed the diagnostic page.
func Default(fsys afero.Fs, distLabel string, cwd func() (string, error)) *Resolver {
	return NewResolver(
		AssetStrategy{Fs: fsys},
		FileStrategy{Fs: fsys},
		IndexStrategy{Fs: fsys},
		DiagnosticStrategy{Fs: fsys, DistLabel: distLabel, Getwd: cwd},
	)
}

// Resolve maps a request path to a response. Paths are cleaned so they
// cannot leave the filesystem root.
func (r *Resolver) Resolve(requestPath string) (Result, error) {
	rel := Clean(requestPath)
	for _, s := range r.strategies {
		res, ok, err := s.Resolve(rel)
		if err != nil {
			return Result{}, err
		}
		if ok {
			res.Source = s.Name()
			return res, nil
		}
	}
	return Result{}, fiber.ErrNotFound
}

// Clean turns a URL path into a root-relative file path without "..".
func Clean(requestPath string) string {
	return strings.TrimPrefix(path.Clean("/"+requestPath), "/")
}

// AssetStrategy serves files under assets/ with the explicit MIME table.
type AssetStrategy struct {
	Fs afero.Fs
}

func (AssetStrategy) Name() string { return "asset" }

func (s AssetStrategy) Resolve(rel string) (Result, bool, error) {
	if !strings.HasPrefix(rel, AssetsPrefix) {
		return Result{}, false, nil
	}
	return readFile(s.Fs, rel)
}

// FileStrategy serves any regular file at the exact path, e.g. favicon.ico.
type FileStrategy struct {
	Fs afero.Fs
}

func (FileStrategy) Name() string { return "file" }

func (s FileStrategy) Resolve(rel string) (Result, bool, error) {
	if rel == "" {
		return Result{}, false, nil
	}
	return readFile(s.Fs, rel)
}

// IndexStrategy is the SPA fallback.
type IndexStrategy struct {
	Fs afero.Fs
}

func (IndexStrategy) Name() string { return "index" }

func (s IndexStrategy) Resolve(string) (Result, bool, error) {
	res, ok, err := readFile(s.Fs, IndexFile)
	if ok {
		res.ContentType = fiber.MIMETextHTMLCharsetUTF8
	}
	return res, ok, err
}

func readFile(fsys afero.Fs, rel string) (Result, bool, error) {
	info, err := fsys.Stat(rel)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, false, nil
		}
		return Result{}, false, err
	}
	if !info.Mode().IsRegular() {
		return Result{}, false, nil
	}

	body, err := afero.ReadFile(fsys, rel)
	if err != nil {
		return Result{}, false, err
	}
	return Result{
		Status:      fiber.StatusOK,
		ContentType: ContentType(rel),
		Body:        body,
	}, true, nil
}
