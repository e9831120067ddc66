package spa

import (
	"fmt"
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

// DiagnosticStrategy always applies. It reports a missing build so a
// developer can see what the server is looking at.
type DiagnosticStrategy struct {
	Fs        afero.Fs
	DistLabel string
	Getwd     func() (string, error)
}

func (DiagnosticStrategy) Name() string { return "diagnostic" }

func (s DiagnosticStrategy) Resolve(rel string) (Result, bool, error) {
	cwd := "unknown"
	if s.Getwd != nil {
		if wd, err := s.Getwd(); err == nil {
			cwd = wd
		}
	}

	listing := s.DistLabel + " directory not found"
	if entries, err := afero.ReadDir(s.Fs, "."); err == nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		listing = "[" + strings.Join(names, ", ") + "]"
	}

	body := fmt.Sprintf(
		"<html><body><h1>Error</h1><p>Cannot find %s for route: /%s</p><p>Current directory: %s</p><p>Files in %s: %s</p></body></html>",
		IndexFile,
		html.EscapeString(rel),
		html.EscapeString(cwd),
		html.EscapeString(s.DistLabel),
		html.EscapeString(listing),
	)

	return Result{
		Status:      fiber.StatusInternalServerError,
		ContentType: fiber.MIMETextHTMLCharsetUTF8,
		Body:        []byte(body),
	}, true, nil
}
