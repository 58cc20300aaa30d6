package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "txt"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	case ".txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", filepath.Ext(path))
	}
}

// Write renders one format to w.
func Write(w io.Writer, f Format, h model.Height, panels model.Panels) error {
	switch f {
	case FormatSVG:
		return WriteSVG(w, h, panels)
	case FormatPNG:
		return WritePNG(w, h, panels)
	case FormatText:
		return WriteText(w, h, panels)
	default:
		return fmt.Errorf("unsupported export format: %s", f)
	}
}

// WriteFile renders to path, choosing the format from its extension.
func WriteFile(path string, h model.Height, panels model.Panels) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(file)
	if err := Write(bw, f, h, panels); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// WriteFiles renders several paths concurrently and returns the first error.
func WriteFiles(ctx context.Context, paths []string, h model.Height, panels model.Panels) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return WriteFile(p, h, panels)
		})
	}
	return g.Wait()
}

// OpenInBrowser opens a file or URL with the platform's default handler.
func OpenInBrowser(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
