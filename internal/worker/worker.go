// Package worker implements the per-image processing a dispatcher job
// performs: decode, run the highlight-detection pipeline, write each
// surviving crop as a PNG, and record the outcome in the run report.
package worker

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/porkbrain/harriet-vision/internal/encoder"
	"github.com/porkbrain/harriet-vision/internal/hasher"
	"github.com/porkbrain/harriet-vision/internal/highlights"
	"github.com/porkbrain/harriet-vision/internal/report"
)

// Worker processes one source image end-to-end and records its outcome
// in the run report for its directory. A single Worker is reused across
// requests; each job's output directory and report are derived from its
// source path, so one worker pool and one report Manager serve every
// INPUT/<dir> → OUTPUT/<dir> request the HTTP layer accepts.
type Worker struct {
	inputBase  string
	outputBase string
	params     highlights.Params
	reports    *report.Manager
	log        zerolog.Logger
}

// New creates a Worker that mirrors paths under inputBase into
// outputBase and records results through reports.
func New(inputBase, outputBase string, params highlights.Params, reports *report.Manager, log zerolog.Logger) *Worker {
	return &Worker{
		inputBase:  inputBase,
		outputBase: outputBase,
		params:     params,
		reports:    reports,
		log:        log.With().Str("component", "worker").Logger(),
	}
}

// Process decodes srcPath, runs the detection pipeline, and writes every
// kept highlight as OUTPUT/<dir>/<stem>_<i>.png, in extraction order. It
// never returns an error to its caller: failures are logged and, once the
// source's directory name is resolved, recorded in the report, matching spec.md §5's "a panic inside a worker
// terminates that job only" isolation for ordinary errors too.
func (w *Worker) Process(srcPath string) {
	started := time.Now()
	entry := report.NewEntry(srcPath, started)

	dirName, err := w.dirNameFor(srcPath)
	if err != nil {
		w.log.Error().Err(err).Str("path", srcPath).Msg("resolve directory name failed")
		return
	}

	img, err := decode(srcPath)
	if err != nil {
		entry.Error = err.Error()
		entry.DurationMS = time.Since(started).Milliseconds()
		w.log.Error().Err(err).Str("path", srcPath).Msg("decode failed")
		w.record(dirName, entry)
		return
	}

	crops, err := highlights.Identify(img, w.params)
	if err != nil {
		entry.Error = err.Error()
		entry.DurationMS = time.Since(started).Milliseconds()
		w.log.Error().Err(err).Str("path", srcPath).Msg("identify failed")
		w.record(dirName, entry)
		return
	}

	outDir := filepath.Join(w.outputBase, dirName)
	stem := stemOf(srcPath)
	for i, crop := range crops {
		h, err := w.writeCrop(outDir, stem, i, crop)
		if err != nil {
			entry.Error = err.Error()
			entry.DurationMS = time.Since(started).Milliseconds()
			w.log.Error().Err(err).Str("path", srcPath).Int("index", i).Msg("write crop failed")
			w.record(dirName, entry)
			return
		}
		entry.Highlights = append(entry.Highlights, h)
	}
	entry.DurationMS = time.Since(started).Milliseconds()

	w.log.Info().Str("path", srcPath).Int("highlights", len(entry.Highlights)).Msg("processed")
	w.record(dirName, entry)
}

func (w *Worker) record(dirName string, entry report.Entry) {
	if err := w.reports.Record(dirName, entry); err != nil {
		w.log.Error().Err(err).Str("dir", dirName).Msg("write report failed")
	}
}

// dirNameFor returns the INPUT/<dir> component of srcPath: the handler
// that enqueued srcPath already created OUTPUT/<dir> (spec.md §6.2), so
// this names both the output subdirectory and the report to update.
func (w *Worker) dirNameFor(srcPath string) (string, error) {
	rel, err := filepath.Rel(w.inputBase, srcPath)
	if err != nil {
		return "", fmt.Errorf("resolve relative path: %w", err)
	}
	return filepath.Dir(rel), nil
}

func (w *Worker) writeCrop(outDir, stem string, index int, crop highlights.Highlight) (report.Highlight, error) {
	data, err := encoder.EncodePNG(crop.Image)
	if err != nil {
		return report.Highlight{}, fmt.Errorf("encode crop %d: %w", index, err)
	}

	fileName := fmt.Sprintf("%s_%d.png", stem, index)
	outPath := filepath.Join(outDir, fileName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return report.Highlight{}, fmt.Errorf("write crop %d: %w", index, err)
	}

	return report.Highlight{
		Path:   fileName,
		Width:  crop.Rect.Dx(),
		Height: crop.Rect.Dy(),
		Size:   int64(len(data)),
		Hash:   hasher.ContentHash(data, 16),
	}, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
