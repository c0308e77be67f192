package processor

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/identidata/dniscan/constants"
)

type FileResult struct {
	Path           string
	JobID          uuid.UUID
	DocumentNumber string
	Err            string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// ProcessDirectory walks root, filters by the accepted scan extensions, skips
// hidden entries, and runs the full pipeline for each file. One bad scan
// never stops the batch; per-file results plus aggregate stats come back.
func (p *Processor) ProcessDirectory(ctx context.Context, root string) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.IsImageExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		jobID, rec, err := p.ProcessScan(ctx, path)
		res := FileResult{Path: path, JobID: jobID}
		if err != nil {
			res.Err = err.Error()
			stats.Failed++
		} else {
			res.DocumentNumber = rec.DocumentNumber
			stats.Succeeded++
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return results, stats, err
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
