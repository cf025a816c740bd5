package validator

import (
	"context"

	"github.com/dmitrymomot/ordutils/pkg/pathprobe"
)

// FileExists accepts a path naming an existing entry that is not a directory.
// The entry is only probed, never opened.
func FileExists(ctx context.Context, p pathprobe.Prober) Rule[string, string] {
	return func(path string) (string, error) {
		kind, err := p.Probe(ctx, path)
		if err != nil {
			return "", probeViolation(err)
		}
		switch kind {
		case pathprobe.KindFile:
			return path, nil
		case pathprobe.KindDir:
			return "", violation(ErrIsDirectory, "validation.file_exists", nil)
		default:
			return "", violation(ErrPathNotFound, "validation.file_exists", nil)
		}
	}
}

// DirExists accepts a path naming an existing directory.
func DirExists(ctx context.Context, p pathprobe.Prober) Rule[string, string] {
	return func(path string) (string, error) {
		kind, err := p.Probe(ctx, path)
		if err != nil {
			return "", probeViolation(err)
		}
		switch kind {
		case pathprobe.KindDir:
			return path, nil
		case pathprobe.KindFile:
			return "", violation(ErrNotDirectory, "validation.dir_exists", nil)
		default:
			return "", violation(ErrPathNotFound, "validation.dir_exists", nil)
		}
	}
}

// NotExists accepts a path at which nothing exists, file or directory.
func NotExists(ctx context.Context, p pathprobe.Prober) Rule[string, string] {
	return func(path string) (string, error) {
		kind, err := p.Probe(ctx, path)
		if err != nil {
			return "", probeViolation(err)
		}
		if kind != pathprobe.KindNone {
			return "", violation(ErrPathExists, "validation.path_absent", map[string]any{
				"kind": kind.String(),
			})
		}
		return path, nil
	}
}

// A failed probe cannot confirm either polarity, so it fails both.
func probeViolation(err error) *Violation {
	v := violation(ErrProbeFailed, "validation.path_probe", nil)
	v.Cause = err
	return v
}
