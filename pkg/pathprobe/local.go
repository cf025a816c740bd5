package pathprobe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// LocalProber probes the local filesystem. Symlinks are followed, so a
// dangling link reports KindNone.
type LocalProber struct{}

func NewLocalProber() *LocalProber {
	return &LocalProber{}
}

func (p *LocalProber) Probe(ctx context.Context, path string) (Kind, error) {
	select {
	case <-ctx.Done():
		return KindNone, ctx.Err()
	default:
	}

	if path == "" {
		return KindNone, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		// ENOTDIR: a parent component is a regular file, so nothing can exist below it
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return KindNone, nil
		}
		return KindNone, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	if info.IsDir() {
		return KindDir, nil
	}
	return KindFile, nil
}
