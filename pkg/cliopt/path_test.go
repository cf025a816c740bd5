package cliopt_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ordutils/pkg/cliopt"
	"github.com/dmitrymomot/ordutils/pkg/pathprobe"
	"github.com/dmitrymomot/ordutils/pkg/validator"
)

func ptr(s string) *string { return &s }

func tempFile(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "opt-*")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func missingPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing")
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	t.Run("passes for existing file if file should exist", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateFile(ptr(tempFile(t)), "dummy"))
	})

	t.Run("passes for missing file if file should not exist", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateFile(ptr(missingPath(t)), "dummy", cliopt.MustNotExist()))
	})

	t.Run("fails for missing file if file should exist", func(t *testing.T) {
		err := cliopt.ValidateFile(ptr(missingPath(t)), "dummy")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrPathNotFound)
	})

	t.Run("fails for existing file if file should not exist", func(t *testing.T) {
		err := cliopt.ValidateFile(ptr(tempFile(t)), "dummy", cliopt.ShouldExist(false))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrPathExists)
	})

	t.Run("fails for directory if file should exist", func(t *testing.T) {
		err := cliopt.ValidateFile(ptr(t.TempDir()), "dummy")
		assert.ErrorIs(t, err, validator.ErrIsDirectory)
	})

	t.Run("fails for nil if nullable not specified", func(t *testing.T) {
		err := cliopt.ValidateFile(nil, "dummy")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrFieldRequired)
	})

	t.Run("passes for nil if nullable specified", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateFile(nil, "dummy", cliopt.AllowAbsent()))
		assert.NoError(t, cliopt.ValidateFile(nil, "dummy", cliopt.AllowAbsent(), cliopt.MustNotExist()))
	})

	t.Run("error message contains description and path", func(t *testing.T) {
		path := missingPath(t)
		err := cliopt.ValidateFile(ptr(path), "Input file does not exist")
		require.Error(t, err)
		assert.Equal(t, "Input file does not exist: '"+path+"'.", err.Error())
	})
}

func TestValidateDir(t *testing.T) {
	t.Parallel()

	t.Run("passes for existing dir if dir should exist", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateDir(ptr(t.TempDir()), "dummy"))
	})

	t.Run("passes for missing dir if dir should not exist", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateDir(ptr(missingPath(t)), "dummy", cliopt.MustNotExist()))
	})

	t.Run("fails for missing dir if dir should exist", func(t *testing.T) {
		err := cliopt.ValidateDir(ptr(missingPath(t)), "dummy")
		assert.ErrorIs(t, err, validator.ErrPathNotFound)
	})

	t.Run("fails for existing dir if dir should not exist", func(t *testing.T) {
		err := cliopt.ValidateDir(ptr(t.TempDir()), "dummy", cliopt.MustNotExist())
		assert.ErrorIs(t, err, validator.ErrPathExists)
	})

	t.Run("fails for regular file if dir should exist", func(t *testing.T) {
		err := cliopt.ValidateDir(ptr(tempFile(t)), "dummy")
		assert.ErrorIs(t, err, validator.ErrNotDirectory)
	})

	t.Run("fails for existing file if dir should not exist", func(t *testing.T) {
		err := cliopt.ValidateDir(ptr(tempFile(t)), "dummy", cliopt.MustNotExist())
		assert.ErrorIs(t, err, validator.ErrPathExists)
	})

	t.Run("fails for nil if nullable not specified", func(t *testing.T) {
		assert.Error(t, cliopt.ValidateDir(nil, "dummy"))
	})

	t.Run("passes for nil if nullable specified", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateDir(nil, "dummy", cliopt.AllowAbsent()))
	})

	t.Run("error message contains description and path", func(t *testing.T) {
		path := missingPath(t)
		err := cliopt.ValidateDir(ptr(path), "dummy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dummy")
		assert.Contains(t, err.Error(), path)
	})
}

func TestPathOptions(t *testing.T) {
	t.Parallel()

	t.Run("uses custom prober", func(t *testing.T) {
		var probed string
		p := pathprobe.ProberFunc(func(_ context.Context, path string) (pathprobe.Kind, error) {
			probed = path
			return pathprobe.KindDir, nil
		})
		require.NoError(t, cliopt.ValidateDir(ptr("s3://bucket/prefix/"), "dummy", cliopt.WithProber(p)))
		assert.Equal(t, "s3://bucket/prefix/", probed)
	})

	t.Run("probe failure fails both polarities", func(t *testing.T) {
		p := pathprobe.ProberFunc(func(context.Context, string) (pathprobe.Kind, error) {
			return pathprobe.KindNone, pathprobe.ErrAccessDenied
		})
		err := cliopt.ValidateFile(ptr("s3://bucket/key"), "dummy", cliopt.WithProber(p))
		assert.ErrorIs(t, err, validator.ErrProbeFailed)
		assert.ErrorIs(t, err, pathprobe.ErrAccessDenied)

		err = cliopt.ValidateFile(ptr("s3://bucket/key"), "dummy", cliopt.WithProber(p), cliopt.MustNotExist())
		assert.ErrorIs(t, err, validator.ErrProbeFailed)
	})

	t.Run("passes context to prober", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := cliopt.ValidateFile(ptr(tempFile(t)), "dummy", cliopt.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("ignores nil prober", func(t *testing.T) {
		assert.NoError(t, cliopt.ValidateFile(ptr(tempFile(t)), "dummy", cliopt.WithProber(nil)))
	})
}
