// Package pathprobe reports whether a path names a file, a directory or
// nothing at all, without opening it.
//
// Option validators use a Prober to answer existence questions so the same
// rule works for local paths and for object-storage URIs:
//
//	mux := pathprobe.NewMux(pathprobe.NewLocalProber())
//	s3p, err := pathprobe.NewS3Prober(ctx, pathprobe.S3Config{Region: "eu-west-1"})
//	if err != nil {
//		// handle
//	}
//	mux.Handle("s3", s3p)
//
//	kind, err := mux.Probe(ctx, "s3://reports/2024/")
//	// kind == pathprobe.KindDir when any object lives under the prefix
//
// # Implementations
//
//   - LocalProber uses os.Stat. A missing path, or a path running through a
//     regular file, is KindNone with a nil error.
//   - S3Prober treats an object as KindFile and a non-empty key prefix as
//     KindDir. A bucket URI without a key is KindDir when the bucket exists.
//   - Mux dispatches on the URI scheme and falls back to another Prober for
//     plain paths.
//
// # Error Handling
//
// Probe failures that cannot be mapped to a Kind are returned wrapped with
// the sentinels from errors.go (ErrFailedToStatPath, ErrAccessDenied,
// ErrBucketNotFound, ...), so callers can use errors.Is.
package pathprobe
