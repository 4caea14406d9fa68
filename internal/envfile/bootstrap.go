// Package envfile bootstraps the project's local environment file from the
// committed example, and reads KEY=VALUE env files.
//
// The bootstrap is the only idempotence guard in the customizer: once
// .env.local exists it is never overwritten, no matter how many times the
// setup runs.
package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shinji-kodama/nextjs-cursor-setup/internal/model"
)

// Bootstrap copies examplePath to localPath when the example exists and the
// local file does not.
//
// Outcomes:
//   - example missing: EnvNoExample, nil error
//   - local already present: EnvSkipped, nil error, local file untouched
//   - otherwise: EnvCreated after a verbatim byte copy
//
// The local file is opened with O_EXCL, so a file that appears between the
// existence check and the copy is still never clobbered.
func Bootstrap(examplePath, localPath string) (model.EnvStatus, error) {
	src, err := os.Open(examplePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.EnvNoExample, nil
		}
		return "", fmt.Errorf("failed to open %s: %w", examplePath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", examplePath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", examplePath)
	}

	// Cheap check first so the common "already bootstrapped" case does not
	// depend on O_EXCL error reporting.
	if _, statErr := os.Lstat(localPath); statErr == nil {
		return model.EnvSkipped, nil
	}

	dst, err := os.OpenFile(localPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return model.EnvSkipped, nil
		}
		return "", fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to copy %s to %s: %w", examplePath, localPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", localPath, err)
	}

	return model.EnvCreated, nil
}
