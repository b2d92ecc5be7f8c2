package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/carrierlock/pkg/errors"
)

// Save writes data to path, creating parent directories. An existing file
// is only replaced with force.
func Save(fsys FS, path string, data []byte, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, "%s already exists", path).
			WithDetail("path", path)
	}

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir).
			WithDetail("path", path)
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}
