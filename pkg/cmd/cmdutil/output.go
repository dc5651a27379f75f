package cmdutil

import (
	"io"
	"os"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
)

// WriteFileLocked writes a file while holding the file lock <filename>.lock,
// so concurrent renders into the same output do not interleave.
func WriteFileLocked(filename string, write func(w io.Writer) error) error {
	fileLock := flock.New(filename + ".lock")

	if err := fileLock.Lock(); err != nil {
		log.WithError(err).Errorf("output file lock error while writing %s", filename)
		return err
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			log.WithError(err).Errorf("output file unlock error while writing %s", filename)
		}
	}()

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
