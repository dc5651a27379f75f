package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/currentprice/pkg/types"
)

// ReadKLinesFromCSVWithDecoder reads all the .csv files in a given directory or a single file
// into a slice of KLines, using the reader the maker builds for each file.
// The klines are returned in start time order.
func ReadKLinesFromCSVWithDecoder(path string, interval time.Duration, maker MakeCSVKLineReader) ([]types.KLine, error) {
	var klines []types.KLine

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		newKlines, err := reader.ReadAll(interval)
		if err != nil {
			return errors.Wrapf(err, "unable to read klines from %s", path)
		}
		klines = append(klines, newKlines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(klines, func(i, j int) bool {
		return klines[i].StartTime.Before(klines[j].StartTime)
	})

	return klines, nil
}
