// Package storage persists the in-memory catalog as a gzipped JSON
// stream so a restarted instance can serve before the broker catches
// it up.
package storage

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path"

	"github.com/grooveshop/storefront/pkg/types"
)

const snapshotFile = "products.jz"

type SnapshotStorage struct {
	Dir string
}

func NewSnapshotStorage(dir string) *SnapshotStorage {
	return &SnapshotStorage{Dir: dir}
}

func (s *SnapshotStorage) file() string {
	return path.Join(s.Dir, snapshotFile)
}

// Save writes all products as one gzipped JSON stream, going through a
// temp file so a crash mid-write never clobbers the last good snapshot.
func (s *SnapshotStorage) Save(products []types.Product) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	tmpName := s.file() + ".tmp"
	file, err := os.Create(tmpName)
	if err != nil {
		return err
	}

	zipWriter := gzip.NewWriter(file)
	enc := json.NewEncoder(zipWriter)
	for i := range products {
		if err := enc.Encode(&products[i]); err != nil {
			file.Close()
			return err
		}
	}
	if err := zipWriter.Close(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.file())
}

// Load streams the snapshot into the callback, one product at a time.
// A missing snapshot is not an error; the catalog just starts empty.
func (s *SnapshotStorage) Load(handle func(product *types.Product)) error {
	file, err := os.Open(s.file())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zipReader.Close()

	dec := json.NewDecoder(zipReader)
	for {
		var product types.Product
		if err := dec.Decode(&product); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		handle(&product)
	}
}
