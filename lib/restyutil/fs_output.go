package restyutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Output receives one formatted http exchange at a time.
type Output interface {
	Write(contents string) error
}

// FilesystemOutput writes every exchange to its own numbered file in a directory.
type FilesystemOutput struct {
	directory string
	counter   *uint64
}

func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return FilesystemOutput{}, err
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return FilesystemOutput{}, err
	}
	var counter uint64
	return FilesystemOutput{directory: dir, counter: &counter}, nil
}

func (o FilesystemOutput) Directory() string {
	return o.directory
}

func (o FilesystemOutput) Write(contents string) error {
	id := atomic.AddUint64(o.counter, 1)
	name := filepath.Join(o.directory, fmt.Sprintf("%04d.http", id))
	return os.WriteFile(name, []byte(contents), 0600)
}
