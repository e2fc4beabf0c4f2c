package diag

import (
	"encoding/binary"
	"io"
	"os"

	"golang.org/x/term"
)

// HandleInfo describes an open output file handle.
type HandleInfo struct {
	Name       string `json:"name" yaml:"name"`
	Descriptor int    `json:"descriptor" yaml:"descriptor"`
	ByteOrder  string `json:"byte_order" yaml:"byte_order"`
	IsTTY      bool   `json:"is_tty" yaml:"is_tty"`
	Seekable   bool   `json:"seekable" yaml:"seekable"`
	Writable   bool   `json:"writable" yaml:"writable"`
}

// Describe inspects f without reading from or writing to it.
// writable is taken from the flags the file was opened with.
func Describe(f *os.File, writable bool) HandleInfo {
	fd := f.Fd()
	_, seekErr := f.Seek(0, io.SeekCurrent)
	return HandleInfo{
		Name:       f.Name(),
		Descriptor: int(fd),
		ByteOrder:  ByteOrder(),
		IsTTY:      term.IsTerminal(int(fd)),
		Seekable:   seekErr == nil,
		Writable:   writable,
	}
}

// ByteOrder returns "little" or "big" for the host.
func ByteOrder() string {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	if buf[0] == 1 {
		return "little"
	}
	return "big"
}
