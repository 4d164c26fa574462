package textmetrics

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// A Source is a named, readable word list.
type Source struct {
	Name string
	open func() (io.ReadCloser, error)
	enc  encoding.Encoding
}

// FileSource reads words from the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource reads words from r. The source can be read once.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// StringSource reads words from s.
func StringSource(name, s string) Source {
	return Source{
		Name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(s)), nil },
	}
}

// DirSources returns a FileSource for every file in dir with the given
// extension, ordered by file name. An empty ext matches every regular file.
func DirSources(dir, ext string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &SourceReadError{Source: dir, Err: err}
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	srcs := make([]Source, 0, len(names))
	for _, n := range names {
		srcs = append(srcs, FileSource(filepath.Join(dir, n)))
	}
	return srcs, nil
}

// WithEncoding returns a copy of s whose bytes are decoded from enc before
// parsing.
func (s Source) WithEncoding(enc encoding.Encoding) Source {
	s.enc = enc
	return s
}

// EncodingByName maps a configuration name to a text encoding. The empty
// string and "utf-8" mean no decoding.
func EncodingByName(name string) (encoding.Encoding, bool) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return nil, true
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, true
	case "windows-1252", "cp1252":
		return charmap.Windows1252, true
	}
	return nil, false
}

// lines reads every line of the source, decoding it first if an encoding was
// set. Invalid UTF-8 is replaced with U+FFFD.
func (s Source) lines() ([]string, error) {
	if s.open == nil {
		return nil, &SourceReadError{Source: s.Name, Err: os.ErrNotExist}
	}
	rc, err := s.open()
	if err != nil {
		return nil, &SourceReadError{Source: s.Name, Err: err}
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.enc != nil {
		r = transform.NewReader(rc, s.enc.NewDecoder())
	}

	var out []string
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scan.Scan() {
		line := bytes.ToValidUTF8(scan.Bytes(), []byte("�"))
		out = append(out, string(line))
	}
	if err := scan.Err(); err != nil {
		return nil, &SourceReadError{Source: s.Name, Err: err}
	}
	return out, nil
}

// readAll returns the full contents of the source.
func (s Source) readAll() ([]byte, error) {
	if s.open == nil {
		return nil, &SourceReadError{Source: s.Name, Err: os.ErrNotExist}
	}
	rc, err := s.open()
	if err != nil {
		return nil, &SourceReadError{Source: s.Name, Err: err}
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.enc != nil {
		r = transform.NewReader(rc, s.enc.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &SourceReadError{Source: s.Name, Err: err}
	}
	return data, nil
}
