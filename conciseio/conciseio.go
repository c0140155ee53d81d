// Package conciseio persists a concise.ConciseSet to a flat binary format:
// a small fixed header (magic, version, the three cached scalars) followed
// by the raw []uint32 word array, optionally gzip-wrapped.
package conciseio

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/conciseset/concise"
)

const (
	magic             uint32 = 0x434e4331 // "CNC1"
	formatV1          byte   = 1
	headerScalarCount        = 3
)

// Dump writes s to w in conciseio's binary format.
func Dump(w io.Writer, s *concise.ConciseSet) error {
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, s); err != nil {
		return err
	}
	words := s.Words()
	if err := binary.Write(bw, binary.BigEndian, uint32(len(words))); err != nil {
		return errors.Wrap(err, "conciseio: write word count")
	}
	if err := binary.Write(bw, binary.BigEndian, words); err != nil {
		return errors.Wrap(err, "conciseio: write words")
	}
	return errors.Wrap(bw.Flush(), "conciseio: flush")
}

func writeHeader(w io.Writer, s *concise.ConciseSet) error {
	if err := binary.Write(w, binary.BigEndian, magic); err != nil {
		return errors.Wrap(err, "conciseio: write magic")
	}
	if _, err := w.Write([]byte{formatV1}); err != nil {
		return errors.Wrap(err, "conciseio: write version")
	}
	scalars := [headerScalarCount]int64{
		int64(s.Len()), int64(s.MaxSetBit()), int64(s.LastSetBitOfLastWord()),
	}
	return errors.Wrap(binary.Write(w, binary.BigEndian, scalars), "conciseio: write scalars")
}

// Load reads a ConciseSet previously written by Dump.
func Load(r io.Reader) (*concise.ConciseSet, error) {
	br := bufio.NewReader(r)
	var gotMagic uint32
	if err := binary.Read(br, binary.BigEndian, &gotMagic); err != nil {
		return nil, errors.Wrap(err, "conciseio: read magic")
	}
	if gotMagic != magic {
		return nil, errors.Errorf("conciseio: bad magic %#x", gotMagic)
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "conciseio: read version")
	}
	if version != formatV1 {
		return nil, errors.Errorf("conciseio: unsupported format version %d", version)
	}
	var scalars [headerScalarCount]int64
	if err := binary.Read(br, binary.BigEndian, &scalars); err != nil {
		return nil, errors.Wrap(err, "conciseio: read scalars")
	}
	var wordCount uint32
	if err := binary.Read(br, binary.BigEndian, &wordCount); err != nil {
		return nil, errors.Wrap(err, "conciseio: read word count")
	}
	words := make([]uint32, wordCount)
	if err := binary.Read(br, binary.BigEndian, words); err != nil {
		return nil, errors.Wrap(err, "conciseio: read words")
	}
	return concise.FromRawParts(words, int(scalars[0]), int(scalars[1]), int(scalars[2])), nil
}

// DumpGzip writes s to w gzip-compressed.
func DumpGzip(w io.Writer, s *concise.ConciseSet) error {
	gw := gzip.NewWriter(w)
	if err := Dump(gw, s); err != nil {
		gw.Close()
		return err
	}
	return errors.Wrap(gw.Close(), "conciseio: close gzip writer")
}

// LoadGzip reads a ConciseSet previously written by DumpGzip.
func LoadGzip(r io.Reader) (*concise.ConciseSet, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "conciseio: open gzip reader")
	}
	defer gr.Close()
	return Load(gr)
}
