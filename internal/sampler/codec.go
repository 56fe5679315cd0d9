package sampler

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/VoidMesh/density/internal/interp"
)

// ErrBadPayload is returned when a snapshot payload cannot be decoded.
var ErrBadPayload = errors.New("malformed snapshot payload")

var magic = [4]byte{'D', 'N', 'S', '1'}

type header struct {
	Magic     [4]byte
	ID        [16]byte
	TileX     int32
	TileZ     int32
	Mode      uint8
	Height    uint16
	CreatedAt int64
	Count     uint32
}

// Encode writes s as a gzip compressed little-endian payload.
func Encode(w io.Writer, s *Snapshot) error {
	if s == nil {
		return errors.New("snapshot cannot be nil")
	}
	if err := s.validate(); err != nil {
		return err
	}

	gz := gzip.NewWriter(w)
	h := header{
		Magic:     magic,
		ID:        s.ID,
		TileX:     int32(s.TileX),
		TileZ:     int32(s.TileZ),
		Mode:      uint8(s.Mode),
		Height:    uint16(s.Height),
		CreatedAt: s.CreatedAt.UnixNano(),
		Count:     uint32(len(s.Values)),
	}
	if err := binary.Write(gz, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}

	buf := make([]byte, 8*len(s.Values))
	for i, v := range s.Values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	if _, err := gz.Write(buf); err != nil {
		return fmt.Errorf("failed to write snapshot values: %w", err)
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// Decode reads a payload produced by Encode.
func Decode(r io.Reader) (*Snapshot, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	defer gz.Close()

	var h header
	if err := binary.Read(gz, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadPayload, err)
	}
	if h.Magic != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadPayload, h.Magic[:])
	}
	// reject the header before sizing the value buffer from it
	if mode := interp.Mode(h.Mode); int(h.Height) != HeightFor(mode) {
		return nil, fmt.Errorf("%w: height %d does not match %s", ErrBadPayload, h.Height, mode)
	}

	s := &Snapshot{
		ID:        uuid.UUID(h.ID),
		TileX:     int(h.TileX),
		TileZ:     int(h.TileZ),
		Mode:      interp.Mode(h.Mode),
		Height:    int(h.Height),
		CreatedAt: time.Unix(0, h.CreatedAt).UTC(),
	}
	if want := interp.TileSize * interp.TileSize * s.Height; int(h.Count) != want {
		return nil, fmt.Errorf("%w: %d values, want %d", ErrBadPayload, h.Count, want)
	}

	buf := make([]byte, 8*int(h.Count))
	if _, err := io.ReadFull(gz, buf); err != nil {
		return nil, fmt.Errorf("%w: values: %v", ErrBadPayload, err)
	}
	s.Values = make([]float64, h.Count)
	for i := range s.Values {
		s.Values[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return s, nil
}

// Marshal encodes s into a byte slice.
func Marshal(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a byte slice produced by Marshal.
func Unmarshal(data []byte) (*Snapshot, error) {
	return Decode(bytes.NewReader(data))
}

// WriteFile encodes s to path, replacing any existing file.
func WriteFile(path string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes the snapshot stored at path.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
