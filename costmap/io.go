package costmap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names the on-disk compression of a map file.
type Codec int

const (
	// CodecNone is plain text.
	CodecNone Codec = iota
	// CodecGzip is gzip (".gz").
	CodecGzip
	// CodecZstd is zstandard (".zst").
	CodecZstd
	// CodecLZ4 is an lz4 frame (".lz4").
	CodecLZ4
)

// CodecFor picks the codec from the file extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

// headerFormat is the first line written by WriteTo.
const headerFormat = "# costmap %dx%d origin %d,%d resolution %g"

// header is a parsed headerFormat line.
type header struct {
	width, height    int
	originX, originY int
	resolution       float64
}

// parseHeader reports whether text is a headerFormat line.
func parseHeader(text string) (header, bool) {
	var h header
	if !strings.HasPrefix(text, "# costmap ") {
		return h, false
	}
	n, err := fmt.Sscanf(text, headerFormat, &h.width, &h.height, &h.originX, &h.originY, &h.resolution)

	return h, err == nil && n == 5
}

// Load parses a plain-text map. Each non-empty line is one row of
// whitespace-separated integer costs; '#' starts a comment that runs to the
// end of the line. Row i holds cells with y = originY + i.
//
// A header line as written by WriteTo, placed before the first row, supplies
// the origin and resolution; opts override it. Its size must match the rows.
//
// Errors: ErrParse (bad token or header), ErrCostRange, ErrEmptyGrid, ErrNonRectangular.
func Load(r io.Reader, opts ...Option) (*Grid, error) {
	var (
		rows [][]uint8
		hdr  header
		has  bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(rows) == 0 && !has {
			if hdr, has = parseHeader(text); has {
				if !(hdr.resolution > 0) || math.IsInf(hdr.resolution, 0) {
					return nil, fmt.Errorf("%w: line %d: header resolution %g", ErrParse, line, hdr.resolution)
				}
				continue
			}
		}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		row := make([]uint8, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, line, f)
			}
			if v < 0 || v > int(MaxCost) {
				return nil, fmt.Errorf("%w: line %d: %d", ErrCostRange, line, v)
			}
			row[i] = uint8(v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if has {
		if len(rows) > 0 && (len(rows) != hdr.height || len(rows[0]) != hdr.width) {
			return nil, fmt.Errorf("%w: header says %dx%d, rows are %dx%d",
				ErrParse, hdr.width, hdr.height, len(rows[0]), len(rows))
		}
		opts = append([]Option{WithOrigin(hdr.originX, hdr.originY), WithResolution(hdr.resolution)}, opts...)
	}

	return NewGrid(rows, opts...)
}

// LoadFile opens path, decompresses it according to CodecFor and calls Load.
func LoadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch CodecFor(path) {
	case CodecGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("costmap: open gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case CodecZstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("costmap: open zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case CodecLZ4:
		r = lz4.NewReader(f)
	}

	g, err := Load(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteTo writes g in the text format understood by Load.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	g.mu.RLock()
	hdr := fmt.Sprintf(headerFormat+"\n", g.width, g.height, g.originX, g.originY, g.resolution)
	m, err := bw.WriteString(hdr)
	n += int64(m)
	buf := make([]byte, 0, g.width*4)
	for y := 0; y < g.height && err == nil; y++ {
		buf = buf[:0]
		for x, c := range g.cells[y*g.width : (y+1)*g.width] {
			if x > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(c), 10)
		}
		buf = append(buf, '\n')
		m, err = bw.Write(buf)
		n += int64(m)
	}
	g.mu.RUnlock()

	if err != nil {
		return n, err
	}

	return n, bw.Flush()
}

// SaveFile writes g to path, compressing according to CodecFor.
func (g *Grid) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var wc io.WriteCloser
	switch CodecFor(path) {
	case CodecGzip:
		wc = gzip.NewWriter(f)
	case CodecZstd:
		enc, zerr := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zerr != nil {
			return fmt.Errorf("costmap: create zstd %s: %w", path, zerr)
		}
		wc = enc
	case CodecLZ4:
		wc = lz4.NewWriter(f)
	default:
		_, err = g.WriteTo(f)
		return err
	}

	if _, err = g.WriteTo(wc); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}
