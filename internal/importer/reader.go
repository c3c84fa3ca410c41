package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported source encodings
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLS
var ErrUnsupportedFormat = errors.New("unsupported timetable format")

// ErrEmptyFile is returned when a source has no header row
var ErrEmptyFile = errors.New("timetable is empty")

func decoder(enc string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "utf8":
		return unicode.UTF8, nil
	case EncodingWindows1251, "cp1251":
		return charmap.Windows1251, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", enc)
}

// ReadCSV parses a CSV timetable with a header row.
// A UTF-8 or UTF-16 byte order mark overrides enc. The delimiter is ',' or ';', whichever the header uses.
func ReadCSV(r io.Reader, enc string) ([]Row, error) {
	e, err := decoder(enc)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(e.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to decode csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []record
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, cells: cells})
	}
	return parseRecords(records)
}

// record is a line of cells with its 1-based position in the source
type record struct {
	line  int
	cells []string
}

func sniffDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}) {
		return ';'
	}
	return ','
}

// ReadXLS parses the first sheet of an XLS workbook. Its first non-empty row is the header.
func ReadXLS(r io.ReadSeeker, enc string) ([]Row, error) {
	if _, err := decoder(enc); err != nil {
		return nil, err
	}
	if enc == "" {
		enc = EncodingUTF8
	}

	wb, err := xls.OpenReader(r, enc)
	if err != nil {
		return nil, fmt.Errorf("xls open error: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrEmptyFile
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptyFile
	}

	records := make([]record, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		records = append(records, record{line: i + 1, cells: cells})
	}
	return parseRecords(records)
}

// parseRecords treats the first non-blank record as the header
func parseRecords(records []record) ([]Row, error) {
	headerAt := -1
	for i, rec := range records {
		if strings.TrimSpace(strings.Join(rec.cells, "")) != "" {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrEmptyFile
	}

	header, err := ParseHeader(records[headerAt].cells)
	if err != nil {
		return nil, &RowError{Line: records[headerAt].line, Err: err}
	}

	rows := make([]Row, 0, len(records)-headerAt-1)
	for i := headerAt + 1; i < len(records); i++ {
		row, ok, err := header.ParseRow(records[i].line, records[i].cells)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ReadFile picks the reader by file extension
func ReadFile(path, enc string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(f, enc)
	case ".xls":
		return ReadXLS(f, enc)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}
