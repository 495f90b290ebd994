package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	pgzip "github.com/klauspost/pgzip"
	"go.uber.org/zap"
)

// row is a single CSV record with header-based field access.
type row struct {
	header map[string]int
	fields []string
}

// get returns the value of the named column, or "" when the column is
// absent from the file.
func (r row) get(key string) string {
	i, ok := r.header[key]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// getDefault returns the value of the named column, or def when the column
// is absent from the file. A present-but-empty value is returned as is.
func (r row) getDefault(key, def string) string {
	if _, ok := r.header[key]; !ok {
		return def
	}
	return r.get(key)
}

// open opens a data file for reading, transparently decompressing files
// with a .gz suffix.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := pgzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "gzip reader for %s", path)
	}
	return struct {
		io.Reader
		io.Closer
	}{gz, closeBoth{gz, f}}, nil
}

type closeBoth struct {
	first, second io.Closer
}

func (c closeBoth) Close() error {
	err := c.first.Close()
	if cerr := c.second.Close(); err == nil {
		err = cerr
	}
	return err
}

// forEachRow streams the CSV file at path and invokes fn per record.
// fn returning an error marks the row invalid: the row is skipped with a
// warning and loading continues. If every data row of a non-empty file is
// invalid, forEachRow fails.
func forEachRow(ctx context.Context, path string, fn func(r row) error) error {
	f, err := open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Wrapf(err, "read header of %s", path)
	}
	header := make(map[string]int, len(head))
	for i, name := range head {
		header[strings.TrimSpace(name)] = i
	}

	lg := zctx.From(ctx)
	line := 1
	valid, skipped := 0, 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			skipped++
			lg.Warn("Skipping malformed CSV record",
				zap.String("file", path), zap.Int("line", line), zap.Error(err))
			continue
		}
		if err := fn(row{header: header, fields: fields}); err != nil {
			skipped++
			lg.Warn("Skipping invalid row",
				zap.String("file", path), zap.Int("line", line), zap.Error(err))
			continue
		}
		valid++
	}

	if skipped > 0 && valid == 0 {
		return errors.Errorf("no valid rows in %s (%d skipped)", path, skipped)
	}
	return nil
}
