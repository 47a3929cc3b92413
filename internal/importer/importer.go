// Package importer loads a caterer's menu from a CSV export into the catalog.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"catring/internal/domain"
)

type MenuWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads menu rows (name, description, price, category, image_url)
// and creates one catalog product per row, owned by the given caterer.
type CSVImporter struct {
	reader   *csv.Reader
	products MenuWriter
	caterer  string
}

func NewCSVImporter(r io.Reader, products MenuWriter, catererID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		products: products,
		caterer:  catererID,
	}
}

type csvRow struct {
	Name     string
	Desc     string
	Cents    int64
	Category string
	ImageURL string
}

// Run parses the CSV and creates a product per valid row. It returns the
// number of products created; a malformed row aborts the run.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		_, err = i.products.Create(ctx, domain.Product{
			Name:        row.Name,
			Description: row.Desc,
			PriceCents:  row.Cents,
			Category:    row.Category,
			ImageURL:    row.ImageURL,
			CreatedBy:   i.caterer,
		})
		if err != nil {
			return imported, fmt.Errorf("create product %q: %w", row.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}

	priceStr := pick(record, index, "price")
	cents, err := parsePriceCents(priceStr)
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", name, err)
	}

	return &csvRow{
		Name:     name,
		Desc:     pick(record, index, "description"),
		Cents:    cents,
		Category: pick(record, index, "category"),
		ImageURL: pick(record, index, "image_url"),
	}, nil
}

// parsePriceCents accepts a decimal price like "15.99" or "12" and returns
// the amount in cents.
func parsePriceCents(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("price required")
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	cents := units * 100
	if hasFrac {
		if len(frac) != 2 {
			return 0, fmt.Errorf("invalid price %q: expected two decimal places", s)
		}
		sub, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || sub < 0 {
			return 0, fmt.Errorf("invalid price %q", s)
		}
		cents += sub
	}
	if cents <= 0 {
		return 0, fmt.Errorf("invalid price %q: must be positive", s)
	}
	return cents, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
