// Package catalog seeds an empty product store from gzipped JSON-lines files.
//
// Each non-blank line of a seed file is one product:
//
//	{"name":"Paneer Tikka","price":180,"category":"Starters","img":"Paneertikka.jpg"}
//
// Products are inserted in file order, which is the order the menu lists them.
package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"taste-heaven/internal/model"
)

// Loader reads a seed file into products.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// ErrInvalidProduct is returned for a seed line with no name or a negative price.
var ErrInvalidProduct = errors.New("invalid product")

// seedLine is the on-disk shape of one product.
type seedLine struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Img         string  `json:"img"`
	Description string  `json:"description,omitempty"`
}

// decode reads gzipped JSON lines from r.
func decode(ctx context.Context, r io.Reader) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var sl seedLine
		if err := json.Unmarshal([]byte(line), &sl); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		sl.Name = strings.TrimSpace(sl.Name)
		if sl.Name == "" || sl.Price < 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidProduct)
		}

		products = append(products, model.Product{
			Name:        sl.Name,
			Price:       sl.Price,
			Category:    sl.Category,
			Img:         sl.Img,
			Description: sl.Description,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return products, nil
}

// Encode writes products as gzipped JSON lines. It is the inverse of a Loader.
func Encode(w io.Writer, products []model.Product) error {
	gzipWriter := gzip.NewWriter(w)
	enc := json.NewEncoder(gzipWriter)

	for _, p := range products {
		if err := enc.Encode(seedLine{Name: p.Name, Price: p.Price, Category: p.Category, Img: p.Img, Description: p.Description}); err != nil {
			_ = gzipWriter.Close()
			return fmt.Errorf("failed to encode %q: %w", p.Name, err)
		}
	}

	return gzipWriter.Close()
}
