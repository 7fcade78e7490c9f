//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"taste-heaven/internal/catalog"
)

// Writes the house menu as a gzipped JSON-lines seed file:
//
//	go run scripts/generate_sample_catalog.go
//	CATALOG_SEED_PATH=data/catalog/menu.jsonl.gz go run ./cmd/api
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	// Seed lines carry no ids; stores assign their own.
	menu := catalog.HouseMenu()

	filePath := filepath.Join(dataDir, "menu.jsonl.gz")
	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	if err := catalog.Encode(file, menu); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(menu))
}
