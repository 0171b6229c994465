package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/sticky/config"
)

// Regenerates the schema embedded by the schema package. Run from the
// repository root.
func main() {
	outputPath := flag.String("o", filepath.Join("schema", "sticky.embedded.schema.json"), "output file")
	flag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}
	if err := os.WriteFile(*outputPath, append(schemaBytes, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", *outputPath)
}
