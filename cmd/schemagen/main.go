package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/schema"
)

func main() {
	var (
		outputDir = flag.String("output", "api", "Output directory for generated schemas")
		idBase    = flag.String("id-base", schema.DefaultIDBase, "Base URL of the schema $id")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	generator := schema.NewGenerator(schema.WithIDBase(*idBase))

	schemaJSON, err := generator.GenerateJSONSchema(spec.EvalSpec{})
	if err != nil {
		log.Fatalf("Failed to generate schema for EvalSpec: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "evalspec-v1.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON), 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}
	fmt.Printf("Generated JSON schema: %s\n", jsonFile)

	if _, err := spec.Parse([]byte(yamlExample)); err != nil {
		log.Fatalf("YAML example does not validate: %v", err)
	}
	yamlFile := filepath.Join(*outputDir, "evalspec-example.yaml")
	if err := os.WriteFile(yamlFile, []byte(yamlExample), 0644); err != nil {
		log.Fatalf("Failed to write YAML example: %v", err)
	}
	fmt.Printf("Generated YAML example: %s\n", yamlFile)
}

const yamlExample = `# Evaluation spec example
# Every model names a prediction column of the dataset CSV.

name: campaign-q3
dataset:
  file: data/val.csv
  train: data/train.csv
  target: conversion
  treatment: treated
models:
  - name: solo
    column: uplift_solo
  - name: two_model
    column: uplift_two_model
metrics:
  k: 0.3              # integer = count, decimal = fraction
  strategy: overall   # overall | by_group
  bins: 10
  negative_effect: true
  balance_window: 100
storage:
  type: json          # in_mem | json | pg | es
  path: reports
`
