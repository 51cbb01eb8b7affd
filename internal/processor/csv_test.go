package processor

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

func writeCSV(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestCSVPipelineRun(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "input.csv", [][]string{
		{"title", "price", "description"},
		{"USB Cable", "9.99", "Made in China, ships from Shenzhen."},
		{"Olive Wood Board", "34.50", "Handcrafted in Portugal."},
	})
	output := filepath.Join(dir, "output.csv")

	pipeline := NewCSVPipeline(newTestBatchProcessor(t, 0.9, 2), logger.NewNop())
	if err := pipeline.Run(context.Background(), input, output); err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows := readCSV(t, output)
	if len(rows) != 3 {
		t.Fatalf("got %d output rows, want 3 (header + 2 products)", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(outputHeader, ",") {
		t.Errorf("header = %v, want %v", rows[0], outputHeader)
	}
	if rows[1][0] != "USB Cable" || rows[1][3] != domain.OriginYes {
		t.Errorf("rows[1] = %v, want USB Cable classified Yes", rows[1])
	}
	if rows[2][0] != "Olive Wood Board" {
		t.Errorf("rows[2] = %v, want Olive Wood Board", rows[2])
	}
}

func TestCSVPipelineChunking(t *testing.T) {
	dir := t.TempDir()

	rows := [][]string{{"title", "description"}}
	for i := 0; i < csvChunkSize*2+3; i++ {
		rows = append(rows, []string{"Widget", "Plain widget."})
	}
	input := writeCSV(t, dir, "input.csv", rows)
	output := filepath.Join(dir, "output.csv")

	pipeline := NewCSVPipeline(newTestBatchProcessor(t, 0.2, 4), logger.NewNop())
	if err := pipeline.Run(context.Background(), input, output); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := readCSV(t, output)
	if len(got) != len(rows) {
		t.Errorf("got %d output rows, want %d", len(got), len(rows))
	}
}

func TestCSVPipelineMissingColumns(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir, "input.csv", [][]string{
		{"title", "price"},
		{"Widget", "9.99"},
	})

	pipeline := NewCSVPipeline(newTestBatchProcessor(t, 0.5, 2), logger.NewNop())
	err := pipeline.Run(context.Background(), input, filepath.Join(dir, "output.csv"))
	if err == nil || !strings.Contains(err.Error(), "description") {
		t.Errorf("Run error = %v, want missing description column error", err)
	}
}

func TestCSVPipelineMissingInput(t *testing.T) {
	dir := t.TempDir()

	pipeline := NewCSVPipeline(newTestBatchProcessor(t, 0.5, 2), logger.NewNop())
	err := pipeline.Run(context.Background(), filepath.Join(dir, "absent.csv"), filepath.Join(dir, "out.csv"))
	if err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestProductFromRecord(t *testing.T) {
	columns := map[string]int{"id": 0, "title": 1, "description": 2, "price": 3, "best_seller_rank": 4}

	product := productFromRecord([]string{"P1", "Widget", "Desc", "12.50", "450"}, columns, 1)
	if product.ID != "P1" || product.Price != 12.50 || product.BestSellerRank != 450 {
		t.Errorf("product = %+v, want parsed id, price, rank", product)
	}

	// Missing id falls back to the row number.
	product = productFromRecord([]string{"", "Widget", "Desc", "", ""}, columns, 7)
	if product.ID != "row-7" {
		t.Errorf("ID = %q, want row-7", product.ID)
	}
	if product.Price != 0 || product.BestSellerRank != 0 {
		t.Errorf("product = %+v, want zero price and rank", product)
	}
}
