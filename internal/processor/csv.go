package processor

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tariffhunter/origin-classifier/internal/domain"
	"github.com/tariffhunter/origin-classifier/internal/logger"
)

// csvChunkSize is how many rows are read before a batch is dispatched to
// the worker pool.
const csvChunkSize = 10

// outputHeader is the column layout of the classified CSV.
var outputHeader = []string{
	"title", "price", "description",
	"made_in_china", "confidence", "tariff_vulnerability",
	"category", "alt_sourcing",
}

// CSVPipeline streams a products CSV through the batch processor and writes
// a classified CSV.
type CSVPipeline struct {
	batch *BatchProcessor
	log   logger.Logger
}

// NewCSVPipeline creates a CSV pipeline over the given batch processor.
func NewCSVPipeline(batch *BatchProcessor, log logger.Logger) *CSVPipeline {
	return &CSVPipeline{batch: batch, log: log}
}

// Run reads inputPath, classifies every row, and writes outputPath.
// Input columns are resolved by header name; title and description are
// required, price, url, id, and best_seller_rank are optional.
func (p *CSVPipeline) Run(ctx context.Context, inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input csv: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	writer := csv.NewWriter(out)
	defer writer.Flush()

	columns, err := readHeader(reader)
	if err != nil {
		return err
	}
	if err := writer.Write(outputHeader); err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	total := 0
	row := 0
	chunk := make([]*domain.Product, 0, csvChunkSize)

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read input csv row %d: %w", row+2, readErr)
		}
		row++

		chunk = append(chunk, productFromRecord(record, columns, row))
		if len(chunk) < csvChunkSize {
			continue
		}
		if err := p.flushChunk(ctx, writer, chunk); err != nil {
			return err
		}
		total += len(chunk)
		chunk = chunk[:0]
	}

	if len(chunk) > 0 {
		if err := p.flushChunk(ctx, writer, chunk); err != nil {
			return err
		}
		total += len(chunk)
	}

	p.log.Info("csv classification complete",
		logger.String("input", inputPath),
		logger.String("output", outputPath),
		logger.Int("products", total),
	)
	return nil
}

func (p *CSVPipeline) flushChunk(ctx context.Context, writer *csv.Writer, chunk []*domain.Product) error {
	results, err := p.batch.Process(ctx, chunk)
	if err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write(outputRecord(result)); err != nil {
			return fmt.Errorf("write output csv: %w", err)
		}
	}
	return nil
}

func readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read input csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"title", "description"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("input csv missing required column %q", required)
		}
	}
	return columns, nil
}

func productFromRecord(record []string, columns map[string]int, row int) *domain.Product {
	field := func(name string) string {
		if i, ok := columns[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	product := &domain.Product{
		ID:          field("id"),
		Title:       field("title"),
		Description: field("description"),
		URL:         field("url"),
	}
	if product.ID == "" {
		product.ID = fmt.Sprintf("row-%d", row)
	}
	if price, err := strconv.ParseFloat(field("price"), 64); err == nil {
		product.Price = price
	}
	if rank, err := strconv.Atoi(field("best_seller_rank")); err == nil {
		product.BestSellerRank = rank
	}
	return product
}

func outputRecord(result *ProcessResult) []string {
	origin := result.Result.Origin

	alternatives := ""
	if result.Result.Sourcing != nil {
		alternatives = strings.Join(result.Result.Sourcing.Alternatives, ", ")
	}

	return []string{
		result.Product.Title,
		strconv.FormatFloat(result.Product.Price, 'f', 2, 64),
		result.Product.Description,
		origin.MadeInChina,
		strconv.FormatFloat(origin.Confidence, 'f', 4, 64),
		origin.TariffVulnerability,
		result.Result.Category,
		alternatives,
	}
}
