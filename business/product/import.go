package product

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
)

// importBatchSize keeps a single multi-row INSERT within postgres parameter limits.
const importBatchSize = 200

// ImportResult summarizes one dataset import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// csvColumns maps dataset headers to product fields. Headers are matched
// case-insensitively after trimming.
var csvColumns = map[string]string{
	"nama produk":      "nama_produk",
	"merk":             "brand",
	"bintang":          "rating_bintang",
	"marketplace":      "marketplace",
	"link":             "link_produk",
	"harga":            "harga",
	"deskripsi produk": "deskripsi_produk",
}

// ImportCSV reads the product dataset and inserts rows in batches. Rows
// missing a product name or brand are skipped, not fatal.
func (s *productService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return ImportResult{}, fmt.Errorf("context error: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		logger.Error("failed to read csv header", err)
		return ImportResult{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	fieldIndex := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := csvColumns[key]; ok {
			fieldIndex[field] = i
		}
	}

	if _, ok := fieldIndex["nama_produk"]; !ok {
		return ImportResult{}, errors.New("csv is missing the nama produk column")
	}

	var result ImportResult
	batch := make([]domain.Product, 0, importBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.productRepo.CreateBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to insert product batch: %w", err)
		}
		result.Imported += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping malformed csv row", err)
			result.Skipped++
			continue
		}

		field := func(name string) string {
			idx, ok := fieldIndex[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		name := field("nama_produk")
		brand := field("brand")
		if name == "" || brand == "" {
			result.Skipped++
			continue
		}

		batch = append(batch, domain.Product{
			ProductName: name,
			Brand:       brand,
			Price:       parsePrice(field("harga")),
			Description: field("deskripsi_produk"),
			Rating:      parseRating(field("rating_bintang")),
			ProductLink: field("link_produk"),
			Marketplace: field("marketplace"),
		})

		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				logger.Error("failed to flush import batch", err)
				return result, err
			}
		}
	}

	if err := flush(); err != nil {
		logger.Error("failed to flush final import batch", err)
		return result, err
	}

	logger.Info("product dataset imported", "imported", result.Imported, "skipped", result.Skipped)

	return result, nil
}

// parsePrice handles marketplace price strings like "Rp28.000" or "28,000+".
func parsePrice(raw string) int64 {
	cleaned := strings.NewReplacer("Rp", "", "rp", "", ".", "", ",", "", "+", "", " ", "").Replace(raw)

	digits := strings.Builder{}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			break
		}
		digits.WriteRune(r)
	}
	if digits.Len() == 0 {
		return 0
	}

	price, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return price
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0.0
	}
	if rating < 0 || rating > 5 {
		return 0.0
	}
	return rating
}
