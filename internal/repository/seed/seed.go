// Package seed loads the demonstration dataset every store starts from.
//
// The dataset is embedded in the binary. A path override replaces it with an
// operator-supplied YAML file of the same shape. Every accessor returns fresh
// slices so stores never share backing arrays.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/backoffice/internal/domain/category"
	"github.com/kailas-cloud/backoffice/internal/domain/product"
	"github.com/kailas-cloud/backoffice/internal/domain/promotion"
	"github.com/kailas-cloud/backoffice/internal/domain/sale"
	"github.com/kailas-cloud/backoffice/internal/domain/transaction"
)

//go:embed seed.yaml
var builtin []byte

type file struct {
	Categories   []categoryRecord    `yaml:"categories"`
	Products     []productRecord     `yaml:"products"`
	Sales        []saleRecord        `yaml:"sales"`
	Transactions []transactionRecord `yaml:"transactions"`
	Promotions   []promotionRecord   `yaml:"promotions"`
}

// Dataset is a parsed seed file.
type Dataset struct {
	f file
}

// Load reads the dataset at path, or the built-in dataset when path is empty.
func Load(path string) (*Dataset, error) {
	data := builtin
	if path != "" {
		var err error
		data, err = os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &Dataset{f: f}, nil
}

// Categories returns the seed categories.
func (d *Dataset) Categories() []category.Category {
	return convert[categoryRecord, category.Category](d.f.Categories)
}

// Products returns the seed products.
func (d *Dataset) Products() []product.Product {
	return convert[productRecord, product.Product](d.f.Products)
}

// Sales returns the seed orders.
func (d *Dataset) Sales() []sale.Sale { return convert[saleRecord, sale.Sale](d.f.Sales) }

// Transactions returns the seed ledger entries.
func (d *Dataset) Transactions() []transaction.Transaction {
	return convert[transactionRecord, transaction.Transaction](d.f.Transactions)
}

// Promotions returns the seed coupons.
func (d *Dataset) Promotions() []promotion.Promotion {
	return convert[promotionRecord, promotion.Promotion](d.f.Promotions)
}
