package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     nama_produk      TEXT NOT NULL,
//     brand            TEXT NOT NULL,
//     harga            NUMERIC,
//     deskripsi_produk TEXT,
//     rating_bintang   NUMERIC,
//     bahan_utama      TEXT,
//     jenis_kulit      TEXT,
//     link_produk      TEXT,
//     marketplace      TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW(),
//     updated_at       TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:nama_produk;type:text" json:"nama_produk"`
	Brand       string    `gorm:"column:brand;type:text" json:"brand"`
	Price       int64     `gorm:"column:harga;type:numeric" json:"harga"`
	Description string    `gorm:"column:deskripsi_produk;type:text" json:"deskripsi_produk"`
	Rating      float64   `gorm:"column:rating_bintang;type:numeric" json:"rating_bintang"`
	Ingredients string    `gorm:"column:bahan_utama;type:text" json:"bahan_utama"`
	SkinType    string    `gorm:"column:jenis_kulit;type:text" json:"jenis_kulit"`
	ProductLink string    `gorm:"column:link_produk;type:text" json:"link_produk"`
	Marketplace string    `gorm:"column:marketplace;type:text" json:"marketplace"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductListOptions carries the filter and sort parameters for paginated listing.
// SortBy accepts name, price_low, price_high, rating; anything else falls back to name.
type ProductListOptions struct {
	Page     int
	PerPage  int
	Search   string
	Brand    string
	SortBy   string
	MinPrice int64
	MaxPrice int64
}

// ProductPage is the paginated listing returned by the catalog browse/admin screens.
type ProductPage struct {
	Products    []Product `json:"products"`
	Total       int64     `json:"total"`
	TotalBrands int64     `json:"total_brands"`
	Page        int       `json:"page"`
	PerPage     int       `json:"per_page"`
	Pages       int       `json:"pages"`
}
