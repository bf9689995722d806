package product

import (
	"context"
	"strings"
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	batches [][]domain.Product
	err     error
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error { return f.err }
func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []domain.Product) error {
	batch := make([]domain.Product, len(products))
	copy(batch, products)
	f.batches = append(f.batches, batch)
	return f.err
}
func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	return domain.Product{}, f.err
}
func (f *fakeProductRepo) FindPage(ctx context.Context, opts domain.ProductListOptions) (domain.ProductPage, error) {
	return domain.ProductPage{}, f.err
}
func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error { return f.err }
func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error         { return f.err }

func (f *fakeProductRepo) imported() []domain.Product {
	var all []domain.Product
	for _, b := range f.batches {
		all = append(all, b...)
	}
	return all
}

const sampleCSV = `no.,nama produk,merk,terjual,reviews,bintang,marketplace,link,harga,deskripsi produk
1,Acne Serum,Somethinc,1000,500,"4,8",Shopee,https://example.com/1,"Rp89.000",serum anti jerawat
2,Hydrating Gel,Wardah,2500,800,4.5,Tokopedia,https://example.com/2,"45,000+",pelembab hydrating
3,,NoName,1,1,3.0,Shopee,https://example.com/3,10000,baris tanpa nama
`

func TestImportCSV(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	products := repo.imported()
	require.Len(t, products, 2)

	assert.Equal(t, "Acne Serum", products[0].ProductName)
	assert.Equal(t, "Somethinc", products[0].Brand)
	assert.Equal(t, int64(89000), products[0].Price)
	assert.Equal(t, 4.8, products[0].Rating)
	assert.Equal(t, "Shopee", products[0].Marketplace)
	assert.Equal(t, "serum anti jerawat", products[0].Description)

	assert.Equal(t, int64(45000), products[1].Price)
	assert.Equal(t, 4.5, products[1].Rating)
}

func TestImportCSVMissingNameColumn(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("merk,harga\nWardah,10000\n"))
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, int64(28000), parsePrice("Rp28.000"))
	assert.Equal(t, int64(45000), parsePrice("45,000+"))
	assert.Equal(t, int64(10000), parsePrice("10000"))
	assert.Equal(t, int64(0), parsePrice(""))
	assert.Equal(t, int64(0), parsePrice("gratis"))
}

func TestParseRating(t *testing.T) {
	assert.Equal(t, 4.8, parseRating("4,8"))
	assert.Equal(t, 4.5, parseRating("4.5"))
	assert.Equal(t, 0.0, parseRating(""))
	assert.Equal(t, 0.0, parseRating("bagus"))
	assert.Equal(t, 0.0, parseRating("9.9"))
}
