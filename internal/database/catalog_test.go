package database

import (
	"testing"

	"danawa-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioCatalog_ListAllMatchesUnfiltered(t *testing.T) {
	catalog := NewPortfolioCatalog(seedPortfolio())

	all := catalog.List(models.CategoryAll)
	unfiltered := catalog.List("")

	assert.Equal(t, seedPortfolio(), all)
	assert.Equal(t, all, unfiltered)
}

func TestPortfolioCatalog_ListByCategory(t *testing.T) {
	items := []models.PortfolioItem{
		{ID: 1, Category: "하드웨어 수리"},
		{ID: 2, Category: "기업 서비스"},
		{ID: 3, Category: "하드웨어 수리"},
		{ID: 4, Category: "하드웨어"},
	}
	catalog := NewPortfolioCatalog(items)

	got := catalog.List("하드웨어 수리")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Empty(t, catalog.List("ALL"))
	assert.NotNil(t, catalog.List("없는 카테고리"))
}

func TestPortfolioCatalog_GetByID(t *testing.T) {
	catalog := NewPortfolioCatalog(seedPortfolio())

	item, err := catalog.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "랜섬웨어 제거 및 데이터 복구", item.Title)

	_, err = catalog.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCatalog_FeaturesKeepOrder(t *testing.T) {
	catalog, err := NewServiceCatalog(seedServices())
	require.NoError(t, err)

	svc, err := catalog.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"윈도우 설치", "드라이버 업데이트", "최적화", "백업 및 복구"}, svc.Features)
	assert.Equal(t, "40,000원~", svc.Price)

	svc.Features[0] = "changed"
	again, err := catalog.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "윈도우 설치", again.Features[0])

	_, err = catalog.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCatalog_List(t *testing.T) {
	catalog, err := NewServiceCatalog(seedServices())
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 3)
	for i, svc := range list {
		assert.Equal(t, i+1, svc.ID)
	}
	assert.Equal(t, "70,000원~", list[2].Price)
}

func TestServiceCatalog_RejectsNegativePrice(t *testing.T) {
	_, err := NewServiceCatalog([]ServiceEntry{{ID: 7, BasePrice: decimal.NewFromInt(-1)}})
	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	cases := map[string]string{
		"0":          "0원~",
		"999":        "999원~",
		"1000":       "1,000원~",
		"50000":      "50,000원~",
		"1234567":    "1,234,567원~",
		"49999.6":    "50,000원~",
		"1000000000": "1,000,000,000원~",
	}
	for in, want := range cases {
		got, err := FormatPrice(decimal.RequireFromString(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
