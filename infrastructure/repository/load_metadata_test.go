package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func TestLoadMetadataRepository_Save(t *testing.T) {
	conn, mock := newMockConnection(t)
	loadedAt := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)

	metadata := domain.LoadMetadata{
		TableName:     "public-orders",
		FileName:      "olist_orders_dataset.csv",
		FileHash:      "9e107d9d372bb6826bd81d3542a419d6",
		SourceURI:     "gs://olist-raw-data/olist_orders_dataset.csv",
		LoadTimestamp: loadedAt,
		LoadStatus:    "success",
		RowCount:      99441,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO _load_metadata (table_name,file_name,file_hash,source_uri,load_timestamp,load_status,row_count,bad_records,error_message) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs("public-orders", "olist_orders_dataset.csv", metadata.FileHash, metadata.SourceURI, loadedAt, "success", int64(99441), 0, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, NewLoadMetadataRepository(conn).Save(context.Background(), metadata))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadMetadataRepository_ListLatest(t *testing.T) {
	conn, mock := newMockConnection(t)
	loadedAt := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (table_name) table_name")).
		WillReturnRows(sqlmock.NewRows([]string{
			"table_name", "file_name", "file_hash", "source_uri", "load_timestamp", "load_status", "row_count", "bad_records", "error_message",
		}).
			AddRow("public-orders", "olist_orders_dataset.csv", "abc", "gs://b/olist_orders_dataset.csv", loadedAt, "success", 99441, 0, "").
			AddRow("public-reviews", "olist_order_reviews_dataset.csv", "def", "gs://b/olist_order_reviews_dataset.csv", loadedAt, "failed", 0, 1001, "limite excedido"))

	result, err := NewLoadMetadataRepository(conn).ListLatest(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(99441), result[0].RowCount)
	assert.Equal(t, "failed", result[1].LoadStatus)
	assert.Equal(t, 1001, result[1].BadRecords)
	assert.Equal(t, "limite excedido", result[1].ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
