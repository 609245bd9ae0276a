package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	logger "github.com/multiversx/mx-chain-logger-go"
	"google.golang.org/api/option"

	"github.com/mpetrache/psi-collector/common"
)

const tableRefSeparator = "."

var log = logger.GetOrCreate("storage")

// bigQueryInserter appends metric rows to one BigQuery table through the
// streaming insert API
type bigQueryInserter struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	tableRef string
}

// NewBigQueryInserter creates the warehouse client and binds the
// dataset-qualified table reference once, at construction
func NewBigQueryInserter(ctx context.Context, projectID string, table string, opts ...option.ClientOption) (*bigQueryInserter, error) {
	if len(projectID) == 0 {
		return nil, errEmptyProjectID
	}

	datasetID, tableID, err := splitTableRef(table)
	if err != nil {
		return nil, err
	}

	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create warehouse client: %w", err)
	}

	return &bigQueryInserter{
		client:   client,
		inserter: client.Dataset(datasetID).Table(tableID).Inserter(),
		tableRef: projectID + tableRefSeparator + table,
	}, nil
}

func splitTableRef(table string) (string, string, error) {
	parts := strings.Split(table, tableRefSeparator)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", errInvalidTableRef(table)
	}

	return parts[0], parts[1], nil
}

// InsertRow appends one metrics row to the bound table. The streaming API
// generates the insert ids, so repeated calls with the same row land as
// independent rows.
func (b *bigQueryInserter) InsertRow(ctx context.Context, row *common.MetricsRow) error {
	if row == nil {
		return errNilRow
	}

	err := b.inserter.Put(ctx, row)
	if err == nil {
		log.Debug("row inserted", "table", b.tableRef, "url", row.URL)
		return nil
	}

	var putErr bigquery.PutMultiError
	if errors.As(err, &putErr) {
		log.Error("warehouse rejected row", "table", b.tableRef, "details", rejectionDetails(putErr))
		return fmt.Errorf("%w by table '%s': %s", errRowRejected, b.tableRef, rejectionDetails(putErr))
	}

	return fmt.Errorf("failed to insert row into table '%s': %w", b.tableRef, err)
}

func rejectionDetails(putErr bigquery.PutMultiError) string {
	details := make([]string, 0, len(putErr))
	for _, rowErr := range putErr {
		for _, rowInsertionErr := range rowErr.Errors {
			details = append(details, rowInsertionErr.Error())
		}
	}

	return strings.Join(details, "; ")
}

// Close releases the underlying warehouse client
func (b *bigQueryInserter) Close() error {
	return b.client.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (b *bigQueryInserter) IsInterfaceNil() bool {
	return b == nil
}
