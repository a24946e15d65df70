package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// updateExpr accumulates SET clauses for a partial UpdateItem.
type updateExpr struct {
	expr  string
	vals  map[string]types.AttributeValue
	names map[string]string
}

func newUpdateExpr() *updateExpr {
	return &updateExpr{
		vals:  map[string]types.AttributeValue{},
		names: map[string]string{},
	}
}

func (b *updateExpr) set(attr string, v types.AttributeValue) {
	if b.expr == "" {
		b.expr = "SET "
	} else {
		b.expr += ", "
	}
	b.expr += "#" + attr + " = :" + attr
	b.names["#"+attr] = attr
	b.vals[":"+attr] = v
}

func (b *updateExpr) empty() bool {
	return b.expr == ""
}

// scanAll drains a paginated Scan, following LastEvaluatedKey until the table
// (or the filtered subset) is exhausted.
func scanAll(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// pageWindow maps a 1-based page and size onto slice bounds over n items.
// Pages past the end come back as an empty window, not an error.
func pageWindow(n, page, size int) (int, int) {
	lo := (page - 1) * size
	if lo >= n {
		return 0, 0
	}
	hi := lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}
