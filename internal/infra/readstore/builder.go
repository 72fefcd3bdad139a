package readstore

import (
	"context"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func countRows(ctx context.Context, db sqlc.DBTX, builder sq.SelectBuilder, op string) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(op+": build count query", err)
	}
	var count int64
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr(op+": count rows", err)
	}
	return count, nil
}
