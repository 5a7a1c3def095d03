package iodataset

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

func readPostgres(ctx context.Context, src Source) (*frame, error) {
	conn, err := pgx.Connect(ctx, src.DSN)
	if err != nil {
		return nil, OpenError(src.String(), err)
	}
	defer conn.Close(ctx)

	ident := pgx.Identifier(strings.Split(src.Table, "."))
	rows, err := conn.Query(ctx, "SELECT * FROM "+ident.Sanitize())
	if err != nil {
		return nil, ReadError(src.String(), err)
	}
	defer rows.Close()

	var res frame
	for _, v := range rows.FieldDescriptions() {
		res.header = append(res.header, v.Name)
	}

	var n int
	for rows.Next() {
		n++
		vals, err := rows.Values()
		if err != nil {
			return nil, ReadError(src.String(), err)
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = toString(v)
		}
		res.add(n, cells)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadError(src.String(), err)
	}
	return &res, nil
}
