package iodataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

func readSQLite(ctx context.Context, src Source) (*frame, error) {
	// sql.Open would create a missing file
	if _, err := os.Stat(src.Path); err != nil {
		return nil, OpenError(src.Path, err)
	}

	db, err := sql.Open("sqlite", src.Path)
	if err != nil {
		return nil, OpenError(src.Path, err)
	}
	defer db.Close()

	q := "SELECT * FROM " + quoteIdent(src.Table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, ReadError(src.String(), err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, ReadError(src.String(), err)
	}

	res := frame{header: header}
	vals := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	var n int
	for rows.Next() {
		n++
		if err = rows.Scan(ptrs...); err != nil {
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

func quoteIdent(s string) string {
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(s, `"`, `""`))
}
