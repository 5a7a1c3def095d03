package iodataset

import (
	"errors"
	"net/url"
	"strings"
)

// Kind of a data source.
type Kind int

const (
	CSV Kind = iota
	SQLite
	Postgres
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case CSV:
		return "csv"
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// Source is a parsed location of a dataset.
type Source struct {
	Kind Kind
	// Path is a CSV or SQLite file.
	Path string
	// DSN is a PostgreSQL connection string without the table parameter.
	DSN string
	// Table is the database table to read.
	Table string
	// URI is the original location, used in messages.
	URI string
}

// ParseSource recognizes a CSV path, a sqlite:// URI or a postgres:// URI.
// Database URIs may set the table with a `table` query parameter,
// otherwise defaultTable is used.
func ParseSource(uri, defaultTable string) (Source, error) {
	res := Source{URI: uri, Table: defaultTable}
	if strings.TrimSpace(uri) == "" {
		return res, SourceError(uri, errors.New("empty location"))
	}

	scheme, _, found := strings.Cut(uri, "://")
	if !found {
		res.Kind = CSV
		res.Path = uri
		return res, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return res, SourceError(uri, err)
	}
	q := u.Query()
	if t := q.Get("table"); t != "" {
		res.Table = t
	}
	q.Del("table")
	u.RawQuery = q.Encode()

	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3":
		res.Kind = SQLite
		res.Path = u.Path
		if u.Host != "" {
			// sqlite://relative/file.db
			res.Path = u.Host + u.Path
		}
		if res.Path == "" {
			return res, SourceError(uri, errors.New("no database file"))
		}
	case "postgres", "postgresql":
		res.Kind = Postgres
		res.DSN = u.String()
	case "file":
		res.Kind = CSV
		res.Path = u.Path
	default:
		return res, SourceError(uri, errors.New("unsupported scheme "+scheme))
	}
	return res, nil
}

// String returns a location without credentials.
func (s Source) String() string {
	switch s.Kind {
	case CSV:
		return s.Path
	case SQLite:
		return s.Path + ":" + s.Table
	default:
		u, err := url.Parse(s.DSN)
		if err != nil {
			return "postgres:" + s.Table
		}
		u.User = nil
		u.RawQuery = ""
		return u.String() + ":" + s.Table
	}
}
