package database

import "database/sql"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// nullString scans a nullable text column into a plain string
type nullString struct{ dst *string }

func (n nullString) Scan(src interface{}) error {
	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	*n.dst = ns.String
	return nil
}

// nullFloat scans a nullable numeric column into a *float64
type nullFloat struct{ dst **float64 }

func (n nullFloat) Scan(src interface{}) error {
	var nf sql.NullFloat64
	if err := nf.Scan(src); err != nil {
		return err
	}
	if !nf.Valid {
		*n.dst = nil
		return nil
	}
	v := nf.Float64
	*n.dst = &v
	return nil
}
