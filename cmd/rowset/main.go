package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/internal/resultset"
	"github.com/tobsdb/rowset/pkg"
)

func main() {
	db_path := flag.String("db", "", "path to a sqlite database file")
	sql_query := flag.String("sql", "", "query to run")
	descriptor := flag.String("assoc", "", "fold rows with an associative descriptor, e.g. \"active,#,id\"")
	pairs := flag.Bool("pairs", false, "fold rows into key/value pairs")
	key_col := flag.String("key", "", "pairs key column")
	value_col := flag.String("value", "", "pairs value column")
	with_tables := flag.Bool("t", false, "use table-qualified column names")

	flag.Parse()

	if *db_path == "" || *sql_query == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := driver.OpenSqlite(*db_path)
	if err != nil {
		pkg.FatalLog(err)
	}
	defer db.Close()

	res, err := db.Query(*sql_query)
	if err != nil {
		pkg.FatalLog(err)
	}
	rs := resultset.New(res)
	defer rs.Free()
	rs.WithTables(*with_tables)

	var data any
	switch {
	case *descriptor != "":
		data, err = rs.FetchAssoc(*descriptor)
	case *pairs:
		data, err = rs.FetchPairs(*key_col, *value_col)
	default:
		data, err = rs.FetchAll()
	}
	if err != nil {
		pkg.FatalLog(err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		pkg.FatalLog(err)
	}
	os.Stdout.Write(append(out, '\n'))
}
