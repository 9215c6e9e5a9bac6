package main

import (
	"flag"

	"github.com/tobsdb/rowset/internal/conn"
	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/pkg"
)

func main() {
	db_path := flag.String("db", "", "path to a sqlite database file")
	port := flag.Int("port", 7411, "listening port")
	debug := flag.Bool("debug", false, "enable debug logging")

	flag.Parse()

	if *debug {
		pkg.SetLogLevel(pkg.LogLevelDebug)
	}

	if *db_path == "" {
		pkg.FatalLog("-db is required")
	}

	db, err := driver.OpenSqlite(*db_path)
	if err != nil {
		pkg.FatalLog(err)
	}
	defer db.Close()

	srv := conn.NewServer(db)
	pkg.FatalLog(srv.Listen(*port))
}
