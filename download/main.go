package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// Downloads every playthrough uploaded by the game into per-user folders,
// named by upload moment and version so they can be replayed with the right
// executable.
func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}

	for i := range dbRows {
		dir := dbRows[i].user
		_ = os.Mkdir(dir, os.ModeDir)
		m := dbRows[i].startMoment
		filename := fmt.Sprintf(
			"%s/%d%02d%02d-%02d%02d%02d.pillars-%d-%d", dir, m.Year(),
			m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
			dbRows[i].simulationVersion, dbRows[i].inputVersion)
		WriteFile(filename, dbRows[i].data)
	}
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("PILLARS_DBUSER"),
		Passwd:               os.Getenv("PILLARS_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("PILLARS_DBADDR"),
		DBName:               os.Getenv("PILLARS_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
