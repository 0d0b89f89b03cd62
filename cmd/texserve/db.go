package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func (app *app) initDB(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS
			previews
		(
			file TEXT NOT NULL,
			mip INTEGER NOT NULL,
			renderedAt TEXT,
			content BLOB,

			CONSTRAINT file_mip UNIQUE (file, mip)
		)
	`)
	if err != nil {
		db.Close()
		return err
	}

	app.db = db
	return nil
}

func (app *app) getPreviewFromCache(file string, mip uint32) ([]byte, error) {
	row := app.db.QueryRow(`
	SELECT
		content
	FROM
		previews
	WHERE
		file = ? AND mip = ?`, file, mip)

	var content []byte
	err := row.Scan(&content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return content, nil
}

func (app *app) savePreviewToCache(file string, mip uint32, content []byte) error {
	log.Printf("[savePreviewToCache] %v mip %v (%d bytes)", file, mip, len(content))

	_, err := app.db.Exec(`
		INSERT OR REPLACE INTO
			previews
				(
					file, mip, renderedAt, content
				)
		VALUES
				(?, ?, ?, ?)
	`, file, mip, time.Now().Format(time.RFC1123Z), content)

	return err
}

func (app *app) closeDB() {
	app.db.Close()
}
