package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/goopsie/bcpix/pkg/archive"
	"github.com/goopsie/bcpix/pkg/texture"
)

type app struct {
	root       string
	db         *sql.DB
	httpRouter *httprouter.Router
}

func newApp(root, cachePath string) (*app, error) {
	app := &app{root: root}

	if err := app.initDB(cachePath); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

func (app *app) close() {
	app.closeDB()
}

func (app *app) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	app.httpRouter.ServeHTTP(w, req)
}

// loadSampler resolves a request name against the texture root and opens
// it. Names must stay inside the root; traversal attempts are rejected.
func (app *app) loadSampler(name string) (*texture.Sampler, error) {
	clean := filepath.Clean(name)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid texture name: %s", name)
	}

	return readTexture(filepath.Join(app.root, clean))
}

func readTexture(path string) (*texture.Sampler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data, err = archive.MaybeDecompress(data)
	if err != nil {
		return nil, err
	}

	if len(data) >= 4 && string(data[0:4]) == "DDS " {
		return texture.LoadDDS(data)
	}

	metaData, err := os.ReadFile(path + ".meta")
	if err != nil {
		return nil, fmt.Errorf("not a DDS file and no metadata sidecar: %w", err)
	}

	meta, err := texture.ParseMetadata(bytes.NewReader(metaData))
	if err != nil {
		return nil, err
	}

	return texture.NewSampler(data, meta.Width, meta.Height, meta.MipLevels, meta.DXGIFormat)
}
