package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/goopsie/bcpix/pkg/texture"
)

func (app *app) initHTTP() {
	app.httpRouter = httprouter.New()
	app.httpRouter.GET("/v1/texture/:file", app.serveInfo)
	app.httpRouter.GET("/v1/texture/:file/preview", app.servePreview)
	app.httpRouter.GET("/v1/texture/:file/pixel", app.servePixel)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}

func (app *app) serveInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("file")

	s, err := app.loadSampler(name)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("error during lookup of %v: %v", name, err))
		return
	}

	w.Header().Set("content-type", "application/json")
	json.NewEncoder(w).Encode(struct {
		File   string `json:"file"`
		Format string `json:"format"`
		Width  uint32 `json:"width"`
		Height uint32 `json:"height"`
		Mips   uint32 `json:"mips"`
	}{
		File:   name,
		Format: texture.FormatName(s.Format()),
		Width:  s.Width(),
		Height: s.Height(),
		Mips:   s.MipLevels(),
	})
}

func (app *app) servePreview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("file")
	noCache := len(r.URL.Query()["noCache"]) != 0

	mip := uint32(0)
	if v := r.URL.Query().Get("mip"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid mip %q", v))
			return
		}
		mip = uint32(parsed)
	}

	if !noCache {
		content, err := app.getPreviewFromCache(name, mip)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("cache lookup: %v", err))
			return
		}
		if content != nil {
			w.Header().Set("content-type", "image/png")
			w.Write(content)
			return
		}
	}

	s, err := app.loadSampler(name)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("error during lookup of %v: %v", name, err))
		return
	}

	var img image.Image
	switch s.Format() {
	case texture.DXGI_FORMAT_BC6H_UF16, texture.DXGI_FORMAT_BC6H_SF16:
		img, err = s.DecodeImage64(mip)
	default:
		img, err = s.DecodeImage(mip)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("encode png: %v", err))
		return
	}

	if err := app.savePreviewToCache(name, mip, buf.Bytes()); err != nil {
		log.Printf("[servePreview] cache save failed for %v: %v", name, err)
	}

	w.Header().Set("content-type", "image/png")
	w.Write(buf.Bytes())
}

func (app *app) servePixel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("file")
	q := r.URL.Query()

	x, errX := strconv.ParseUint(q.Get("x"), 10, 32)
	y, errY := strconv.ParseUint(q.Get("y"), 10, 32)
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "x and y query parameters are required")
		return
	}

	mip := uint64(0)
	if v := q.Get("mip"); v != "" {
		var err error
		mip, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid mip %q", v))
			return
		}
	}

	s, err := app.loadSampler(name)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("error during lookup of %v: %v", name, err))
		return
	}

	c, err := s.PixelAt(uint32(x), uint32(y), uint32(mip))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("content-type", "application/json")
	json.NewEncoder(w).Encode(struct {
		X   uint32  `json:"x"`
		Y   uint32  `json:"y"`
		Mip uint32  `json:"mip"`
		R   float32 `json:"r"`
		G   float32 `json:"g"`
		B   float32 `json:"b"`
		A   float32 `json:"a"`
		Hex string  `json:"hex"`
	}{
		X: uint32(x), Y: uint32(y), Mip: uint32(mip),
		R: c.R, G: c.G, B: c.B, A: c.A,
		Hex: c.Hex(),
	})
}
