// texserve - HTTP preview server for BC textures
//
// Serves PNG previews and per-pixel lookups for a directory of DDS files
// and raw BC payloads. Decoded previews are cached in a local sqlite
// database so repeat requests skip the block decode entirely.
//
// Usage:
//
//	texserve -root ./textures -addr :8080 -cache ./cache.db
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
)

func main() {
	root := flag.String("root", ".", "directory of texture files to serve")
	addr := flag.String("addr", ":8080", "listen address")
	cache := flag.String("cache", "./cache.db", "path to the preview cache database")
	flag.Parse()

	app, err := newApp(*root, *cache)
	if err != nil {
		log.Fatalf("Error starting texserve: %v", err)
	}
	defer app.close()

	server := &http.Server{Addr: *addr, Handler: app}

	go func() {
		log.Printf("Serving textures from %s on %s", *root, *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stopChannel := make(chan os.Signal, 1)
	signal.Notify(stopChannel, os.Interrupt)
	<-stopChannel

	log.Print("Shutting down")
	server.Close()
}
