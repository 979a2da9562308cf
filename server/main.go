//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	assetsDir := flag.String("assets", "assets", "Directory served under /assets/")
	quiet := flag.Bool("quiet", false, "Disable request logging")
	flag.Parse()

	handler := NewRouter(Options{
		StaticDir: *staticDir,
		AssetsDir: *assetsDir,
		Quiet:     *quiet,
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Sonic backdrop server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Serving assets from: %s", *assetsDir)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
