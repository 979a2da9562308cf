//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed index.html
var indexHTML []byte

// Options configure the page server.
type Options struct {
	// StaticDir holds the compiled script and any other page files.
	StaticDir string
	// AssetsDir is served under /assets/ (sounds live in assets/sounds).
	AssetsDir string
	// Quiet disables the request logger.
	Quiet bool
}

// Track is one entry of /api/tracks.
type Track struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var audioExt = map[string]bool{
	".mp3":  true,
	".ogg":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
}

// NewRouter builds the HTTP handler for the page.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	if !opts.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/", serveIndex)
	r.Get("/index.html", serveIndex)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})
	r.Get("/api/tracks", func(w http.ResponseWriter, r *http.Request) {
		tracks, err := listTracks(opts.AssetsDir)
		if err != nil {
			log.Printf("list tracks: %v", err)
			http.Error(w, "cannot list tracks", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracks)
	})

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir))))
	r.NotFound(http.FileServer(http.Dir(opts.StaticDir)).ServeHTTP)
	return r
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// listTracks returns the audio files under dir/sounds, sorted by name. A
// missing directory yields an empty list.
func listTracks(dir string) ([]Track, error) {
	tracks := []Track{}
	root := filepath.Join(dir, "sounds")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !audioExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		tracks = append(tracks, Track{
			Name: d.Name(),
			URL:  "/assets/" + filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].URL < tracks[j].URL })
	return tracks, nil
}
