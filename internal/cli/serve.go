package cli

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/texpack/texpack/pkg/manifest"
)

// serveCommand creates the serve command for previewing packed atlases.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [manifest.json]",
		Short: "Preview packed atlases over HTTP",
		Long: `Preview packed atlases over HTTP.

The serve command reads a manifest (produced by 'pack') and serves the
referenced atlas images plus the manifest itself on a local HTTP
server. The root page shows every atlas with its sprites outlined, so
placements can be checked in a browser.

Endpoints:
  GET /              HTML preview of all atlases
  GET /manifest      the manifest as JSON
  GET /atlases/{i}   the i-th atlas image`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Import(args[0])
			if err != nil {
				return err
			}
			dir := filepath.Dir(args[0])

			printInfo("Serving %d atlases from %s", len(m.Atlases), dir)
			printKeyValue("Address", "http://"+trimAddr(addr))
			printDetail("Press Ctrl+C to stop")

			srv := &http.Server{
				Addr:              addr,
				Handler:           newPreviewHandler(m, dir),
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				<-cmd.Context().Done()
				srv.Close()
			}()
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	return cmd
}

// newPreviewHandler builds the HTTP routes for the preview server.
func newPreviewHandler(m manifest.Manifest, dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		writePreviewHTML(w, m)
	})

	r.Get("/manifest", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := m.Write(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	r.Get("/atlases/{index}", func(w http.ResponseWriter, req *http.Request) {
		i, err := strconv.Atoi(chi.URLParam(req, "index"))
		if err != nil || i < 0 || i >= len(m.Atlases) {
			http.NotFound(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(dir, m.Atlases[i].File))
	})

	return r
}

// writePreviewHTML emits a minimal preview page with sprite outlines
// drawn as absolutely positioned boxes over each atlas image.
func writePreviewHTML(w http.ResponseWriter, m manifest.Manifest) {
	fmt.Fprint(w, `<!doctype html><html><head><title>texpack preview</title><style>
body { font-family: monospace; background: #222; color: #ddd; margin: 2em; }
.atlas { position: relative; display: inline-block; margin: 1em;
         background: repeating-conic-gradient(#333 0% 25%, #2a2a2a 0% 50%) 0 0/16px 16px; }
.atlas img { display: block; image-rendering: pixelated; }
.sprite { position: absolute; border: 1px solid rgba(64,200,255,.6); }
.sprite:hover { background: rgba(64,200,255,.25); }
h2 { color: #6cf; }
</style></head><body>`)

	for i, a := range m.Atlases {
		fmt.Fprintf(w, "<h2>%s (%dx%d, %d sprites, %.1f%% fill)</h2>\n",
			a.File, a.Width, a.Height, len(a.Sprites), a.FillRate()*100)
		fmt.Fprintf(w, `<div class="atlas"><img src="/atlases/%d" width="%d" height="%d">`, i, a.Width, a.Height)
		for _, s := range a.Sprites {
			fmt.Fprintf(w, `<div class="sprite" title=%q style="left:%dpx;top:%dpx;width:%dpx;height:%dpx"></div>`,
				s.Name, s.X, s.Y, s.W, s.H)
		}
		fmt.Fprint(w, "</div>\n")
	}
	fmt.Fprint(w, "</body></html>")
}

// trimAddr rewrites a bare ":port" listen address into a dialable one.
func trimAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
