package api

import (
	"net/http"
	"strconv"

	"github.com/hocs-app/hocs/internal/programs"
)

func registerUtilityRoutes(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("/api/utilities/lookup", instrument("/api/utilities/lookup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, "/api/utilities/lookup", "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		lat, err := strconv.ParseFloat(q.Get("lat"), 64)
		if err != nil {
			writeError(w, "/api/utilities/lookup", "lat is required", http.StatusBadRequest)
			return
		}
		lon, err := strconv.ParseFloat(q.Get("lon"), 64)
		if err != nil {
			writeError(w, "/api/utilities/lookup", "lon is required", http.StatusBadRequest)
			return
		}

		res := deps.Resolver.Resolve(lat, lon, q.Get("city"), q.Get("county"), q.Get("state"))
		writeJSON(w, map[string]interface{}{
			"reason":    res.Reason,
			"utilities": res.Flatten(),
		})
	}))

	mux.HandleFunc("/api/utilities/programs", instrument("/api/utilities/programs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, "/api/utilities/programs", "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		provider := q.Get("provider")
		if provider == "" {
			writeError(w, "/api/utilities/programs", "provider is required", http.StatusBadRequest)
			return
		}

		var list []programs.Program
		if cat := q.Get("category"); cat != "" {
			list = deps.Catalog.ProgramsByCategory(provider, programs.Category(cat))
		} else {
			list = deps.Catalog.ProgramsFor(provider)
		}

		writeJSON(w, map[string]interface{}{
			"provider": provider,
			"programs": programs.Flatten(list),
		})
	}))
}
