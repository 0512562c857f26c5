package api

import (
	"net/http"

	"github.com/hocs-app/hocs/internal/api/swagger"
)

func registerSwagger(mux *http.ServeMux) {
	mux.Handle("/swagger/", http.StripPrefix("/swagger", swagger.Handler()))
}
