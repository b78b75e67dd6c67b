package gui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/boundaries"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("maritime-boundary-api/gui")

//go:embed templates/index.html
var templates embed.FS

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, svc boundaries.BoundaryService) *chi.Mux {

	router.Get("/gui", NewGuiHandler(log, svc))

	return router
}

type datasetViewModel struct {
	ID           string
	Name         string
	FeatureCount int
}

func NewGuiHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {

	t := template.Must(template.ParseFS(templates, "templates/index.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "render-gui")
		defer span.End()

		datasets, err := svc.GetDatasets(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch datasets")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		data := struct {
			Title    string
			Datasets []datasetViewModel
		}{
			Title: "Maritime Boundaries",
		}

		for _, d := range datasets {
			data.Datasets = append(data.Datasets, datasetViewModel{
				ID:           d.ID,
				Name:         d.Name,
				FeatureCount: d.FeatureCount,
			})
		}

		if err = t.Execute(w, data); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}
