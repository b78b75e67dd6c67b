package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/boundaries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/detection"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/geometries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("maritime-boundary-api/api")

const maxUploadSize int64 = 64 * 1024 * 1024

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc boundaries.BoundaryService) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetLoggerFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/datasets", func(r chi.Router) {
			r.Post("/", uploadDatasetHandler(log, svc))
			r.Get("/", listDatasetsHandler(log, svc))
			r.Get("/{datasetID}", getDatasetHandler(log, svc))
		})

		r.Route("/boundaries", func(r chi.Router) {
			r.Post("/", detectBoundaryHandler(log, svc))
			r.Get("/{boundaryID}", getBoundaryHandler(log, svc))
		})
	})

	return router
}

func uploadDatasetHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "upload-dataset")
		defer func() { recordErrorAndEndSpan(err, span) }()

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		err = r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			log.Error().Err(err).Msg("unable to parse multipart form")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("fileupload")
		if err != nil {
			log.Error().Err(err).Msg("no file found in upload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Error().Err(err).Msg("unable to read uploaded file")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		info, err := svc.UploadDataset(ctx, header.Filename, data)
		if err != nil {
			log.Error().Err(err).Msg("unable to store dataset")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: info})
	}
}

func listDatasetsHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "list-datasets")
		defer func() { recordErrorAndEndSpan(err, span) }()

		datasets, err := svc.GetDatasets(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch datasets")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{
			Meta: &meta{TotalRecords: uint64(len(datasets)), Count: uint64(len(datasets))},
			Data: datasets,
		})
	}
}

func getDatasetHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-dataset")
		defer func() { recordErrorAndEndSpan(err, span) }()

		datasetID := chi.URLParam(r, "datasetID")

		info, err := svc.GetDatasetByID(ctx, datasetID)
		if err != nil {
			if errors.Is(err, boundaries.ErrDatasetNotFound) {
				log.Debug().Str("dataset_id", datasetID).Msg("dataset not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msg("unable to fetch dataset")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: info})
	}
}

func detectBoundaryHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "detect-boundary")
		defer func() { recordErrorAndEndSpan(err, span) }()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error().Err(err).Msg("unable to read body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var request types.DetectionRequest
		err = json.Unmarshal(body, &request)
		if err != nil {
			log.Error().Err(err).Msg("unable to unmarshal detection request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		outcome, err := svc.Detect(ctx, request)
		if err != nil {
			if errors.Is(err, boundaries.ErrDatasetNotFound) {
				log.Debug().Msg("referenced dataset not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if isBadDetectionRequest(err) {
				log.Debug().Err(err).Msg("detection request rejected")
				writeJSON(w, http.StatusBadRequest, ApiResponse{Data: map[string]string{"error": err.Error()}})
				return
			}

			log.Error().Err(err).Msg("detection failed")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: outcome})
	}
}

func getBoundaryHandler(log zerolog.Logger, svc boundaries.BoundaryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-boundary")
		defer func() { recordErrorAndEndSpan(err, span) }()

		boundaryID := chi.URLParam(r, "boundaryID")

		outcome, err := svc.GetBoundaryByID(ctx, boundaryID)
		if err != nil {
			if errors.Is(err, boundaries.ErrBoundaryNotFound) {
				log.Debug().Str("boundary_id", boundaryID).Msg("boundary not found")
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msg("unable to fetch boundary")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: outcome})
	}
}

// isBadDetectionRequest separates caller mistakes from server side
// failures so that they map to 400 instead of 500.
func isBadDetectionRequest(err error) bool {
	badRequestErrors := []error{
		boundaries.ErrUnknownMethod,
		boundaries.ErrMissingCountry,
		boundaries.ErrMissingDatasetRef,
		detection.ErrFieldNotFound,
		detection.ErrNoMatchFound,
		detection.ErrInvalidSampleCount,
		geometries.ErrEmptyGeometry,
		geometries.ErrCRSMismatch,
	}

	for _, bad := range badRequestErrors {
		if errors.Is(err, bad) {
			return true
		}
	}

	return false
}

func writeJSON(w http.ResponseWriter, statusCode int, response ApiResponse) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response.Byte())
}

func recordErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
