package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/application/boundaries"
	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/router"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
)

func TestHealthEndpointReturnsNoContent(t *testing.T) {
	is, server := testSetup(t, &boundaries.BoundaryServiceMock{})
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestUploadDatasetHandler(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		UploadDatasetFunc: func(ctx context.Context, name string, data []byte) (types.DatasetInfo, error) {
			return types.DatasetInfo{ID: "dataset-01", Name: name, FeatureCount: 2}, nil
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	body := new(bytes.Buffer)
	part := multipart.NewWriter(body)

	w, err := part.CreateFormFile("fileupload", "boundaries.geojson")
	is.NoErr(err)

	_, err = io.Copy(w, strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	is.NoErr(err)

	part.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v0/datasets", body)
	is.NoErr(err)
	req.Header.Add("Content-Type", part.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(len(svc.UploadDatasetCalls()), 1)
	is.Equal(svc.UploadDatasetCalls()[0].Name, "boundaries.geojson")
}

func TestUploadWithoutFileReturnsBadRequest(t *testing.T) {
	is, server := testSetup(t, &boundaries.BoundaryServiceMock{})
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/datasets", strings.NewReader("not a multipart form"))
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestGetDatasetReturnsNotFoundForUnknownID(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		GetDatasetByIDFunc: func(ctx context.Context, datasetID string) (types.DatasetInfo, error) {
			return types.DatasetInfo{}, boundaries.ErrDatasetNotFound
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/datasets/nosuchdataset", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestDetectBoundaryHandler(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		DetectFunc: func(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error) {
			return types.DetectionOutcome{
				ID:       "boundary-01",
				Method:   request.Method,
				Country1: request.Country1,
				Country2: request.Country2,
				Found:    true,
			}, nil
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	request := `{"method":"lookup","country1":"India","country2":"Sri Lanka","datasetID":"dataset-01"}`
	resp, responseBody := testRequest(is, server, http.MethodPost, "/api/v0/boundaries", strings.NewReader(request))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(len(svc.DetectCalls()), 1)
	is.Equal(svc.DetectCalls()[0].Request.Method, types.MethodLookup)

	response := struct {
		Data types.DetectionOutcome `json:"data"`
	}{}
	is.NoErr(json.Unmarshal([]byte(responseBody), &response))
	is.Equal(response.Data.ID, "boundary-01")
	is.True(response.Data.Found)
}

func TestDetectWithUnknownMethodReturnsBadRequest(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		DetectFunc: func(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error) {
			return types.DetectionOutcome{}, fmt.Errorf("%w: %s", boundaries.ErrUnknownMethod, request.Method)
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	request := `{"method":"triangulation","country1":"India","country2":"Sri Lanka"}`
	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/boundaries", strings.NewReader(request))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestDetectAgainstUnknownDatasetReturnsNotFound(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		DetectFunc: func(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error) {
			return types.DetectionOutcome{}, boundaries.ErrDatasetNotFound
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	request := `{"method":"lookup","country1":"India","country2":"Sri Lanka","datasetID":"gone"}`
	resp, _ := testRequest(is, server, http.MethodPost, "/api/v0/boundaries", strings.NewReader(request))

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestGetBoundaryHandler(t *testing.T) {
	svc := &boundaries.BoundaryServiceMock{
		GetBoundaryByIDFunc: func(ctx context.Context, boundaryID string) (types.DetectionOutcome, error) {
			if boundaryID != "boundary-01" {
				return types.DetectionOutcome{}, boundaries.ErrBoundaryNotFound
			}
			return types.DetectionOutcome{ID: boundaryID, Method: types.MethodSharedBorder, Found: true}, nil
		},
	}

	is, server := testSetup(t, svc)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/boundaries/boundary-01", nil)
	is.Equal(resp.StatusCode, http.StatusOK)

	resp, _ = testRequest(is, server, http.MethodGet, "/api/v0/boundaries/boundary-02", nil)
	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func testSetup(t *testing.T, svc boundaries.BoundaryService) (*is.I, *httptest.Server) {
	is := is.New(t)
	ctx := context.Background()

	r := RegisterHandlers(ctx, router.New("testing"), svc)

	return is, httptest.NewServer(r)
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, body)
	is.NoErr(err)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err)
	resp.Body.Close()

	return resp, string(respBody)
}
