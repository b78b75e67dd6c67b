package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/oceanbound/maritime-boundary-api/internal/pkg/infrastructure/logging"
	"github.com/oceanbound/maritime-boundary-api/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("maritime-boundary-client")

var ErrNotFound = fmt.Errorf("not found")

type BoundaryClient interface {
	UploadDataset(ctx context.Context, name string, data []byte) (types.DatasetInfo, error)
	DetectBoundary(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error)
	GetBoundary(ctx context.Context, boundaryID string) (types.DetectionOutcome, error)
}

type boundaryClient struct {
	url        string
	httpClient http.Client
}

func New(serviceUrl string) BoundaryClient {
	return &boundaryClient{
		url: serviceUrl,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// apiResponse is the envelope the service wraps all payloads in.
type apiResponse struct {
	Data json.RawMessage `json:"data"`
}

func (c *boundaryClient) UploadDataset(ctx context.Context, name string, data []byte) (types.DatasetInfo, error) {
	var err error
	ctx, span := tracer.Start(ctx, "upload-dataset")
	defer func() { recordErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Info().Msgf("uploading dataset %s", name)

	body := new(bytes.Buffer)
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("fileupload", name)
	if err != nil {
		err = fmt.Errorf("failed to create multipart form: %w", err)
		return types.DatasetInfo{}, err
	}

	_, err = part.Write(data)
	if err != nil {
		err = fmt.Errorf("failed to write file contents: %w", err)
		return types.DatasetInfo{}, err
	}

	form.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/datasets", body)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.DatasetInfo{}, err
	}
	req.Header.Add("Content-Type", form.FormDataContentType())

	var info types.DatasetInfo
	err = c.do(req, http.StatusCreated, &info)

	return info, err
}

func (c *boundaryClient) DetectBoundary(ctx context.Context, request types.DetectionRequest) (types.DetectionOutcome, error) {
	var err error
	ctx, span := tracer.Start(ctx, "detect-boundary")
	defer func() { recordErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Info().Msgf("requesting %s boundary between %s and %s", request.Method, request.Country1, request.Country2)

	body, err := json.Marshal(request)
	if err != nil {
		err = fmt.Errorf("failed to marshal detection request: %w", err)
		return types.DetectionOutcome{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/boundaries", bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.DetectionOutcome{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	var outcome types.DetectionOutcome
	err = c.do(req, http.StatusCreated, &outcome)

	return outcome, err
}

func (c *boundaryClient) GetBoundary(ctx context.Context, boundaryID string) (types.DetectionOutcome, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-boundary")
	defer func() { recordErrorAndEndSpan(err, span) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/api/v0/boundaries/"+boundaryID, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.DetectionOutcome{}, err
	}

	var outcome types.DetectionOutcome
	err = c.do(req, http.StatusOK, &outcome)

	return outcome, err
}

func (c *boundaryClient) do(req *http.Request, expectedStatus int, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var response apiResponse
	err = json.Unmarshal(respBody, &response)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return json.Unmarshal(response.Data, result)
}

func recordErrorAndEndSpan(err error, span trace.Span) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
