// Package client provides the provisioning API client for the s3mctl CLI.
//
// This package implements the HTTP layer between the CLI and the S3M streaming
// provisioning service. Every request carries the settings file token verbatim
// in the Authorization header, sends and expects JSON, and is classified into
// one of three failure types so the CLI can map it to an exit code:
//   - TransportError: no HTTP response was received (DNS, refused, timeout)
//   - RemoteError: the service answered with a non-2xx status
//   - ResponseError: a 2xx answer whose body is not the expected JSON
//
// SUPPORTED OPERATIONS:
//   - ProvisionCluster: POST the cluster definition to the provision endpoint
//   - ExtendCluster: POST with an empty body to the extend endpoint
//   - GetCluster: GET a single cluster document by name
//   - ListClusters: GET every cluster of the configured type
//
// URLs are built from the settings file templates (see urls.go). Requests
// are never retried: provisioning is not idempotent and a duplicate POST
// could create a second cluster.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/concave-dev/s3mctl/cmd/s3mctl/config"
	"github.com/concave-dev/s3mctl/cmd/s3mctl/utils"
	"github.com/concave-dev/s3mctl/internal/logging"
	"github.com/concave-dev/s3mctl/internal/settings"
	"github.com/go-resty/resty/v2"
)

// S3MClient wraps a Resty client bound to one loaded settings file.
type S3MClient struct {
	client   *resty.Client
	settings *settings.Settings

	// curlOut receives an equivalent curl command for every executed
	// request when non-nil
	curlOut io.Writer

	// redact masks the settings token; nil when there is no token
	redact *strings.Replacer
}

// NewS3MClient creates a client for the given settings. timeout is in seconds;
// zero disables the deadline.
func NewS3MClient(s *settings.Settings, timeout int) *S3MClient {
	client := resty.New()
	redact := tokenRedactor(s.Token)

	// Route Resty's internal logging through our structured logging system.
	// Its debug dump and curl output carry the raw Authorization header.
	client.SetLogger(utils.RestyLogger{Secrets: redact})

	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeaders(s.Headers()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("s3mctl/%s", config.Version))

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	// Keep the token out of Resty's debug dump
	client.OnRequestLog(func(rl *resty.RequestLog) error {
		if rl.Header.Get("Authorization") != "" {
			rl.Header.Set("Authorization", settings.RedactToken(s.Token))
		}
		return nil
	})

	return &S3MClient{
		client:   client,
		settings: s,
		redact:   redact,
	}
}

// tokenRedactor replaces every occurrence of token with its redacted form.
func tokenRedactor(token string) *strings.Replacer {
	if token == "" {
		return nil
	}
	return strings.NewReplacer(token, settings.RedactToken(token))
}

// EchoCurl makes the client write a curl command equivalent to each executed
// request to w, with the token redacted. Used by --verbose.
func (api *S3MClient) EchoCurl(w io.Writer) {
	api.curlOut = w
	api.client.SetDebug(true).EnableGenerateCurlOnDebug()
}

// ProvisionCluster requests a new streaming cluster described by the
// settings file and returns the service's JSON answer.
func (api *S3MClient) ProvisionCluster(ctx context.Context) (json.RawMessage, error) {
	if err := api.settings.Require(settings.OpProvision); err != nil {
		return nil, err
	}
	url, err := ProvisionURL(api.settings)
	if err != nil {
		return nil, err
	}

	logging.Info("Provisioning %s cluster %q",
		api.settings.StreamingMQ.ClusterType, api.settings.StreamingMQ.ClusterName)
	return api.do(ctx, resty.MethodPost, url, ProvisionRequest(api.settings))
}

// ExtendCluster extends the lifetime of the cluster named in the settings
// file. The request body is empty.
func (api *S3MClient) ExtendCluster(ctx context.Context) (json.RawMessage, error) {
	if err := api.settings.Require(settings.OpExtend); err != nil {
		return nil, err
	}
	url, err := ExtendURL(api.settings)
	if err != nil {
		return nil, err
	}

	logging.Info("Extending cluster %q", api.settings.StreamingMQ.ClusterName)
	return api.do(ctx, resty.MethodPost, url, nil)
}

// GetCluster fetches the document of one cluster. The name comes from the
// command line, not from the settings file.
func (api *S3MClient) GetCluster(ctx context.Context, name string) (json.RawMessage, error) {
	if err := api.settings.Require(settings.OpGetCluster); err != nil {
		return nil, err
	}
	url, err := GetClusterURL(api.settings, name)
	if err != nil {
		return nil, err
	}

	logging.Info("Fetching cluster %q", name)
	return api.do(ctx, resty.MethodGet, url, nil)
}

// ListClusters fetches every cluster of the configured type. The response
// must be a JSON object with a "clusters" array.
func (api *S3MClient) ListClusters(ctx context.Context) (*ClusterList, error) {
	if err := api.settings.Require(settings.OpListClusters); err != nil {
		return nil, err
	}
	url, err := ListClustersURL(api.settings)
	if err != nil {
		return nil, err
	}

	logging.Info("Listing %s clusters", api.settings.StreamingMQ.ClusterType)
	raw, err := api.do(ctx, resty.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	list, err := parseClusterList(raw)
	if err != nil {
		return nil, &ResponseError{Method: resty.MethodGet, URL: url, Err: err}
	}
	logging.Debug("Listed %d clusters", len(list.Clusters))
	return list, nil
}

// do executes one request and classifies the outcome. A nil body sends no
// payload.
func (api *S3MClient) do(ctx context.Context, method, url string, body any) (json.RawMessage, error) {
	req := api.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if resp != nil && resp.Request != nil {
		api.echoCurl(resp.Request)
	}
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &RemoteError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	raw := resp.Body()
	if !json.Valid(raw) {
		return nil, &ResponseError{
			Method: method,
			URL:    url,
			Err:    fmt.Errorf("body is not valid JSON (%d bytes)", len(raw)),
		}
	}

	return json.RawMessage(raw), nil
}

// echoCurl writes the request's curl form with the token redacted.
func (api *S3MClient) echoCurl(req *resty.Request) {
	if api.curlOut == nil {
		return
	}
	curl := req.GenerateCurlCommand()
	if curl == "" {
		return
	}
	if api.redact != nil {
		curl = api.redact.Replace(curl)
	}
	fmt.Fprintf(api.curlOut, "Executed request:\n%s\n", curl)
}
