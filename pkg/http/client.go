package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
	breaker            *gobreaker.CircuitBreaker
	mask               queryMask
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
	Breaker             *BreakerOptions
	// MaskedQueryParams are query parameters whose values never reach logs or returned errors
	MaskedQueryParams []string
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	hc := &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
		mask:               newQueryMask(opts.MaskedQueryParams),
	}
	if opts.Breaker != nil {
		hc.breaker = newCircuitBreaker(*opts.Breaker)
	}
	return hc
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

type outcome struct {
	successResp any
	errorResp   any
	status      int
	err         error
}

// execute runs doRequest through the circuit breaker when one is configured.
func (hc *Client) execute(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	if hc.breaker == nil {
		return hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}

	result, err := hc.breaker.Execute(func() (interface{}, error) {
		success, errResp, status, reqErr := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
		o := &outcome{successResp: success, errorResp: errResp, status: status, err: reqErr}
		if countsAsBreakerFailure(status, reqErr) {
			return o, reqErr
		}
		return o, nil
	})

	if o, ok := result.(*outcome); ok && o != nil {
		return o.successResp, o.errorResp, o.status, o.err
	}
	// breaker rejected the call without running it
	return nil, nil, 0, fmt.Errorf("%s %s not sent: %w", method, path, err)
}

// doRequest sends an HTTP request with the given method, path, query parameters, headers and body.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	fullURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		fullURL += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, 0, hc.mask.scrub(err)
	}
	logURL := hc.mask.apply(fullURL)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if hc.logger != nil {
		hc.logger.LogRequest(method, logURL)
	}
	start := time.Now()

	resp, err := hc.client.Do(req)
	if err != nil {
		err = hc.mask.scrub(err)
		hc.logError(method, logURL, 0, start, err)
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		hc.logError(method, logURL, resp.StatusCode, start, err)
		return nil, nil, resp.StatusCode, &DecodeError{Status: resp.StatusCode, Err: err}
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				decodeErr := &DecodeError{Status: resp.StatusCode, Err: err}
				hc.logError(method, logURL, resp.StatusCode, start, decodeErr)
				return nil, nil, resp.StatusCode, decodeErr
			}
		}
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, logURL, resp.StatusCode, time.Since(start))
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
	hc.logError(method, logURL, resp.StatusCode, start, statusErr)

	// an undecodable error body is not worth more than the status itself
	if errorResp != nil && len(bodyBytes) > 0 {
		if hc.unmarshalResponse(bodyBytes, respContentType, errorResp) != nil {
			errorResp = nil
		}
	} else {
		errorResp = nil
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

func (hc *Client) logError(method, fullURL string, status int, start time.Time, err error) {
	if hc.logger != nil {
		hc.logger.LogResponseError(method, fullURL, status, time.Since(start), err)
	}
}

// encodeBody prepares the request body according to its type and the client's default content type
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch b := body.(type) {
	case string:
		return bytes.NewBufferString(b), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(b), "application/octet-stream", nil
	case url.Values:
		return strings.NewReader(b.Encode()), "application/x-www-form-urlencoded", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string, sorted by key
func buildQueryString(params map[string]string) string {
	values := make(url.Values, len(params))
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
