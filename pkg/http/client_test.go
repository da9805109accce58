package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type payload struct {
	Name string  `json:"name"`
	Temp float64 `json:"temp"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func TestExecuteEncodesQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"ok","temp":1}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, _, err := client.Request().
		WithPath("/weather").
		WithQueryParams(map[string]string{"q": "São Paulo & co"}).
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotQuery != "São Paulo & co" {
		t.Errorf("server saw q = %q, want %q", gotQuery, "São Paulo & co")
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantStatus  int
		validate    func(t *testing.T, success any, errResp any, err error)
	}{
		{
			name:        "success decodes json",
			status:      http.StatusOK,
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"Colombo","temp":29.5}`,
			wantStatus:  http.StatusOK,
			validate: func(t *testing.T, success any, errResp any, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				p := success.(*payload)
				if p.Name != "Colombo" || p.Temp != 29.5 {
					t.Errorf("decoded %+v", p)
				}
			},
		},
		{
			name:        "error status decodes error body",
			status:      http.StatusUnauthorized,
			contentType: "application/json",
			body:        `{"message":"Invalid credentials"}`,
			wantStatus:  http.StatusUnauthorized,
			validate: func(t *testing.T, success any, errResp any, err error) {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("error = %v, want *StatusError", err)
				}
				if statusErr.Status != http.StatusUnauthorized {
					t.Errorf("StatusError.Status = %d", statusErr.Status)
				}
				if errResp.(*errorPayload).Message != "Invalid credentials" {
					t.Errorf("error body = %+v", errResp)
				}
			},
		},
		{
			name:        "error status with undecodable body",
			status:      http.StatusNotFound,
			contentType: "text/html",
			body:        `<html>not found</html>`,
			wantStatus:  http.StatusNotFound,
			validate: func(t *testing.T, success any, errResp any, err error) {
				if errResp != nil {
					t.Errorf("error body = %+v, want nil", errResp)
				}
				var statusErr *StatusError
				if !errors.As(err, &statusErr) || statusErr.Status != http.StatusNotFound {
					t.Errorf("error = %v, want status 404", err)
				}
			},
		},
		{
			name:        "malformed success body",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"name":`,
			wantStatus:  http.StatusOK,
			validate: func(t *testing.T, success any, errResp any, err error) {
				var decodeErr *DecodeError
				if !errors.As(err, &decodeErr) {
					t.Fatalf("error = %v, want *DecodeError", err)
				}
				if success != nil {
					t.Errorf("success = %+v, want nil", success)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewHttpClient(server.URL, ClientOptions{})
			success, errResp, status, err := client.Request().
				WithMethod(POST).
				WithPath("users/login").
				WithBody(map[string]string{"email": "a@b.c"}).
				WithSuccessResp(&payload{}).
				WithErrorResp(&errorPayload{}).
				Execute()

			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			tt.validate(t, success, errResp, err)
		})
	}
}

func TestExecuteDecodesLatin1XML(t *testing.T) {
	type place struct {
		Name string `xml:"name"`
	}
	body := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><place><name>S`), 0xE3, 'o', '<', '/', 'n', 'a', 'm', 'e', '>', '<', '/', 'p', 'l', 'a', 'c', 'e', '>')

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	success, _, _, err := client.Request().WithSuccessResp(&place{}).Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := success.(*place).Name; got != "São" {
		t.Errorf("Name = %q, want %q", got, "São")
	}
}

func TestExecuteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHttpClient(url, ClientOptions{ConnectionTimeout: time.Second})
	_, _, status, err := client.Request().Execute()
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("error = %v, want transport failure", err)
	}
}

func TestExecuteHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, _, _, err := client.Request().WithContext(ctx).Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
}

func TestBreakerOpensOnServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Breaker: &BreakerOptions{Name: "test", MinRequests: 3, FailureRatio: 0.6, Timeout: time.Minute},
	})

	for i := 0; i < 3; i++ {
		_, _, status, _ := client.Request().Execute()
		if status != http.StatusBadGateway {
			t.Fatalf("call %d status = %d", i, status)
		}
	}

	_, _, status, err := client.Request().Execute()
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want open breaker", err)
	}
	if status != 0 {
		t.Errorf("status = %d, want 0", status)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
}

func TestBreakerIgnoresCancelledCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"ok","temp":1}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Breaker: &BreakerOptions{Name: "test", MinRequests: 3, FailureRatio: 0.6, Timeout: time.Minute},
	})

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		_, _, _, err := client.Request().WithContext(cancelled).Execute()
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d error = %v, want context canceled", i, err)
		}
	}

	_, _, status, err := client.Request().WithSuccessResp(&payload{}).Execute()
	if err != nil {
		t.Fatalf("healthy call after cancelled ones: error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Breaker: &BreakerOptions{Name: "test", MinRequests: 1, FailureRatio: 0.1},
	})

	for i := 0; i < 5; i++ {
		_, _, status, err := client.Request().Execute()
		if status != http.StatusNotFound {
			t.Fatalf("call %d status = %d, err = %v", i, status, err)
		}
	}
}

func TestExecuteMasksQueryInLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Logger:            NewZapHTTPLogger(zap.New(core)),
		MaskedQueryParams: []string{"appid"},
	})
	_, _, _, err := client.Request().
		WithQueryParams(map[string]string{"q": "Colombo", "appid": "secret-key"}).
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if logs.Len() != 2 {
		t.Fatalf("logged %d entries, want 2", logs.Len())
	}
	for _, entry := range logs.All() {
		logged := entry.ContextMap()["url"].(string)
		if strings.Contains(logged, "secret-key") {
			t.Errorf("api key leaked in %q", logged)
		}
		if !strings.Contains(logged, "appid="+maskedValue) || !strings.Contains(logged, "q=Colombo") {
			t.Errorf("unexpected logged url %q", logged)
		}
	}
}

func TestExecuteMasksQueryOnTransportFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHttpClient(url, ClientOptions{
		ConnectionTimeout: time.Second,
		Logger:            NewZapHTTPLogger(zap.New(core)),
		MaskedQueryParams: []string{"appid"},
	})
	_, _, _, err := client.Request().
		WithPath("/weather").
		WithQueryParams(map[string]string{"q": "Colombo", "appid": "secret-key"}).
		Execute()
	if err == nil {
		t.Fatal("Execute() expected error")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("api key leaked in returned error %q", err)
	}

	failed := logs.FilterMessage("HTTP request failed").All()
	if len(failed) != 1 {
		t.Fatalf("logged %d failures, want 1", len(failed))
	}
	for _, entry := range logs.All() {
		for key, value := range entry.ContextMap() {
			if strings.Contains(fmt.Sprint(value), "secret-key") {
				t.Errorf("api key leaked in field %s: %v", key, value)
			}
		}
	}
	if logged := fmt.Sprint(failed[0].ContextMap()["error"]); !strings.Contains(logged, "appid="+maskedValue) {
		t.Errorf("logged error %q, want masked appid", logged)
	}
}
