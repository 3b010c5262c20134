package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

func InitHttpClient(timeout time.Duration, maxIdleConn, maxIdleConnPerHost, maxConnPerHost int) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        maxIdleConn,
		MaxIdleConnsPerHost: maxIdleConnPerHost,
		MaxConnsPerHost:     maxConnPerHost,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

type HTTPPostRequestFunc func(ctx context.Context, url string, headers map[string]string, payload any) (int, []byte, error)

func NewHttpPostCall(client *http.Client) HTTPPostRequestFunc {
	return func(ctx context.Context, url string, headers map[string]string, payload any) (int, []byte, error) {
		var body io.Reader
		if payload != nil {
			b, err := json.Marshal(payload)
			if err != nil {
				return 0, nil, err
			}
			body = bytes.NewReader(b)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
		if err != nil {
			return 0, nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := client.Do(req)
		if err != nil {
			return 0, nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, nil, err
		}
		return resp.StatusCode, b, nil
	}
}
