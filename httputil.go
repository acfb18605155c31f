package daybook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// contains http utils to deal with the remote document service.

// loggingTransport logs every request/response pair at the transport level.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v error: %v", req.Method, req.URL, err)
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	return resp, nil
}

// newHTTPClient returns the http client used against the document service.
func newHTTPClient() *http.Client {
	return &http.Client{Transport: &loggingTransport{base: http.DefaultTransport}}
}

// jdo performs an HTTP exchange with JSON bodies. body may be nil; when out
// is non-nil the response body is decoded into it, with numbers kept exact
// (json.Number).
func jdo(ctx context.Context, client *http.Client, method, addr string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, addr, reader)
	if err != nil {
		return fmt.Errorf("cannot build request %s %q: %w", method, addr, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %q failed: %w", method, addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s %q failed: %s: %s", method, addr, resp.Status, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("cannot decode response of %s %q: %w", method, addr, err)
	}
	return nil
}
