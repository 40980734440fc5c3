package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

type apiError struct {
	Error struct {
		Message     string `json:"message"`
		Description string `json:"description"`
	} `json:"error"`
}

type windowInfo struct {
	Name       string `json:"name"`
	Base       uint64 `json:"base"`
	Total      uint64 `json:"total"`
	Available  uint64 `json:"available"`
	MaxFreeRun uint64 `json:"max_free_run"`
	Blocks     int    `json:"blocks"`
}

type reservation struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Window  string `json:"window"`
	Address uint64 `json:"address"`
	End     uint64 `json:"end"`
	Size    uint64 `json:"size"`
	Strict  bool   `json:"strict"`
}

// call performs a request against the server. A nil out discards the body;
// an io.Writer out receives it verbatim.
func call(method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" || apiSecret != "" {
		req.Header.Set("X-Api-Key", apiKey)
		req.Header.Set("X-Api-Secret", apiSecret)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		e := apiError{}
		if json.NewDecoder(resp.Body).Decode(&e) != nil || e.Error.Message == "" {
			return fmt.Errorf("server answered %s", resp.Status)
		}
		return fmt.Errorf("%s (%s)", e.Error.Message, e.Error.Description)
	}

	switch out := out.(type) {
	case nil:
		_, err = io.Copy(io.Discard, resp.Body)
	case io.Writer:
		_, err = io.Copy(out, resp.Body)
	default:
		err = json.NewDecoder(resp.Body).Decode(out)
	}

	return err
}

func windowPath() string {
	return "/v1/windows/" + window
}
