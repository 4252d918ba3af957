package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// doCommand posts a dtoIn to a command path with the identity headers set
// and returns the raw response body. Non-2xx replies are surfaced as errors
// with the body attached, since the errorMap explains the failure.
func doCommand(command string, dtoIn map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(dtoIn)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, apiFlag+command, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if userFlag != "" {
		req.Header.Set("X-User-Id", userFlag)
	}
	if profilesFlag != "" {
		req.Header.Set("X-User-Profiles", profilesFlag)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return data, nil
}
