package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
)

func main() {
	pipeline := flag.String("pipeline", "news", "pipeline to trigger (news, academic, discovery, enrichment)")
	payload := flag.String("payload", "", "optional JSON body forwarded to the trigger endpoint")
	base := flag.String("url", envOr("SERVER_URL", "http://localhost:8080"), "server base URL")
	flag.Parse()

	adminSecret := strings.TrimSpace(os.Getenv("ADMIN_API_SECRET"))
	if adminSecret == "" {
		fmt.Println("Missing ADMIN_API_SECRET environment variable")
		os.Exit(1)
	}

	var body *bytes.Reader
	if *payload != "" {
		if !json.Valid([]byte(*payload)) {
			fmt.Println("Payload is not valid JSON")
			os.Exit(1)
		}
		body = bytes.NewReader([]byte(*payload))
	} else {
		body = bytes.NewReader(nil)
	}

	url := strings.TrimRight(*base, "/") + "/api/etl/trigger/" + *pipeline
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("X-Admin-Secret", adminSecret)
	if *payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Printf("Response Status: %s (undecodable body: %v)\n", resp.Status, err)
		os.Exit(1)
	}

	if result.Error != "" {
		fmt.Printf("Error: %s\n", result.Error)
		os.Exit(1)
	}
	fmt.Printf("Success: %v\nMessage: %s\n", result.Success, result.Message)
	if !result.Success || resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
