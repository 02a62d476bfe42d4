// seed_designs.go loads design documents from YAML files and creates them
// through the Cobalt API.
//
// Usage:
//
//	go run scripts/seed_designs.go -dir examples/designs -api http://localhost:8600
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

// designFile is the on-disk layout. The session is decoded through the
// scoring types so bad answers are caught before anything is posted.
type designFile struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Context     map[string]interface{} `yaml:"context"`
	Session     scoring.Session        `yaml:"session"`
}

type designRequest struct {
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	Session     scoring.Session        `json:"session"`
}

func main() {
	dir := flag.String("dir", "examples/designs", "directory of design YAML files")
	apiURL := flag.String("api", "http://localhost:8600", "Cobalt API base URL")
	dryRun := flag.Bool("dry-run", false, "print designs without posting")
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.y*ml"))
	if err != nil {
		log.Fatalf("glob %s: %v", *dir, err)
	}
	sort.Strings(paths)

	var designs []designRequest
	for _, p := range paths {
		d, err := readDesign(p)
		if err != nil {
			log.Fatalf("%s: %v", p, err)
		}
		designs = append(designs, d)
	}
	log.Printf("parsed %d designs from %s", len(designs), *dir)

	if *dryRun {
		for i, d := range designs {
			fmt.Printf("[%d] %s (factors=%d, overrides=%d)\n", i+1, d.Name, len(d.Session.Inputs), len(d.Session.Overrides))
		}
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	created, skipped := 0, 0
	for _, d := range designs {
		body, err := json.Marshal(d)
		if err != nil {
			log.Printf("skip %q: %v", d.Name, err)
			skipped++
			continue
		}
		resp, err := client.Post(*apiURL+"/api/v1/designs", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", d.Name, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", d.Name, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

func readDesign(path string) (designRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return designRequest{}, err
	}
	var f designFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return designRequest{}, err
	}
	if f.Name == "" {
		return designRequest{}, fmt.Errorf("name is required")
	}
	if err := f.Session.Validate(); err != nil {
		return designRequest{}, err
	}
	req := designRequest{Name: f.Name, Context: f.Context, Session: f.Session}
	if f.Description != "" {
		req.Description = &f.Description
	}
	return req, nil
}
