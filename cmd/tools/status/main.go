package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sort"
	"time"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	base := flag.String("url", "", "backend base URL (defaults to BACKEND_URL)")
	flag.Parse()

	cfg := config.Load()
	url := *base
	if url == "" {
		url = cfg.BackendURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := backend.NewClient(url)

	stats, err := client.GetStats(ctx)
	if err != nil {
		log.Fatalf("Fetching stats: %v", err)
	}

	st := table.NewWriter()
	st.SetOutputMirror(os.Stdout)
	st.SetTitle("Dashboard Statistics")
	st.AppendRows([]table.Row{
		{"Publications", stats.TotalPublications},
		{"Innovations", stats.TotalInnovations},
		{"Organizations", stats.TotalOrganizations},
		{"Verified Individuals", stats.VerifiedIndividuals},
		{"Countries Covered", stats.UniqueCountries},
		{"Unique Keywords", stats.UniqueKeywords},
	})
	st.Render()

	status, err := client.GetETLStatus(ctx)
	if err != nil {
		log.Fatalf("Fetching pipeline status: %v", err)
	}

	names := make([]string, 0, len(status.Pipelines))
	for name := range status.Pipelines {
		names = append(names, name)
	}
	sort.Strings(names)

	pt := table.NewWriter()
	pt.SetOutputMirror(os.Stdout)
	pt.SetTitle("Pipelines (%s)", status.SystemHealth)
	pt.AppendHeader(table.Row{"Pipeline", "State", "Active", "Last Run"})
	for _, name := range names {
		p := status.Pipelines[name]
		lastRun := "never"
		if p.LastRun != nil {
			lastRun = p.LastRun.Format("2006-01-02 15:04")
		}
		pt.AppendRow(table.Row{name, p.State, p.Active, lastRun})
	}
	pt.Render()
}
