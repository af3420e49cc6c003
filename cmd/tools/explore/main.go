// Interactive search console against the innovation listing endpoint.
// Commands: plain text searches, /type /country /status set filters,
// /more loads the next page, /quit exits.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/drjforrest/TAIFA-FIALA-v2/internal/backend"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/config"
	"github.com/drjforrest/TAIFA-FIALA-v2/internal/explore"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redraw := make(chan explore.Snapshot, 8)
	ctrl := explore.NewController(ctx, backend.NewClient(url),
		explore.WithDebounce(300*time.Millisecond),
		explore.OnChange(func(s explore.Snapshot) {
			select {
			case redraw <- s:
			default:
			}
		}),
	)

	go func() {
		for s := range redraw {
			render(s)
		}
	}()

	ctrl.Search()

	fmt.Println("Type to search; /type T, /country C, /status S, /more, /quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit":
			return
		case line == "/more":
			ctrl.LoadMore()
		case strings.HasPrefix(line, "/type "):
			ctrl.SetTypeFilter(strings.TrimSpace(strings.TrimPrefix(line, "/type ")))
		case strings.HasPrefix(line, "/country "):
			ctrl.SetCountryFilter(strings.TrimSpace(strings.TrimPrefix(line, "/country ")))
		case strings.HasPrefix(line, "/status "):
			ctrl.SetVerificationFilter(strings.TrimSpace(strings.TrimPrefix(line, "/status ")))
		default:
			ctrl.SetQuery(line)
		}
	}
}

func render(s explore.Snapshot) {
	if s.Loading {
		return
	}
	if s.ErrMessage != "" {
		fmt.Printf("\n%s\n", s.ErrMessage)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Title", "Type", "Country", "Status"})
	for _, inn := range s.Innovations {
		t.AppendRow(table.Row{truncate(inn.Title, 48), inn.InnovationType, inn.Country, inn.VerificationStatus})
	}
	fmt.Println()
	t.Render()
	fmt.Printf("Showing %d of %d", len(s.Innovations), s.Total)
	if s.HasMore() {
		fmt.Print(" (/more for next page)")
	}
	fmt.Println()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
