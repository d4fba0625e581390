// Diagnose configured RSS feeds: reachability, item counts, latest entry
// dates. Run with: go run scripts/diagnose_feeds.go [-config config.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mmcdole/gofeed"

	"chutti-news/internal/config"
)

type feedDiagnostic struct {
	URL          string
	Status       string
	HTTPCode     int
	ItemCount    int
	LatestDate   string
	FeedType     string
	ResponseTime time.Duration
	ErrorMessage string
}

func main() {
	configPath := flag.String("config", config.GetEnvString("CONFIG_FILE", "config.yaml"), "path to the YAML config file")
	timeout := flag.Duration("timeout", 30*time.Second, "per-feed timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	log.Printf("diagnosing %d feeds", len(cfg.Feeds))

	diagnostics := make([]feedDiagnostic, 0, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		log.Printf("[%d/%d] %s", i+1, len(cfg.Feeds), f.URL)
		diagnostics = append(diagnostics, diagnoseFeed(f.URL, *timeout))
		// Be polite to feed hosts
		time.Sleep(500 * time.Millisecond)
	}

	printReport(diagnostics)
}

func diagnoseFeed(url string, timeout time.Duration) feedDiagnostic {
	diag := feedDiagnostic{URL: url}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		diag.Status = "REQUEST_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}
	req.Header.Set("User-Agent", "ChuttiNewsBot-Diagnostic/1.0")
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := http.DefaultClient.Do(req)
	diag.ResponseTime = time.Since(start)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			diag.Status = "TIMEOUT"
		} else {
			diag.Status = "HTTP_ERROR"
		}
		diag.ErrorMessage = err.Error()
		return diag
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	diag.HTTPCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = resp.Status
		return diag
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		diag.Status = "PARSE_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	diag.FeedType = feed.FeedType
	diag.ItemCount = len(feed.Items)
	if diag.ItemCount == 0 {
		diag.Status = "EMPTY"
		return diag
	}

	var latest time.Time
	for _, item := range feed.Items {
		if item.PublishedParsed != nil && item.PublishedParsed.After(latest) {
			latest = *item.PublishedParsed
		}
		if item.UpdatedParsed != nil && item.UpdatedParsed.After(latest) {
			latest = *item.UpdatedParsed
		}
	}
	if !latest.IsZero() {
		diag.LatestDate = latest.Format(time.RFC3339)
	}
	diag.Status = "OK"
	return diag
}

func printReport(diagnostics []feedDiagnostic) {
	fmt.Println("\n=== Feed Diagnostic Report ===")
	healthy := 0
	for _, d := range diagnostics {
		fmt.Printf("\n%s\n", d.URL)
		fmt.Printf("  status: %s", d.Status)
		if d.HTTPCode != 0 {
			fmt.Printf(" (HTTP %d)", d.HTTPCode)
		}
		fmt.Printf(", response time: %v\n", d.ResponseTime.Round(time.Millisecond))
		if d.Status == "OK" {
			healthy++
			fmt.Printf("  type: %s, items: %d, latest: %s\n", d.FeedType, d.ItemCount, d.LatestDate)
		}
		if d.ErrorMessage != "" {
			fmt.Printf("  error: %s\n", d.ErrorMessage)
		}
	}
	fmt.Printf("\n%d/%d feeds healthy\n", healthy, len(diagnostics))

	if healthy < len(diagnostics) {
		os.Exit(1)
	}
}
