// gotcha — account-existence probing CLI.
//
// Hunts a username across the platform catalog, or runs the email adjunct
// checks (account discovery, domain analysis, breach indicators) for an
// address.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/analysis"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/catalog"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/hunt"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/report"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/util"
)

func main() {
	var (
		username          = flag.String("u", "", "username to hunt")
		email             = flag.String("e", "", "email address to analyse")
		targetsFile       = flag.String("targets", "", "file with one username or email per line")
		category          = flag.String("category", "", "restrict the hunt to one category")
		includeRestricted = flag.Bool("include-restricted", false, "probe adult platforms too")
		platformsFile     = flag.String("platforms", "", "JSON file with extra platform definitions")
		output            = flag.String("o", "", "write a report to this file")
		format            = flag.String("format", "json", "report format: json, csv, txt or xml")
		timeoutSec        = flag.Int("timeout", 0, "per-probe timeout in seconds (overrides env)")
		workers           = flag.Int("workers", 0, "max concurrent probes (overrides env)")
	)
	flag.Parse()

	if *username == "" && *email == "" && *targetsFile == "" {
		fmt.Fprintln(os.Stderr, "usage: gotcha -u <username> | -e <email> | -targets <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[gotcha] Config error: %v", err)
	}
	if *timeoutSec > 0 {
		cfg.Timeout = time.Duration(*timeoutSec) * time.Second
	}
	if *workers > 0 {
		cfg.MaxWorkers = *workers
	}

	reportFormat, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalf("[gotcha] %v", err)
	}

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("[gotcha] Catalog error: %v", err)
	}
	if *platformsFile != "" {
		f, err := os.Open(*platformsFile)
		if err != nil {
			log.Fatalf("[gotcha] Open platforms file: %v", err)
		}
		n, err := cat.LoadExtensions(f)
		f.Close()
		if err != nil {
			log.Fatalf("[gotcha] Load platforms: %v", err)
		}
		log.Printf("[gotcha] Loaded %d custom platform(s)", n)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	targets, err := collectTargets(*username, *email, *targetsFile)
	if err != nil {
		log.Fatalf("[gotcha] %v", err)
	}

	doc := report.NewDocument(nil)
	coord := hunt.NewCoordinator(cat, cfg, logger)

	for _, target := range targets {
		if util.IsValidEmail(target) {
			runEmail(ctx, cfg, logger, target, doc)
			continue
		}
		runUsername(ctx, coord, *category, *includeRestricted, target, doc)
	}

	if *output != "" {
		if err := report.Save(*output, doc, reportFormat); err != nil {
			log.Fatalf("[gotcha] Save report: %v", err)
		}
		fmt.Printf("\nReport saved to %s\n", *output)
	}
}

// collectTargets merges the single-target flags and the targets file into
// one normalised list.
func collectTargets(username, email, targetsFile string) ([]string, error) {
	var targets []string
	if username != "" {
		u := util.NormalizeUsername(util.Sanitize(username))
		if !util.IsValidUsername(u) {
			return nil, fmt.Errorf("invalid username %q", username)
		}
		targets = append(targets, u)
	}
	if email != "" {
		e := util.NormalizeEmail(util.Sanitize(email))
		if !util.IsValidEmail(e) {
			return nil, fmt.Errorf("invalid email %q", email)
		}
		targets = append(targets, e)
	}
	if targetsFile != "" {
		f, err := os.Open(targetsFile)
		if err != nil {
			return nil, fmt.Errorf("open targets file: %w", err)
		}
		defer f.Close()
		fromFile, err := util.ReadTargets(f)
		if err != nil {
			return nil, err
		}
		targets = append(targets, fromFile...)
	}
	return targets, nil
}

func runUsername(ctx context.Context, coord *hunt.Coordinator, category string, includeRestricted bool, username string, doc *report.Document) {
	start := time.Now()

	var (
		huntReport model.HuntReport
		err        error
	)
	if category != "" {
		c, parseErr := catalog.ParseCategory(category)
		if parseErr != nil {
			log.Printf("[gotcha] %v", parseErr)
			return
		}
		found, huntErr := coord.HuntCategory(ctx, username, c)
		if huntErr != nil {
			log.Printf("[gotcha] Hunt error for %q: %v", username, huntErr)
			return
		}
		huntReport = model.HuntReport{
			Identifier:    username,
			Categories:    map[string][]model.ProbeResult{string(c): found},
			CategoryOrder: []string{string(c)},
		}
	} else {
		huntReport, err = coord.HuntAll(ctx, username, includeRestricted)
		if err != nil {
			log.Printf("[gotcha] Hunt error for %q: %v", username, err)
			return
		}
	}

	doc.Hunts = append(doc.Hunts, huntReport)
	printHuntTable(huntReport, time.Since(start))
}

func runEmail(ctx context.Context, cfg *config.Config, logger *slog.Logger, email string, doc *report.Document) {
	hunter := analysis.NewEmailHunter(cfg, logger)
	accounts := hunter.HuntAccounts(ctx, email)

	resolver := analysis.NewResolver(cfg.DNSServer)
	domain := analysis.AnalyzeDomain(ctx, resolver, email)

	checker := analysis.NewBreachChecker(cfg, logger)
	breaches := checker.Check(ctx, email)

	doc.Emails = append(doc.Emails, model.EmailReport{Email: email, Accounts: accounts, Domain: domain})
	doc.Breaches = append(doc.Breaches, breaches)

	printEmailTable(email, accounts, domain, breaches)
}

func printHuntTable(r model.HuntReport, elapsed time.Duration) {
	fmt.Printf("\nResults for %q:\n", r.Identifier)

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]any{"Category", "Platform", "Status", "URL"})
	for _, cat := range r.CategoryOrder {
		for _, res := range r.Categories[cat] {
			table.Append([]string{cat, res.Platform, string(res.Status), res.ProfileURL})
		}
	}
	if err := table.Render(); err != nil {
		log.Printf("[gotcha] Table render failed: %v", err)
	}

	fmt.Printf("Total found: %d (%.1fs)\n", r.TotalFound(), elapsed.Seconds())
}

func printEmailTable(email string, accounts []model.ProbeResult, domain model.DomainInfo, breaches model.BreachReport) {
	fmt.Printf("\nResults for %q:\n", email)

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]any{"Platform", "Status", "Note"})
	for _, a := range accounts {
		note := ""
		if n, ok := a.AdditionalInfo["note"].(string); ok {
			note = n
		}
		table.Append([]string{a.Platform, string(a.Status), note})
	}
	for _, e := range breaches.Entries {
		table.Append([]string{e.Source, string(e.Status), e.Note})
	}
	if err := table.Render(); err != nil {
		log.Printf("[gotcha] Table render failed: %v", err)
	}

	fmt.Printf("Domain %s: corporate=%v disposable=%v mx=%d\n",
		domain.Domain, domain.IsCorporate, domain.IsDisposable, len(domain.MXRecords))
	fmt.Printf("Breach risk: %s\n", breaches.RiskLevel)
}
