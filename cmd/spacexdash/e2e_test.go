//go:build e2e

package main

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	"spacexdash/internal/config"
	"spacexdash/internal/parser"
	"spacexdash/internal/server"
	"spacexdash/internal/store"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestDashboardBrowser(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, err := store.Load(writeTestData(t), parser.Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = freePort(t)
	srv, err := server.NewServer(cfg, s)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	srvCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()
	go func() { _ = srv.Run(srvCtx) }()
	base := fmt.Sprintf("http://%s", cfg.Addr())

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	t.Run("initial render fills both panels", func(t *testing.T) {
		var title, pie string
		err := chromedp.Run(browserCtx,
			chromedp.Navigate(base),
			chromedp.WaitVisible("#success-pie-chart svg", chromedp.ByQuery),
			chromedp.Title(&title),
			chromedp.InnerHTML("#success-pie-chart", &pie, chromedp.ByID),
		)
		if err != nil {
			t.Fatalf("chromedp: %v", err)
		}
		if title != "SpaceX Launch Records Dashboard" {
			t.Errorf("title=%q", title)
		}
		if !strings.Contains(pie, "Total Success Launches by Site") {
			t.Errorf("pie panel missing title")
		}
	})

	t.Run("site change refreshes the pie chart", func(t *testing.T) {
		var pie string
		err := chromedp.Run(browserCtx,
			chromedp.SetValue("#site-dropdown", "KSC LC-39A", chromedp.ByID),
			chromedp.Evaluate(`document.getElementById('site-dropdown').dispatchEvent(new Event('change'))`, nil),
			chromedp.Poll(`document.getElementById('success-pie-chart').innerHTML.includes('Success vs Failure for KSC LC-39A')`, nil),
			chromedp.InnerHTML("#success-pie-chart", &pie, chromedp.ByID),
		)
		if err != nil {
			t.Fatalf("chromedp: %v", err)
		}
		if !strings.Contains(pie, "KSC LC-39A") {
			t.Errorf("pie panel not refreshed")
		}
	})
}
