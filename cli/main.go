package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"ziktok/catalog"
	"ziktok/client"
	"ziktok/config"
	"ziktok/feed"
	"ziktok/server"
	"ziktok/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "serve":
		cmdServe(args)
	case "search":
		cmdSearch(args)
	case "add":
		cmdAdd(args)
	case "remove":
		cmdRemove(args)
	case "channels":
		cmdChannels(args)
	case "feed":
		cmdFeed(args)
	case "export":
		cmdExport(args)
	case "import":
		cmdImport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ziktok - vertical short-form feed for YouTube channels

Usage:
  ziktok serve                       Run the catalog proxy server
  ziktok search <query>              Search channels by name
  ziktok add <channel-id> [title]    Subscribe to a channel
  ziktok remove <channel-id>         Unsubscribe from a channel
  ziktok channels                    List subscribed channels
  ziktok feed                        Load and print the merged feed
  ziktok export                      Print subscriptions and settings as JSON
  ziktok import <file>               Apply an exported settings file
  ziktok help                        Show this help message

Examples:
  YOUTUBE_API_KEY=... ziktok serve                # Run the proxy
  ziktok search "veritasium"                      # Find channel IDs
  ziktok add UCHnyfMqiRRG1u-2MsSQLbXA             # Subscribe
  ziktok feed                                     # Merged shorts feed
  ziktok export > settings.json                   # Back up settings

The search, add, feed and channel commands talk to a running proxy
(ZIKTOK_PROXY_URL, default http://localhost:3000).
`)
}

// loadConfig loads configuration or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newProxyClient builds an HTTP client for the configured proxy.
func newProxyClient(cfg *config.Config) *client.Client {
	clientCfg := client.DefaultConfig()
	clientCfg.BaseURL = cfg.ProxyURL
	clientCfg.Timeout = cfg.HTTPTimeout
	return client.New(clientCfg)
}

// openStore opens the subscription store or exits.
func openStore(cfg *config.Config) *store.Store {
	st, err := store.New(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}
	return st
}

func cmdServe(args []string) {
	cfg := loadConfig()

	if cfg.APIKey == "" {
		fmt.Fprintf(os.Stderr, "Error: YOUTUBE_API_KEY is not set\n")
		os.Exit(1)
	}

	ctx := context.Background()
	cat, err := catalog.NewClient(ctx, cfg.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating YouTube client: %v\n", err)
		os.Exit(1)
	}
	if cfg.UpstreamQPS > 0 {
		cat.SetRateLimit(cfg.UpstreamQPS, cfg.UpstreamBurst)
	}

	cached := catalog.NewCached(cat, cfg.CacheTTL)
	srv := server.New(cached, cfg.StaticDir)

	log.Printf("server: ZikTok proxy listening on http://localhost:%s", cfg.Port)
	log.Printf("server: caching shorts results for %s", cfg.CacheTTL)
	if err := http.ListenAndServe(":"+cfg.Port, srv.Handler()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: server stopped: %v\n", err)
		os.Exit(1)
	}
}

func cmdSearch(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing query\n")
		os.Exit(1)
	}
	query := args[0]

	cfg := loadConfig()
	proxy := newProxyClient(cfg)
	defer proxy.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Searching channels for %q...\n", query)
	channels, err := proxy.SearchChannels(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching channels: %v\n", err)
		os.Exit(1)
	}

	if len(channels) == 0 {
		fmt.Println("No channels found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL ID\tTITLE")
	for _, c := range channels {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, truncate(c.Title, 50))
	}
	w.Flush()
}

func cmdAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel-id\n")
		os.Exit(1)
	}
	channelID := args[0]

	cfg := loadConfig()
	st := openStore(cfg)

	title := ""
	if len(args) > 1 {
		title = args[1]
	} else {
		// Resolve the display name through the proxy when not given.
		proxy := newProxyClient(cfg)
		defer proxy.Close()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
		defer cancel()

		result, err := proxy.GetShorts(ctx, channelID, 1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving channel: %v\n", err)
			os.Exit(1)
		}
		title = result.ChannelTitle
	}

	err := st.AddChannel(context.Background(), store.Channel{ID: channelID, Title: title})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding channel: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subscribed to %s (%s)\n", title, channelID)
}

func cmdRemove(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing channel-id\n")
		os.Exit(1)
	}
	channelID := args[0]

	cfg := loadConfig()
	st := openStore(cfg)

	if err := st.RemoveChannel(context.Background(), channelID); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing channel: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Unsubscribed from %s\n", channelID)
}

func cmdChannels(args []string) {
	cfg := loadConfig()
	st := openStore(cfg)

	channels := st.Channels()
	if len(channels) == 0 {
		fmt.Println("No subscribed channels.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL ID\tTITLE")
	for _, c := range channels {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, truncate(c.Title, 50))
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d channels\n", len(channels))
}

func cmdFeed(args []string) {
	cfg := loadConfig()
	st := openStore(cfg)

	channels := st.Channels()
	if len(channels) == 0 {
		fmt.Println("No subscribed channels. Use 'ziktok add' first.")
		return
	}

	proxy := newProxyClient(cfg)
	defer proxy.Close()

	agg := feed.New(proxy)
	agg.SetQuota(cfg.FeedTargetTotal, cfg.FeedMinPerChannel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Loading feed from %d channels...\n", len(channels))
	videos, err := agg.LoadAll(ctx, channels, feed.SortMode(st.SortMode()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading feed: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tTITLE\tCHANNEL\tPUBLISHED")
	for _, v := range videos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			v.ID,
			truncate(v.Title, 50),
			truncate(v.ChannelTitle, 25),
			v.PublishedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d shorts\n", len(videos))
}

func cmdExport(args []string) {
	cfg := loadConfig()
	st := openStore(cfg)

	data, err := st.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting settings: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(data)
	fmt.Println()
}

func cmdImport(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing file\n")
		os.Exit(1)
	}

	cfg := loadConfig()
	st := openStore(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	if err := st.Import(context.Background(), data); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d channels\n", len(st.Channels()))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
