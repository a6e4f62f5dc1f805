package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/legiscan-go/legiscan"
)

type globalFlags struct {
	flagset *flag.FlagSet
	key     string
	timeout time.Duration
	debug   bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.key,
		"key",
		"",
		"LegiScan API key (defaults to LEGISCAN_API_KEY)",
	)
	f.flagset.DurationVar(
		&f.timeout,
		"timeout",
		30*time.Second,
		"per-request timeout",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	// .env is a convenience for local use; absence is not an error
	_ = godotenv.Load()

	f := newGlobalFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if f.flagset.NArg() < 1 {
		usage(f)
		os.Exit(1)
	}

	// New falls back to LEGISCAN_API_KEY when -key is not given
	client, err := legiscan.New(
		legiscan.WithAPIKey(f.key),
		legiscan.WithTimeout(f.timeout),
	)
	if err != nil {
		slog.Error("client setup failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	args := f.flagset.Args()[1:]
	switch f.flagset.Arg(0) {
	case "sessions":
		sessionsCommand(ctx, client, args)
	case "masterlist":
		masterListCommand(ctx, client, args, false)
	case "masterlist-raw":
		masterListCommand(ctx, client, args, true)
	case "bill":
		idCommand(ctx, args, "bill", "bill_id", client.GetBill)
	case "text":
		idCommand(ctx, args, "text", "doc_id", client.GetBillText)
	case "amendment":
		idCommand(ctx, args, "amendment", "amendment_id", client.GetAmendment)
	case "supplement":
		idCommand(ctx, args, "supplement", "supplement_id", client.GetSupplement)
	case "rollcall":
		idCommand(ctx, args, "rollcall", "roll_call_id", client.GetRollCall)
	case "person":
		idCommand(ctx, args, "person", "people_id", client.GetPerson)
	case "search":
		searchCommand(ctx, client, args)
	case "search-raw":
		searchRawCommand(ctx, client, args)
	case "datasets":
		datasetsCommand(ctx, client, args)
	case "dataset":
		datasetCommand(ctx, client, args)
	case "sessionpeople":
		sessionPeopleCommand(ctx, client, args)
	case "sponsored":
		sponsoredCommand(ctx, client, args)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
		usage(f)
		os.Exit(1)
	}
}

func usage(f *globalFlags) {
	fmt.Printf("Usage: %s [options] <subcommand> [args]\n\n", os.Args[0])
	fmt.Printf("Options:\n\n")
	f.flagset.PrintDefaults()
	fmt.Printf("\nSubcommands:\n\n")
	for _, s := range []string{
		"sessions", "masterlist", "masterlist-raw", "bill", "text",
		"amendment", "supplement", "rollcall", "person", "search",
		"search-raw", "datasets", "dataset", "sessionpeople", "sponsored",
	} {
		fmt.Printf("  - %s\n", s)
	}
}

func fail(err error) {
	slog.Error("request failed", "error", err)
	os.Exit(1)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func sessionsCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	state := fs.String("state", "", "two-character state postal code")
	_ = fs.Parse(args)

	sessions, err := client.GetSessionList(ctx, *state)
	if err != nil {
		fail(err)
	}
	printJSON(sessions)
}

func masterListCommand(ctx context.Context, client *legiscan.Client, args []string, raw bool) {
	fs := flag.NewFlagSet("masterlist", flag.ExitOnError)
	state := fs.String("state", "", "two-character state postal code")
	sessionID := fs.Int("session-id", 0, "session identifier")
	_ = fs.Parse(args)

	var (
		ml  *legiscan.MasterList
		err error
	)
	if raw {
		ml, err = client.GetMasterListRaw(ctx, *state, *sessionID)
	} else {
		ml, err = client.GetMasterList(ctx, *state, *sessionID)
	}
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"session": ml.Session, "bills": ml.Bills})
}

func idCommand(
	ctx context.Context,
	args []string,
	name, flagName string,
	get func(context.Context, int) (map[string]any, error),
) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.Int(flagName, 0, name+" identifier")
	_ = fs.Parse(args)

	out, err := get(ctx, *id)
	if err != nil {
		fail(err)
	}
	printJSON(out)
}

func searchCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	state := fs.String("state", "", "two-character state postal code")
	bill := fs.String("bill", "", "bill number (exact match)")
	q := fs.String("query", "", "full-text search query")
	year := fs.Int("year", 0, "year selector (1=all 2=current 3=recent 4=prior, or a year)")
	page := fs.Int("page", 0, "result page")
	_ = fs.Parse(args)

	res, err := client.Search(ctx, legiscan.SearchParams{
		State: *state, Bill: *bill, Query: *q, Year: *year, Page: *page,
	})
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"summary": res.Summary, "results": res.Results})
}

func searchRawCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("search-raw", flag.ExitOnError)
	state := fs.String("state", "", "two-character state postal code")
	q := fs.String("query", "", "full-text search query")
	year := fs.Int("year", 0, "year selector (1=all 2=current 3=recent 4=prior, or a year)")
	page := fs.Int("page", 0, "result page")
	relevance := fs.Int("relevance", 0, "minimum relevance score (1-100)")
	_ = fs.Parse(args)

	res, err := client.SearchRaw(ctx, legiscan.SearchRawParams{
		State: *state, Query: *q, Year: *year, Page: *page, MinRelevance: *relevance,
	})
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"summary": res.Summary, "results": res.Results})
}

func datasetsCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("datasets", flag.ExitOnError)
	state := fs.String("state", "", "two-character state postal code")
	year := fs.Int("year", 0, "session year")
	_ = fs.Parse(args)

	list, err := client.GetDatasetList(ctx, *state, *year)
	if err != nil {
		fail(err)
	}
	for _, ds := range list {
		fmt.Printf("session %v (%v): %s, hash %v, access key %v\n",
			ds["session_id"],
			ds["session_name"],
			datasetSize(ds["dataset_size"]),
			ds["dataset_hash"],
			ds["access_key"],
		)
	}
}

func datasetSize(v any) string {
	n, ok := v.(json.Number)
	if !ok {
		return "size unknown"
	}
	size, err := n.Int64()
	if err != nil || size < 0 {
		return "size unknown"
	}
	return humanize.Bytes(uint64(size))
}

func datasetCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("dataset", flag.ExitOnError)
	sessionID := fs.Int("session-id", 0, "session identifier")
	accessKey := fs.String("access-key", "", "access key from the datasets listing")
	_ = fs.Parse(args)

	ds, err := client.GetDataset(ctx, *sessionID, *accessKey)
	if err != nil {
		fail(err)
	}
	printJSON(ds)
}

func sessionPeopleCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("sessionpeople", flag.ExitOnError)
	sessionID := fs.Int("session-id", 0, "session identifier")
	_ = fs.Parse(args)

	sp, err := client.GetSessionPeople(ctx, *sessionID)
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"session": sp.Session, "people": sp.People})
}

func sponsoredCommand(ctx context.Context, client *legiscan.Client, args []string) {
	fs := flag.NewFlagSet("sponsored", flag.ExitOnError)
	peopleID := fs.Int("people-id", 0, "legislator identifier")
	_ = fs.Parse(args)

	sl, err := client.GetSponsoredList(ctx, *peopleID)
	if err != nil {
		fail(err)
	}
	printJSON(map[string]any{"sponsor": sl.Sponsor, "sessions": sl.Sessions, "bills": sl.Bills})
}
