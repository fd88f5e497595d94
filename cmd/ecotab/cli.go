package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/crawl"
	"github.com/fwojciec/ecotab/fred"
	"github.com/fwojciec/ecotab/fs"
	"github.com/fwojciec/ecotab/try"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   ecotab.Fetcher
	Variants  *crawl.VariantFetcher
	Snapshots ecotab.SnapshotService
	Converter ecotab.Converter
	Extractor ecotab.Extractor
	Exporter  *fs.Exporter
	Packages  ecotab.PackageService
	FRED      *fred.Parser
	TRY       *try.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log requests and storage calls to stderr"`
	Timeout   time.Duration `default:"30s" help:"Request timeout"`
	Insecure  bool          `help:"Disable TLS certificate verification"`
	RateLimit float64       `name:"rate-limit" default:"2" help:"Requests per second per host when trying page variants"`
	Browser   bool          `help:"Render pages in headless Chrome before parsing"`

	Fred      FredCmd      `cmd:"" help:"Extract tables from FRED catalog pages"`
	Try       TryCmd       `cmd:"" help:"Extract tables from TRY catalog pages"`
	Grep      GrepCmd      `cmd:"" help:"Print catalog page lines matching a pattern"`
	Filter    FilterCmd    `cmd:"" help:"Filter exported records by keyword"`
	Essdive   EssdiveCmd   `cmd:"" help:"Query the ESS-DIVE dataset API"`
	Snapshots SnapshotsCmd `cmd:"" help:"Manage stored page snapshots"`
}

// PageOptions selects where a catalog page comes from. Without --input or
// --snapshot the page is fetched from the catalog.
type PageOptions struct {
	Input    string `short:"i" type:"existingfile" help:"Parse a local file instead of fetching"`
	Snapshot string `help:"Parse a stored snapshot by ID"`
	Save     bool   `help:"Store the fetched page as a snapshot"`
}

// OutputOptions selects where records are written.
type OutputOptions struct {
	Output string `short:"o" help:"Write records to a file instead of stdout"`
	Format string `short:"f" enum:"auto,json,csv,tsv" default:"auto" help:"Output format (auto picks from the file extension)"`
}

// FredCmd groups the FRED subcommands.
type FredCmd struct {
	Traits  FredTraitsCmd  `cmd:"" help:"Trait inventory"`
	Species FredSpeciesCmd `cmd:"" help:"Plant species observation counts"`
	Sources FredSourcesCmd `cmd:"" help:"Data source citations"`
}

// FredTraitsCmd is the "fred traits" subcommand.
type FredTraitsCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// FredSpeciesCmd is the "fred species" subcommand.
type FredSpeciesCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// FredSourcesCmd is the "fred sources" subcommand.
type FredSourcesCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`

	Merge bool `help:"Fetch every page variant and merge the citations"`
}

// TryCmd groups the TRY subcommands.
type TryCmd struct {
	Traits      TryTraitsCmd      `cmd:"" help:"Trait list"`
	Species     TrySpeciesCmd     `cmd:"" help:"Accepted species table"`
	SpeciesList TrySpeciesListCmd `cmd:"" name:"species-list" help:"Plain species name list"`
	Datasets    TryDatasetsCmd    `cmd:"" help:"Dataset overview table"`
	Entries     TryEntriesCmd     `cmd:"" help:"Dataset fact sheets"`
}

// TryTraitsCmd is the "try traits" subcommand.
type TryTraitsCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// TrySpeciesCmd is the "try species" subcommand.
type TrySpeciesCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// TrySpeciesListCmd is the "try species-list" subcommand.
type TrySpeciesListCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// TryDatasetsCmd is the "try datasets" subcommand.
type TryDatasetsCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// TryEntriesCmd is the "try entries" subcommand.
type TryEntriesCmd struct {
	PageOptions   `embed:""`
	OutputOptions `embed:""`
}

// GrepCmd is the "grep" subcommand.
type GrepCmd struct {
	Catalog  string `arg:"" enum:"fred,try" help:"Catalog (fred or try)"`
	Page     string `arg:"" help:"Catalog page (traits, species, sources, datasets)"`
	Pattern  string `arg:"" help:"Regular expression, matched case-insensitively"`
	Markdown bool   `short:"m" help:"Render the page as Markdown before matching"`
	MainOnly bool   `name:"main-only" help:"Match only the main content, skipping menus and footers"`

	PageOptions `embed:""`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	Path        string `arg:"" type:"existingfile" help:"Records file (JSON, CSV or TSV)"`
	Pattern     string `arg:"" help:"Regular expression, matched case-insensitively"`
	Fields      string `default:"title,description,field_list" help:"Comma-separated fields to search"`
	InputFormat string `name:"input-format" enum:"auto,json,csv,tsv" default:"auto" help:"Input format (auto picks from the file extension)"`

	OutputOptions `embed:""`
}

// EssdiveCmd groups the ESS-DIVE subcommands.
type EssdiveCmd struct {
	BaseURL   string `name:"base-url" default:"https://api.ess-dive.lbl.gov/" help:"ESS-DIVE API base URL"`
	Token     string `env:"ESSDIVE_TOKEN" help:"ESS-DIVE API token"`
	TokenFile string `type:"existingfile" help:"Read the ESS-DIVE token from a file"`

	Search EssdiveSearchCmd `cmd:"" help:"Search datasets"`
	Get    EssdiveGetCmd    `cmd:"" aliases:"dataset" help:"Fetch a dataset by ID"`
}

// EssdiveSearchCmd is the "essdive search" subcommand.
type EssdiveSearchCmd struct {
	Keyword        string            `short:"k" help:"Search text"`
	ProviderName   string            `short:"p" name:"provider-name" help:"Provider or project name"`
	PageSize       int               `default:"25" help:"Records per page"`
	RowStart       int               `default:"0" help:"Row offset for pagination"`
	IncludePrivate bool              `help:"Include private datasets (requires a token)"`
	Param          map[string]string `help:"Extra query parameter as key=value (repeatable)"`
	Output         string            `short:"o" help:"Write the JSON response to a file"`
}

// EssdiveGetCmd is the "essdive get" subcommand.
type EssdiveGetCmd struct {
	ID             string `arg:"" help:"ESS-DIVE package ID"`
	IncludePrivate bool   `help:"Include private datasets (requires a token)"`
	Output         string `short:"o" help:"Write the JSON response to a file"`
}

// SnapshotsCmd groups the snapshot subcommands.
type SnapshotsCmd struct {
	List   SnapshotsListCmd   `cmd:"" default:"1" help:"List stored snapshots"`
	Delete SnapshotsDeleteCmd `cmd:"" help:"Delete a stored snapshot"`
}

// SnapshotsListCmd is the "snapshots list" subcommand.
type SnapshotsListCmd struct {
	Catalog string `help:"Only list snapshots of this catalog (fred or try)"`
	Page    string `help:"Only list snapshots of this page"`
	Limit   int    `default:"0" help:"Maximum number of snapshots (0 for all)"`
}

// SnapshotsDeleteCmd is the "snapshots delete" subcommand.
type SnapshotsDeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}
