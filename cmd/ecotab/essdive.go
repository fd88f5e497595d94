package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/fs"
)

// token resolves the API token: --token or ESSDIVE_TOKEN first, then
// --token-file.
func (c *EssdiveCmd) token() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}
	if c.TokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Run executes the essdive search command.
func (c *EssdiveSearchCmd) Run(deps *Dependencies) error {
	doc, err := deps.Packages.SearchPackages(deps.Ctx, ecotab.PackageQuery{
		Text:           c.Keyword,
		ProviderName:   c.ProviderName,
		PageSize:       c.PageSize,
		RowStart:       c.RowStart,
		IncludePrivate: c.IncludePrivate,
		Extra:          c.Param,
	})
	if err != nil {
		return fail(deps, err)
	}
	if err := writeDocument(deps, c.Output, doc); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the essdive get command.
func (c *EssdiveGetCmd) Run(deps *Dependencies) error {
	doc, err := deps.Packages.GetPackage(deps.Ctx, c.ID, c.IncludePrivate)
	if err != nil {
		return fail(deps, err)
	}
	if err := writeDocument(deps, c.Output, doc); err != nil {
		return fail(deps, err)
	}
	return nil
}

// writeDocument prints an API response as JSON, or saves it to path.
func writeDocument(deps *Dependencies, path string, doc map[string]any) error {
	if path == "" {
		return fs.WriteJSON(deps.Stdout, doc)
	}
	if err := deps.Exporter.Export(doc, path, fs.FormatJSON); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote response to %s\n", path)
	return nil
}
