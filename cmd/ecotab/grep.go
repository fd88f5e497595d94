package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/ecotab"
)

// Run executes the grep command.
func (c *GrepCmd) Run(deps *Dependencies) error {
	re, err := regexp.Compile("(?i)" + c.Pattern)
	if err != nil {
		err = ecotab.Errorf(ecotab.EINVALID, "invalid pattern: %v", err)
		return fail(deps, err)
	}

	content, err := loadPage(deps, c.PageOptions, ecotab.Catalog(c.Catalog), c.Page)
	if err != nil {
		return fail(deps, err)
	}
	if c.MainOnly {
		result, err := deps.Extractor.Extract(content)
		if err != nil {
			return fail(deps, err)
		}
		content = result.ContentHTML
	}
	if c.Markdown {
		if content, err = deps.Converter.Convert(content); err != nil {
			return fail(deps, err)
		}
	}

	for _, line := range ecotab.GrepLines(content, re) {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
