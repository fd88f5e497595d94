package main

import (
	"regexp"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/fs"
)

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	re, err := regexp.Compile("(?i)" + c.Pattern)
	if err != nil {
		err = ecotab.Errorf(ecotab.EINVALID, "invalid pattern: %v", err)
		return fail(deps, err)
	}

	records, err := fs.LoadRecords(c.Path, fs.Format(c.InputFormat))
	if err != nil {
		return fail(deps, err)
	}

	matched := ecotab.FilterRecords(records, re, ecotab.ParseFields(c.Fields))
	if err := writeRecords(deps, c.OutputOptions, matched, len(matched)); err != nil {
		return fail(deps, err)
	}
	return nil
}
