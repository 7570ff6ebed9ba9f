package main

import (
	"fmt"

	"github.com/chemark/rssos"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rssos.ErrorMessage(err))
		return err
	}

	result := deps.Classifier.Classify(page, c.URL)
	fmt.Fprintf(deps.Stdout, "archetype:  %s\n", result.Archetype)
	fmt.Fprintf(deps.Stdout, "platform:   %s\n", result.Platform)
	fmt.Fprintf(deps.Stdout, "confidence: %d\n", result.Confidence)
	for _, feature := range result.MatchedFeatures {
		fmt.Fprintf(deps.Stdout, "  matched: %s\n", feature)
	}
	return nil
}
