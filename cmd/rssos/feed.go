package main

import (
	"fmt"

	"github.com/chemark/rssos"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Build(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rssos.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Feed)
	return nil
}
