package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/casapps/cascolor/internal/update"
	"github.com/casapps/cascolor/internal/utils"
)

const updateTimeout = 30 * time.Second

// checkUpdate is swapped in tests
var checkUpdate = update.Check

func runUpdate(cmd *cobra.Command, channel string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	res, err := checkUpdate(ctx, channel, Version)
	if err != nil {
		if errors.Is(err, update.ErrNotFound) {
			fmt.Fprintln(out, "No update available.")
			return nil
		}
		utils.Debug("update check failed: %v", err)
		return fmt.Errorf("update check failed: %w", err)
	}

	if res.Available {
		fmt.Fprintf(out, "Update available! %s -> %s\n", res.Current, res.Latest)
		fmt.Fprintf(out, "Use cascolor --update %s to install.\n", res.Channel)
		return nil
	}
	fmt.Fprintln(out, "No update available.")
	return nil
}
