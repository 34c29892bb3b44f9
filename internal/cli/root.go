package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pet-wellness-web",
	Short: "Web client for the pet wellness platform",
	Long: `Server-rendered web client of the pet wellness platform.

	pet-wellness-web serve
	pet-wellness-web migrate up
	pet-wellness-web routes
`,
	SilenceUsage: true,
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
