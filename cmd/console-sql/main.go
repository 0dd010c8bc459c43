// console-sql runs SQL batches against a remote engine from the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarrydb/console-sql/client"
	"github.com/quarrydb/console-sql/config"
	"github.com/quarrydb/console-sql/format"
	"github.com/quarrydb/console-sql/runner"
	"github.com/quarrydb/console-sql/wire"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "console-sql",
		Short:         "Run SQL against a remote query engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(queryCmd(), versionCmd())

	return cmd
}

func queryCmd() *cobra.Command {
	var (
		formatName string
		cluster    string
	)

	cmd := &cobra.Command{
		Use:   "query <sql> [<sql>...]",
		Short: "Execute one batch of SQL statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cluster == "" {
				cluster = cfg.Cluster
			}

			formatter := format.ByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown format: %s", formatName)
			}

			env := &client.Environment{
				Address:   cfg.Address,
				AuthToken: cfg.AuthToken,
				State:     client.EnvironmentStateFromString(cfg.State),
			}

			queries := make([]wire.Query, len(args))
			for i, arg := range args {
				queries[i] = wire.Query{Query: arg}
			}

			run := runner.New(client.New(env), env, runner.WithTimeout(cfg.Timeout))

			var runOpts []runner.RunOption
			if cluster != "" {
				runOpts = append(runOpts, runner.OnCluster(cluster))
			}

			inv := run.Run(&wire.ExtendedRequest{Queries: queries}, runOpts...)
			if inv == nil {
				return fmt.Errorf("environment is not enabled")
			}

			select {
			case <-inv.Done():
			case <-cmd.Context().Done():
				run.Abort()
				return cmd.Context().Err()
			}

			return render(run.Snapshot(), formatter, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "table", "output format: table, csv or json")
	cmd.Flags().StringVarP(&cluster, "cluster", "c", "", "compute cluster to run on")

	return cmd
}

func render(snap runner.Snapshot, formatter format.Formatter, out, errOut io.Writer) error {
	if snap.Err != "" {
		return fmt.Errorf("%s", snap.Err)
	}

	for _, result := range snap.Results {
		switch res := result.(type) {
		case *wire.RowsResult:
			if err := formatter.Format(res, out); err != nil {
				return err
			}
			printNotices(errOut, res.Notices)

		case *wire.OkResult:
			fmt.Fprintln(out, res.Ok)
			printNotices(errOut, res.Notices)

		case *wire.ErrorResult:
			printNotices(errOut, res.Notices)
			printStatementError(errOut, &res.Err)
		}
	}

	if snap.DatabaseErr != nil {
		return fmt.Errorf("query failed")
	}
	return nil
}

func printNotices(w io.Writer, notices []wire.Notice) {
	for _, notice := range notices {
		fmt.Fprintf(w, "%s: %s\n", notice.Severity, notice.Message)
		if notice.Hint != "" {
			fmt.Fprintf(w, "hint: %s\n", notice.Hint)
		}
	}
}

func printStatementError(w io.Writer, stmtErr *wire.Error) {
	fmt.Fprintf(w, "error %s: %s\n", stmtErr.Code, stmtErr.Message)
	if stmtErr.Detail != "" {
		fmt.Fprintf(w, "detail: %s\n", stmtErr.Detail)
	}
	if stmtErr.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", stmtErr.Hint)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
