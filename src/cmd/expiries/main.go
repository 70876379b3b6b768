package main

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/expiry-tracker/src/eventmodels"
	"github.com/jiaming2012/expiry-tracker/src/eventservices"
	"github.com/jiaming2012/expiry-tracker/src/logger"
	"github.com/jiaming2012/expiry-tracker/src/utils"
)

type RunArgs struct {
	Feed       string
	URL        string
	ConfigFile string
	GoEnv      string
}

type RunResult struct {
	Result eventmodels.AggregateResult
	Err    error
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/expiries/main.go --feed csv",
	Short: "Fetch the next two option expiries per index symbol",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		feed, err := cmd.Flags().GetString("feed")
		if err != nil {
			log.Fatalf("error getting feed: %v", err)
		}

		url, err := cmd.Flags().GetString("url")
		if err != nil {
			log.Fatalf("error getting url: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			log.Fatalf("error getting json: %v", err)
		}

		result, err := Run(cmd.Context(), RunArgs{
			Feed:       feed,
			URL:        url,
			ConfigFile: configFile,
			GoEnv:      goEnv,
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if result.Err != nil {
			log.Warnf("feed unusable: %v", result.Err)
		}

		if asJSON {
			if err := writeJSON(os.Stdout, result.Result.Rows); err != nil {
				log.Errorf("Failed to marshal rows: %v", err)
			}
			return
		}

		writeTable(os.Stdout, result.Result.Rows)
		if result.Result.Dropped > 0 {
			fmt.Printf("%d records dropped with unreadable expiry\n", result.Result.Dropped)
		}
	},
}

// applyOverrides points config at the feed and url given on the command line.
func applyOverrides(config *eventmodels.ExpiryConfigYAML, args RunArgs) error {
	if args.Feed != "" {
		config.Feed = eventmodels.FeedName(args.Feed)
	}

	if args.URL != "" {
		switch config.Feed {
		case eventmodels.CsvFeed:
			config.Csv.URL = args.URL
		case eventmodels.JsonDumpFeed:
			config.Json.URL = args.URL
		default:
			return fmt.Errorf("applyOverrides: --url is not supported for feed %s", config.Feed)
		}
	}

	return config.Validate()
}

func Run(ctx context.Context, args RunArgs) (RunResult, error) {
	if err := utils.InitEnvironmentVariables(utils.GetEnvOrDefault("PROJECTS_DIR", "."), args.GoEnv); err != nil {
		return RunResult{}, fmt.Errorf("error loading environment variables: %w", err)
	}

	config, err := eventservices.LoadExpiryConfig(args.ConfigFile)
	if err != nil {
		return RunResult{}, err
	}

	if err := applyOverrides(config, args); err != nil {
		return RunResult{}, err
	}

	loc, err := config.Location()
	if err != nil {
		return RunResult{}, err
	}

	feed, err := eventservices.GetFeed(ctx, config, utils.NewHttpClient(utils.DefaultHttpTimeout))
	if err != nil {
		return RunResult{}, err
	}

	parsed, err := feed(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("error fetching %s feed: %w", config.Feed, err)
	}

	return RunResult{
		Result: eventservices.BuildExpiryRows(parsed, config.Whitelist(), loc),
		Err:    parsed.Err,
	}, nil
}

func writeTable(w io.Writer, rows eventmodels.ExpiryResultRows) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Expiry"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows.ToRows())
	table.Render()
}

func writeJSON(w io.Writer, rows eventmodels.ExpiryResultRows) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(out))
	return err
}

func main() {
	logger.SetupFromEnv()

	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("feed", "", "The feed to read: csv, json or sheets. Defaults to the config file's feed.")
	runCmd.PersistentFlags().String("url", "", "Overrides the feed url from the config file.")
	runCmd.PersistentFlags().String("config", eventservices.DefaultConfigFile, "Path to the expiries yaml config.")
	runCmd.PersistentFlags().Bool("json", false, "Print the result as JSON instead of a table.")

	if err := runCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
