package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	metadataQuery string
	metadataKind  string
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "look up tmdb metadata",
	Long:  `look up tmdb metadata`,
}

var searchMetadataCmd = &cobra.Command{
	Use:   "search",
	Short: "search tmdb",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withLookup(func(ctx context.Context, l *metadata.Lookup, kind tmdb.Kind) error {
			results, err := l.Search(ctx, metadataQuery, kind)
			if err != nil {
				return err
			}
			return writeSummaries(cmd.OutOrStdout(), results)
		})
	},
}

var detailMetadataCmd = &cobra.Command{
	Use:   "detail <tmdb id>",
	Short: "show one tmdb item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withLookup(func(ctx context.Context, l *metadata.Lookup, kind tmdb.Kind) error {
			detail, err := l.Detail(ctx, args[0], kind)
			if err != nil {
				return err
			}

			b, err := json.MarshalIndent(detail, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		})
	},
}

var listMetadataCmd = &cobra.Command{
	Use:       "list <trending|popular|top_rated>",
	Short:     "show a curated tmdb list",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(tmdb.ListTrending), string(tmdb.ListPopular), string(tmdb.ListTopRated)},
	Run: func(cmd *cobra.Command, args []string) {
		withLookup(func(ctx context.Context, l *metadata.Lookup, kind tmdb.Kind) error {
			list, err := tmdb.ParseListName(args[0])
			if err != nil {
				return err
			}

			results, err := l.List(ctx, list, kind)
			if err != nil {
				return err
			}
			return writeSummaries(cmd.OutOrStdout(), results)
		})
	},
}

func withLookup(fn func(ctx context.Context, l *metadata.Lookup, kind tmdb.Kind) error) {
	log := logger.Get()
	ctx := logger.WithCtx(context.Background(), log)

	kind, err := tmdb.ParseKind(metadataKind)
	if err != nil {
		log.Fatal(err)
	}

	lookup, err := newLookup(loadConfig())
	if err != nil {
		log.Fatal("failed to create metadata lookup", zap.Error(err))
	}

	if err := fn(ctx, lookup, kind); err != nil {
		log.Fatal(err)
	}
}

func writeSummaries(w io.Writer, results []metadata.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TMDB ID\tTITLE\tRELEASED\tRATING")
	for _, s := range results {
		rating := "-"
		if s.Rating != nil {
			rating = fmt.Sprintf("%.1f", *s.Rating)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ExternalID, s.Title, s.ReleaseDate, rating)
	}
	return tw.Flush()
}

func init() {
	metadataCmd.PersistentFlags().StringVar(&metadataKind, "type", "movie", "movie or tv")

	searchMetadataCmd.Flags().StringVarP(&metadataQuery, "query", "q", "", "a query for movies or shows")
	_ = searchMetadataCmd.MarkFlagRequired("query")

	metadataCmd.AddCommand(searchMetadataCmd, detailMetadataCmd, listMetadataCmd)
	rootCmd.AddCommand(metadataCmd)
}
