package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/kasuboski/cineprime/pkg/catalog"
	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/spf13/cobra"
)

var (
	seasonLinks []string

	episodeTitle   string
	episodeLink    string
	episodeEmbed   string
	episodeQuality string
	episodeNumber  int
)

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "edit the seasons of a stored series",
	Long:  `edit the seasons of a stored series. Every edit is validated as a whole tree before it is saved.`,
}

var addSeasonCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "append a season with one episode per --link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			season := b.AddSeason()
			for _, link := range seasonLinks {
				episode, err := b.AddEpisode(season)
				if err != nil {
					return err
				}
				if err := b.UpdateEpisode(season, episode, content.EpisodeUpdate{DownloadLink: content.Ptr(link)}); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var removeSeasonCmd = &cobra.Command{
	Use:   "remove <id> <season>",
	Short: "remove a season",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		season := mustNumber(args[1])
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			return b.RemoveSeason(season)
		})
	},
}

var renumberSeasonCmd = &cobra.Command{
	Use:   "renumber <id> <season> <new number>",
	Short: "change a season number",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		from, to := mustNumber(args[1]), mustNumber(args[2])
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			return b.RenumberSeason(from, to)
		})
	},
}

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "edit the episodes of a stored series",
	Long:  `edit the episodes of a stored series. Every edit is validated as a whole tree before it is saved.`,
}

var addEpisodeCmd = &cobra.Command{
	Use:   "add <id> <season>",
	Short: "append an episode to a season",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		season := mustNumber(args[1])
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			episode, err := b.AddEpisode(season)
			if err != nil {
				return err
			}
			return b.UpdateEpisode(season, episode, episodeUpdate(cmd))
		})
	},
}

var removeEpisodeCmd = &cobra.Command{
	Use:   "remove <id> <season> <episode>",
	Short: "remove an episode",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		season, episode := mustNumber(args[1]), mustNumber(args[2])
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			return b.RemoveEpisode(season, episode)
		})
	},
}

var setEpisodeCmd = &cobra.Command{
	Use:   "set <id> <season> <episode>",
	Short: "change the fields of an episode",
	Long:  `change the fields of an episode. Only the flags that are passed are applied.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		season, episode := mustNumber(args[1]), mustNumber(args[2])
		editSeasons(cmd.OutOrStdout(), args[0], func(b *content.Builder) error {
			return b.UpdateEpisode(season, episode, episodeUpdate(cmd))
		})
	},
}

// episodeUpdate collects the episode flags the user actually set
func episodeUpdate(cmd *cobra.Command) content.EpisodeUpdate {
	var u content.EpisodeUpdate
	flags := cmd.Flags()

	if flags.Changed("title") {
		u.EpisodeTitle = content.Ptr(episodeTitle)
	}
	if flags.Changed("link") {
		u.DownloadLink = content.Ptr(episodeLink)
	}
	if flags.Changed("embed") {
		u.EmbedIframeLink = content.Ptr(episodeEmbed)
	}
	if flags.Changed("quality") {
		u.Quality = content.Ptr(content.Quality(episodeQuality))
	}
	if flags.Changed("number") {
		u.EpisodeNumber = content.Ptr(episodeNumber)
	}

	return u
}

// editSeasons loads a series, applies edit to its season tree, checks the tree and saves the whole document
func editSeasons(out io.Writer, id string, edit func(b *content.Builder) error) {
	withCatalog(func(ctx context.Context, c *catalog.Catalog) error {
		doc, err := c.Get(ctx, id)
		if err != nil {
			return err
		}
		if doc.Type != content.TypeSeries {
			return fmt.Errorf("%s is a %s, not a series", id, doc.Type)
		}

		b := content.NewBuilder(doc.Seasons)
		if err := edit(b); err != nil {
			return err
		}
		if err := b.Validate(); err != nil {
			return err
		}

		doc.Seasons = b.Seasons()
		updated, err := c.Update(ctx, id, doc)
		if err != nil {
			return err
		}

		return writeSeasons(out, updated.Seasons)
	})
}

func writeSeasons(w io.Writer, seasons []content.Season) error {
	for _, s := range seasons {
		fmt.Fprintf(w, "Season %d\n", s.SeasonNumber)
		for _, e := range s.Episodes {
			fmt.Fprintf(w, "  %3d  %-4s %s  %s\n", e.EpisodeNumber, e.Quality, e.EpisodeTitle, e.DownloadLink)
		}
	}
	return nil
}

func mustNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("%q is not a number", s))
	}
	return n
}

func init() {
	addSeasonCmd.Flags().StringArrayVar(&seasonLinks, "link", nil, "download link of an episode, repeat for each episode")
	_ = addSeasonCmd.MarkFlagRequired("link")
	seasonCmd.AddCommand(addSeasonCmd, removeSeasonCmd, renumberSeasonCmd)

	for _, c := range []*cobra.Command{addEpisodeCmd, setEpisodeCmd} {
		c.Flags().StringVar(&episodeTitle, "title", "", "episode title")
		c.Flags().StringVar(&episodeLink, "link", "", "download link")
		c.Flags().StringVar(&episodeEmbed, "embed", "", "embed iframe link")
		c.Flags().StringVar(&episodeQuality, "quality", string(content.DefaultQuality), "SD, HD, FHD or 4K")
	}
	setEpisodeCmd.Flags().IntVar(&episodeNumber, "number", 0, "new episode number")
	_ = addEpisodeCmd.MarkFlagRequired("link")
	episodeCmd.AddCommand(addEpisodeCmd, removeEpisodeCmd, setEpisodeCmd)

	rootCmd.AddCommand(seasonCmd, episodeCmd)
}
