package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/cineprime/pkg/catalog"
	"github.com/kasuboski/cineprime/pkg/content"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/kasuboski/cineprime/pkg/storage"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	listType     string
	listLanguage string
	listCategory string
	listSort     string
	listLimit    int

	draftTMDBID   string
	draftKind     string
	draftLanguage string
	draftCategory string
)

// contentCmd represents the content command
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "manage catalog content",
	Long:  `manage catalog content`,
}

var listContentCmd = &cobra.Command{
	Use:   "list",
	Short: "list catalog content",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		withCatalog(func(ctx context.Context, c *catalog.Catalog) error {
			list, err := c.List(ctx, storage.ListFilter{
				Type:     content.Type(listType),
				Language: listLanguage,
				Category: listCategory,
				Sort:     storage.ParseSort(listSort),
				Limit:    listLimit,
			})
			if err != nil {
				return err
			}

			return writeTable(cmd.OutOrStdout(), list)
		})
	},
}

var getContentCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "print a document as yaml",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withCatalog(func(ctx context.Context, c *catalog.Catalog) error {
			doc, err := c.Get(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s, %s, %s downloads, updated %s\n",
				doc.ID, playback(doc), humanize.Comma(int64(doc.DownloadCount)), humanize.Time(doc.UpdatedAt))
			return writeYAML(cmd.OutOrStdout(), doc)
		})
	},
}

var deleteContentCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "delete a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withCatalog(func(ctx context.Context, c *catalog.Catalog) error {
			if err := c.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

var importContentCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "create documents from a yaml or json file",
	Long: `create documents from a yaml or json file. The file may hold one document, a list of
documents or a yaml stream of either.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withCatalog(func(ctx context.Context, c *catalog.Catalog) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			docs, err := decodeDocuments(f, filepath.Ext(args[0]))
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var failed int
			for i, doc := range docs {
				created, err := c.Create(ctx, doc)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "document %d (%q): %v\n", i+1, doc.Title, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s %s\n", created.ID, created.Title)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents were rejected", failed, len(docs))
			}
			return nil
		})
	},
}

var draftContentCmd = &cobra.Command{
	Use:   "draft",
	Short: "print a yaml draft autofilled from tmdb",
	Long: `print a yaml draft autofilled from tmdb. Fill in the links and pass the file to
content import.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(context.Background(), log)

		kind, err := tmdb.ParseKind(draftKind)
		if err != nil {
			log.Fatal(err)
		}

		lookup, err := newLookup(loadConfig())
		if err != nil {
			log.Fatal("failed to create metadata lookup", zap.Error(err))
		}

		detail, err := lookup.Detail(ctx, draftTMDBID, kind)
		if err != nil {
			log.Fatal("failed to look up metadata", zap.Error(err))
		}

		doc := newDraft(kind, draftLanguage, draftCategory)
		detail.Apply(&doc)

		if err := writeYAML(cmd.OutOrStdout(), doc); err != nil {
			log.Fatal(err)
		}
	},
}

// newDraft starts a document of the right shape for kind. Series get one season with one episode.
func newDraft(kind tmdb.Kind, lang, category string) content.Content {
	doc := content.Content{
		Type:     content.TypeMovie,
		Language: lang,
		Category: category,
	}

	if kind != tmdb.KindTV {
		doc.MovieData = &content.MovieData{EmbedIframeLink: content.Ptr("")}
		return doc
	}

	doc.Type = content.TypeSeries
	b := content.NewBuilder(nil)
	season := b.AddSeason()
	_, _ = b.AddEpisode(season)
	doc.Seasons = b.Seasons()
	return doc
}

// decodeDocuments reads json, or a yaml stream whose documents are either one content document or a list of them
func decodeDocuments(r io.Reader, ext string) ([]content.Content, error) {
	if ext == ".json" {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		b = bytes.TrimSpace(b)
		if len(b) > 0 && b[0] == '[' {
			var docs []content.Content
			return docs, json.Unmarshal(b, &docs)
		}

		var doc content.Content
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return []content.Content{doc}, nil
	}

	var docs []content.Content
	dec := yaml.NewDecoder(r)
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			var list []content.Content
			if err := node.Decode(&list); err != nil {
				return nil, err
			}
			docs = append(docs, list...)
			continue
		}

		var doc content.Content
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, errors.New("no documents found")
	}
	return docs, nil
}

func writeTable(w io.Writer, list []content.Content) error {
	caser := cases.Title(language.English)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tYEAR\tRATING\tDOWNLOADS\tUPDATED")
	for _, c := range list {
		rating := "-"
		if c.Rating != nil {
			rating = strconv.FormatFloat(*c.Rating, 'f', 1, 64)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			c.ID,
			caser.String(string(c.Type)),
			c.Title,
			c.Year,
			rating,
			humanize.Comma(int64(c.DownloadCount)),
			humanize.Time(c.UpdatedAt),
		)
	}
	return tw.Flush()
}

// playback describes what a document can serve
func playback(doc content.Content) string {
	v, err := doc.Variant()
	if err != nil {
		return "incomplete"
	}

	switch v := v.(type) {
	case content.Movie:
		if v.Playable() {
			return "embeddable movie"
		}
		return "movie"
	case content.Series:
		return humanize.Comma(int64(v.EpisodeCount())) + " episodes"
	}
	return string(doc.Type)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// withCatalog opens the configured store, runs fn and exits non-zero on failure
func withCatalog(fn func(ctx context.Context, c *catalog.Catalog) error) {
	log := logger.Get()
	ctx := logger.WithCtx(context.Background(), log)

	cfg := loadConfig()
	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close(ctx)

	if err := fn(ctx, newCatalog(store, cfg, nil)); err != nil {
		store.Close(ctx)
		log.Fatal(err)
	}
}

func init() {
	listContentCmd.Flags().StringVar(&listType, "type", "", "movie or series")
	listContentCmd.Flags().StringVar(&listLanguage, "language", "", "exact language")
	listContentCmd.Flags().StringVar(&listCategory, "category", "", "exact category")
	listContentCmd.Flags().StringVar(&listSort, "sort", "recent", "recent or rating")
	listContentCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of documents, 0 for all")

	draftContentCmd.Flags().StringVar(&draftTMDBID, "tmdb-id", "", "tmdb id of the movie or show")
	draftContentCmd.Flags().StringVar(&draftKind, "type", "movie", "movie or tv")
	draftContentCmd.Flags().StringVar(&draftLanguage, "language", "", "catalog language")
	draftContentCmd.Flags().StringVar(&draftCategory, "category", "", "catalog category")
	_ = draftContentCmd.MarkFlagRequired("tmdb-id")

	contentCmd.AddCommand(listContentCmd, getContentCmd, deleteContentCmd, importContentCmd, draftContentCmd)
	rootCmd.AddCommand(contentCmd)
}
