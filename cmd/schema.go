package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/kasuboski/cineprime/pkg/storage/sqlite"
	"github.com/spf13/cobra"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code from the migrations",
	Long:  `migrate a scratch sqlite database and generate jet models and tables from it`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		dir, err := os.MkdirTemp("", "cineprime-schema")
		if err != nil {
			log.Fatal(err)
		}
		defer os.RemoveAll(dir)

		dbPath := filepath.Join(dir, "schema.sqlite")
		tmpStorage, err := sqlite.New(ctx, dbPath)
		if err != nil {
			log.Fatal(err)
		}

		err = tmpStorage.Init(ctx)
		if err != nil {
			log.Fatal(err)
		}
		tmpStorage.Close(ctx)

		err = jet.GenerateDSN(dbPath, outputDirectory)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("successfully generated to %s", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema/gen", "directory to output generated code to")
}
