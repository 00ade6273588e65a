package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/kasuboski/cineprime/config"
	"github.com/kasuboski/cineprime/pkg/metadata"
	"github.com/kasuboski/cineprime/pkg/tmdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cineprime",
	Short: "cineprime catalog cli",
	Long:  `cineprime serves the movie and series catalog and edits it from the command line`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml when present)")
}

const (
	defaultConfigFile = "config.yaml"
	defaultPublicURL  = "https://cineprime.netlify.app"
	defaultBackoff    = time.Millisecond * 500
)

func initConfig() {
	if cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			cfgFile = defaultConfigFile
		}
	}
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("CINEPRIME")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	// names the deployment environment already uses
	_ = viper.BindEnv("server.adminKey", "CINEPRIME_SERVER_ADMINKEY", "ADMIN_KEY")
	_ = viper.BindEnv("tmdb.apiKey", "CINEPRIME_TMDB_APIKEY", "TMDB_API_KEY")
	_ = viper.BindEnv("storage.mongo.uri", "CINEPRIME_STORAGE_MONGO_URI", "MONGODB_URI")
	_ = viper.BindEnv("server.publicURL", "CINEPRIME_SERVER_PUBLICURL", "NEXT_PUBLIC_URL")

	viper.SetDefault("tmdb.server", tmdb.DefaultServer)
	viper.SetDefault("tmdb.apiKey", "")
	viper.SetDefault("tmdb.backoff", defaultBackoff)
	viper.SetDefault("tmdb.maxRetries", 1)

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.adminKey", "")
	viper.SetDefault("server.publicURL", defaultPublicURL)

	viper.SetDefault("storage.driver", config.DriverSQLite)
	viper.SetDefault("storage.filePath", "cineprime.sqlite")
	viper.SetDefault("storage.mongo.uri", "")
	viper.SetDefault("storage.mongo.database", "cineprime")

	viper.SetDefault("metadata.listTTL", metadata.DefaultListTTL)
	viper.SetDefault("metadata.redisAddr", "")

	viper.SetDefault("download.resolveByNumber", false)
}
