package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/cineprime/config/mocks"
	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Server: "https://my-host/3",
				APIKey: "my-api-key",
			},
			Server: Server{
				Port:      9000,
				AdminKey:  "my-admin-key",
				PublicURL: "https://cineprime.example.com",
			},
			Storage: Storage{
				Driver: DriverMongo,
				Mongo: Mongo{
					URI:      "mongodb://localhost:27017",
					Database: "cineprime",
				},
			},
			Metadata: Metadata{
				ListTTL: 5 * time.Minute,
			},
			Download: Download{
				ResolveByNumber: true,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("storage.driver", "sqlite")
		cu.SetDefault("storage.filePath", "cineprime.sqlite")
		cu.SetDefault("tmdb.maxRetries", 1)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				MaxRetries: 1,
			},
			Storage: Storage{
				Driver:   DriverSQLite,
				FilePath: "cineprime.sqlite",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}
