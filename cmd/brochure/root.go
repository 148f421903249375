package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/brochure"
)

// newRootCommand builds the CLI. Settings resolve from flags, then the
// environment (a .env file is loaded first), then an optional config file.
func newRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "brochure",
		Short:         "A consulting site with SEO metadata, JSON-LD and ConvertKit forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./brochure.yaml if present)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newServeCommand(v),
		newOGImageCommand(),
		newResourceCommand(v),
		&cobra.Command{
			Use:   "version",
			Short: "Print the brochure version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "brochure %s\n", version)
			},
		},
	)
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("brochure")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":3000")
	v.SetDefault("content.dir", ".")
	v.SetDefault("static.dir", "public")
	v.SetDefault("log.level", "info")
	v.SetDefault("forms.rate_limit", 5)
	v.SetDefault("forms.rate_window", "1m")
	v.SetDefault("convertkit.contact_tag_id", "15471216")
}

// siteConfig maps resolved settings onto the site config. Unset values are
// left empty so brochure.New applies its own defaults.
func siteConfig(v *viper.Viper) brochure.SiteConfig {
	return brochure.SiteConfig{
		Name:          v.GetString("site.name"),
		Brand:         v.GetString("site.brand"),
		URL:           v.GetString("site.url"),
		Description:   v.GetString("site.description"),
		Locale:        v.GetString("site.locale"),
		DefaultImage:  v.GetString("site.default_image"),
		TwitterHandle: v.GetString("site.twitter_handle"),

		AuthorName:  v.GetString("author.name"),
		AuthorTitle: v.GetString("author.title"),

		Addr:       v.GetString("addr"),
		ContentDir: v.GetString("content.dir"),

		ConvertKitSecret:  v.GetString("convertkit.api_secret"),
		ConvertKitBaseURL: v.GetString("convertkit.base_url"),
		ContactTagID:      v.GetString("convertkit.contact_tag_id"),
		SubscribeFormID:   v.GetString("convertkit.subscribe_form_id"),

		SessionSecret: v.GetString("session.secret"),
		CookieSecure:  v.GetBool("cookie.secure"),

		FormRateLimit:  v.GetInt("forms.rate_limit"),
		FormRateWindow: v.GetDuration("forms.rate_window"),
		LogLevel:       v.GetString("log.level"),
	}
}
