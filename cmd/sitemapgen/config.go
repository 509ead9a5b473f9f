package main

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/polyglottis/sitemap/v2"
)

type Config struct {
	Strict     bool   `mapstructure:"strict"`
	Indent     bool   `mapstructure:"indent"`
	DateFormat string `mapstructure:"date-format"`
	Output     string `mapstructure:"output"`
}

// LoadConfig reads the configuration from the command line flags, the
// SITEMAPGEN_* environment variables and an optional sitemapgen.yaml file, in
// this order of precedence. The remaining arguments are returned.
func LoadConfig(args []string) (*Config, []string, error) {
	flags := pflag.NewFlagSet("sitemapgen", pflag.ContinueOnError)
	flags.Bool("strict", true, "fail on the first invalid entry instead of dropping it")
	flags.Bool("indent", false, "indent the XML output")
	flags.String("date-format", sitemap.DefaultDateTimeFormat, "time layout of lastmod and publication dates")
	flags.StringP("output", "o", "", "output file (default stdout)")
	configFile := flags.String("config", "", "config file (default ./sitemapgen.yaml)")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, err
	}
	v.SetEnvPrefix("sitemapgen")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("sitemapgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, err
	}
	return &config, flags.Args(), nil
}

func (c *Config) WriterOptions() *sitemap.Options {
	return &sitemap.Options{
		StrictValidation: c.Strict,
		UseIndentation:   c.Indent,
		DateTimeFormat:   c.DateFormat,
	}
}
