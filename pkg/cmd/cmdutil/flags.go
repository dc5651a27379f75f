package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "currentprice.yaml", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file to load before reading the flags")
}

// ChartFlags defines the flags of the chart rendering commands
func ChartFlags(flags *pflag.FlagSet) {
	flags.String("format", "png", "image format, png or svg")
	flags.String("label-format", "", "printf format of the price label, e.g. %.2f; overrides the config")
}
