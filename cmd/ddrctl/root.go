package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Global flags
	server    string
	window    string
	apiKey    string
	apiSecret string
	jsonOut   bool
	quiet     bool
)

var printer = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "ddrctl",
	Short: "Reserve and release device memory through a ddrmem server",
	Long: `ddrctl talks to a running ddrmem server to allocate and free regions
of a device memory window, and to inspect its layout and free space.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&server, "server", "s", "http://127.0.0.1:8080", "ddrmem server URL")
	rootCmd.PersistentFlags().StringVarP(&window, "window", "w", "ddr", "Memory window name")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("DDRMEM_API_KEY"), "API key")
	rootCmd.PersistentFlags().StringVar(&apiSecret, "api-secret", os.Getenv("DDRMEM_API_SECRET"), "API secret")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		printer.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
