package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ironsheep/seamcarve-mcp/internal/config"
	"github.com/ironsheep/seamcarve-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seamcarve-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	v := config.New()

	// Logging goes to stderr (stdout is for MCP protocol and carve output)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) > 1 && os.Args[1] == "carve" {
		if err := runCarve(v, os.Args[2:], os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("carve failed")
		}
		return
	}

	cfg := mustLoad(v)
	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting seamcarve-mcp")

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// mustLoad loads the configuration and applies its log level, exiting on error.
func mustLoad(v *viper.Viper) *config.Config {
	cfg, err := loadConfig(v)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// loadConfig reads the configuration and applies its log level globally.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

func printHelp() {
	fmt.Println("seamcarve-mcp - MCP server for content-aware image resizing")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seamcarve-mcp [options]                     Serve MCP over stdin/stdout")
	fmt.Println("  seamcarve-mcp carve [flags] <input> [output] Carve one image and exit")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Carve flags:")
	fmt.Println("  --width int        Target width (defaults to the current width)")
	fmt.Println("  --height int       Target height (defaults to the current height)")
	fmt.Println("  --strict-energy    Keep every cached energy exact after each removal")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SEAMCARVE_MCP_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println("  SEAMCARVE_MCP_STRICT_ENERGY=true   Exact energy refresh")
	fmt.Println("  SEAMCARVE_MCP_OUTPUT_DIR=<dir>     Where carved images are written")
	fmt.Println("  SEAMCARVE_MCP_SEAM_COLOR=#RRGGBB   Default seam overlay color")
	fmt.Println()
	fmt.Println("Settings may also be placed in seamcarve-mcp.toml in the working")
	fmt.Println("directory or in ~/.config/seamcarve-mcp/.")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
