package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"github.com/wesleywu/netfacts/internal/collector"
	"github.com/wesleywu/netfacts/internal/collector/platform"
	"github.com/wesleywu/netfacts/internal/config"
	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
	"github.com/wesleywu/netfacts/internal/render"
)

var (
	version = "1.0.0"

	outputFormat string
	verboseMode  bool
	quietMode    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netfacts",
		Short: "Host network facts at a glance",
		Long:  `Collects the host's routing table, network interfaces, default gateways, ARP cache and DNS resolver configuration and prints them as tables, JSON or YAML.`,
		Run:   runAll,
	}

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Show the routing table",
		Run:   runCategory(facts.CategoryRoutes),
	}

	interfacesCmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Show network interfaces",
		Run:   runCategory(facts.CategoryInterfaces),
	}

	gatewaysCmd := &cobra.Command{
		Use:   "gateways",
		Short: "Show default gateways",
		Run:   runCategory(facts.CategoryGateways),
	}

	arpCmd := &cobra.Command{
		Use:   "arp",
		Short: "Show the ARP cache",
		Run:   runCategory(facts.CategoryArp),
	}

	dnsCmd := &cobra.Command{
		Use:   "dns",
		Short: "Show DNS resolver configuration",
		Run:   runCategory(facts.CategoryDns),
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check which collection facilities are available",
		Long:  `Probe the host for the OS commands and facilities each category needs and report which categories are collectable.`,
		Run:   runCheck,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run:   showVersion,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", config.FormatTable, "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Verbose mode (debug level logging)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Quiet mode (warnings only)")

	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(interfacesCmd)
	rootCmd.AddCommand(gatewaysCmd)
	rootCmd.AddCommand(arpCmd)
	rootCmd.AddCommand(dnsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Format = outputFormat
	cfg.Verbose = verboseMode
	cfg.Quiet = quietMode

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

func runAll(_ *cobra.Command, _ []string) {
	cfg := buildConfig()
	log := logger.New(cfg.LogLevel())

	sources := platform.NewSources(platform.Probe(), log)
	snap := collector.New(sources, log).CollectAll()

	if err := render.Snapshot(os.Stdout, snap, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, failed := range snap.Failed() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", failed.Error)
	}

	// The run stands as long as one category produced data
	if !snap.HasData() {
		os.Exit(1)
	}
}

func runCategory(category facts.Category) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		cfg := buildConfig()
		log := logger.New(cfg.LogLevel())

		sources := platform.NewSources(platform.Probe(), log)
		snap := collector.New(sources, log).CollectCategory(category)

		if err := render.Category(os.Stdout, snap, category, cfg.Format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if result := snap.Result(category); result != nil && result.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", result.Error)
			os.Exit(1)
		}
	}
}

func runCheck(_ *cobra.Command, _ []string) {
	cfg := buildConfig()
	log := logger.New(cfg.LogLevel())

	caps := platform.Probe()
	fmt.Printf("Platform: %s\n", caps.GOOS)

	commands := make([]string, 0, len(caps.Commands))
	for name := range caps.Commands {
		commands = append(commands, name)
	}
	sort.Strings(commands)
	for _, name := range commands {
		if caps.Commands[name] {
			fmt.Printf("✅ %s available\n", name)
		} else {
			fmt.Printf("⚠️  %s not found in PATH\n", name)
		}
	}

	// Facility probes beyond PATH lookups, shown per platform
	switch caps.GOOS {
	case "linux":
		printFacility("netlink", caps.Netlink)
		printFacility("/proc/net/arp", caps.ProcArp)
		printFacility("/etc/resolv.conf", caps.ResolvConf)
	case "windows":
		printFacility("registry (Tcpip interfaces)", caps.Registry)
	default:
		printFacility("/etc/resolv.conf", caps.ResolvConf)
	}

	sources := platform.NewSources(caps, log)

	fmt.Println()
	for _, category := range facts.Categories() {
		name := sources.SourceName(category)
		if name == "none" {
			fmt.Printf("❌ %s: no usable source\n", category)
		} else {
			fmt.Printf("✅ %s: %s\n", category, name)
		}
	}

	if missing := sources.Missing(); len(missing) > 0 {
		fmt.Printf("\n⚠️  %d of %d categories cannot be collected\n", len(missing), len(facts.Categories()))
		os.Exit(1)
	}
	fmt.Println("\n✅ All categories collectable")
}

func printFacility(name string, available bool) {
	if available {
		fmt.Printf("✅ %s available\n", name)
	} else {
		fmt.Printf("⚠️  %s not available\n", name)
	}
}

func showVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("netfacts v%s\n", version)
	fmt.Printf("Runtime: %s\n", runtime.Version())
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
