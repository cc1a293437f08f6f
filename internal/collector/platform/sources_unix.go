//go:build darwin || freebsd

package platform

import (
	"runtime"

	"github.com/wesleywu/netfacts/internal/collector"
	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
)

// Probe inspects the host for the facilities the fact sources depend on
// (BSD implementation)
func Probe() collector.Capabilities {
	return collector.Capabilities{
		GOOS: runtime.GOOS,
		Commands: map[string]bool{
			"netstat": commandAvailable("netstat"),
			"arp":     commandAvailable("arp"),
		},
		ResolvConf: fileReadable(resolvConfPath),
	}
}

// NewSources selects a fact source per category from the probed
// capabilities (BSD implementation). Categories with no usable facility
// stay nil and fail as missing dependencies at collection time.
func NewSources(caps collector.Capabilities, log *logger.Logger) collector.Sources {
	sources := collector.Sources{
		Interfaces: &netInterfaceSource{},
		Gateways:   &discoverGatewaySource{},
		Dns:        newResolvConfSource(),
	}

	if caps.HasCommand("netstat") {
		sources.Routes = &netstatRouteSource{args: []string{"-rn", "-f", "inet"}}
	}
	if caps.HasCommand("arp") {
		sources.Arp = &arpCommandSource{args: []string{"-an"}, parse: parseArpBSD}
	}

	for _, category := range facts.Categories() {
		log.SourceSelected(string(category), sources.SourceName(category))
	}

	return sources
}
