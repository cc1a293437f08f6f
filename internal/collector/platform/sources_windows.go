//go:build windows

package platform

import (
	"runtime"

	"golang.org/x/sys/windows/registry"

	"github.com/wesleywu/netfacts/internal/collector"
	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
)

// Probe inspects the host for the facilities the fact sources depend on
// (Windows implementation)
func Probe() collector.Capabilities {
	return collector.Capabilities{
		GOOS: runtime.GOOS,
		Commands: map[string]bool{
			"route":    commandAvailable("route"),
			"arp":      commandAvailable("arp"),
			"ipconfig": commandAvailable("ipconfig"),
		},
		Registry: registryAnswers(),
	}
}

// registryAnswers reports whether the TCP/IP interface parameters key
// opens for reading
func registryAnswers() bool {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, tcpipInterfacesKey, registry.READ)
	if err != nil {
		return false
	}
	_ = key.Close()
	return true
}

// NewSources selects a fact source per category from the probed
// capabilities (Windows implementation). DNS prefers the registry and
// falls back to parsing ipconfig /all.
func NewSources(caps collector.Capabilities, log *logger.Logger) collector.Sources {
	sources := collector.Sources{
		Interfaces: &netInterfaceSource{},
		Gateways:   &discoverGatewaySource{},
	}

	if caps.HasCommand("route") {
		sources.Routes = &routePrintSource{}
	}
	if caps.HasCommand("arp") {
		sources.Arp = &arpCommandSource{args: []string{"-a"}, parse: parseArpWindows}
	}

	switch {
	case caps.Registry:
		sources.Dns = &registryDnsSource{}
	case caps.HasCommand("ipconfig"):
		sources.Dns = &ipconfigDnsSource{}
	}

	for _, category := range facts.Categories() {
		log.SourceSelected(string(category), sources.SourceName(category))
	}

	return sources
}
