//go:build linux

package platform

import (
	"runtime"

	"github.com/vishvananda/netlink"

	"github.com/wesleywu/netfacts/internal/collector"
	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
)

// Probe inspects the host for the facilities the fact sources depend on
// (Linux implementation)
func Probe() collector.Capabilities {
	return collector.Capabilities{
		GOOS: runtime.GOOS,
		Commands: map[string]bool{
			"ip":      commandAvailable("ip"),
			"netstat": commandAvailable("netstat"),
			"arp":     commandAvailable("arp"),
		},
		Netlink:    netlinkAnswers(),
		ProcArp:    fileReadable(procArpPath),
		ResolvConf: fileReadable(resolvConfPath),
	}
}

// netlinkAnswers reports whether rtnetlink queries work here. Minimal
// containers can run without the socket family.
func netlinkAnswers() bool {
	_, err := netlink.LinkList()
	return err == nil
}

// NewSources selects a fact source per category from the probed
// capabilities (Linux implementation). Native netlink sources are
// preferred; the iproute2 and net-tools commands are fallbacks.
func NewSources(caps collector.Capabilities, log *logger.Logger) collector.Sources {
	sources := collector.Sources{
		Interfaces: &netInterfaceSource{},
		Gateways:   &linuxGatewaySource{},
		Dns:        newResolvConfSource(),
	}

	switch {
	case caps.Netlink:
		sources.Routes = &netlinkRouteSource{}
	case caps.HasCommand("ip"):
		sources.Routes = &ipRouteSource{}
	case caps.HasCommand("netstat"):
		sources.Routes = &netstatRouteSource{args: []string{"-rn"}}
	}

	switch {
	case caps.Netlink:
		sources.Arp = &netlinkNeighSource{}
	case caps.ProcArp:
		sources.Arp = newProcArpSource()
	case caps.HasCommand("arp"):
		sources.Arp = &arpCommandSource{args: []string{"-n"}, parse: parseArpLinux}
	}

	for _, category := range facts.Categories() {
		log.SourceSelected(string(category), sources.SourceName(category))
	}

	return sources
}
