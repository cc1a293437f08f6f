package collector

import (
	"github.com/wesleywu/netfacts/internal/facts"
)

// RouteSource reads the host routing table
type RouteSource interface {
	Name() string
	Routes() ([]facts.RouteEntry, error)
}

// InterfaceSource enumerates network interfaces and their addresses
type InterfaceSource interface {
	Name() string
	Interfaces() ([]facts.InterfaceInfo, error)
}

// GatewaySource discovers default gateways
type GatewaySource interface {
	Name() string
	Gateways() ([]facts.GatewayEntry, error)
}

// ArpSource reads the ARP cache
type ArpSource interface {
	Name() string
	Entries() ([]facts.ArpEntry, error)
}

// DnsSource reads the resolver configuration
type DnsSource interface {
	Name() string
	Servers() ([]facts.DnsEntry, error)
}

// Sources bundles the per-category sources selected for this host at
// startup. A nil field means the probe found no usable facility for that
// category; collecting it fails with a dependency-missing error.
type Sources struct {
	Routes     RouteSource
	Interfaces InterfaceSource
	Gateways   GatewaySource
	Arp        ArpSource
	Dns        DnsSource
}

// Missing returns the categories that have no usable source
func (s Sources) Missing() []facts.Category {
	var missing []facts.Category
	if s.Routes == nil {
		missing = append(missing, facts.CategoryRoutes)
	}
	if s.Interfaces == nil {
		missing = append(missing, facts.CategoryInterfaces)
	}
	if s.Gateways == nil {
		missing = append(missing, facts.CategoryGateways)
	}
	if s.Arp == nil {
		missing = append(missing, facts.CategoryArp)
	}
	if s.Dns == nil {
		missing = append(missing, facts.CategoryDns)
	}
	return missing
}

// SourceName returns the name a category's records will be attributed to,
// "none" when the category has no source
func (s Sources) SourceName(category facts.Category) string {
	switch category {
	case facts.CategoryRoutes:
		return sourceName(s.Routes)
	case facts.CategoryInterfaces:
		return sourceName(s.Interfaces)
	case facts.CategoryGateways:
		return sourceName(s.Gateways)
	case facts.CategoryArp:
		return sourceName(s.Arp)
	case facts.CategoryDns:
		return sourceName(s.Dns)
	default:
		return "none"
	}
}

func sourceName(s interface{ Name() string }) string {
	if s == nil {
		return "none"
	}
	return s.Name()
}

// Capabilities describes which host facilities the startup probe found
// usable. It is produced once at startup and passed into source
// construction; collection logic holds no facility state of its own.
type Capabilities struct {
	GOOS       string
	Commands   map[string]bool // command name -> resolvable in PATH
	Netlink    bool            // netlink route queries answer (Linux)
	ProcArp    bool            // /proc/net/arp is readable (Linux)
	ResolvConf bool            // resolver configuration file is readable
	Registry   bool            // Tcpip interfaces registry key opens (Windows)
}

// HasCommand reports whether the probe resolved a command in PATH
func (c Capabilities) HasCommand(name string) bool {
	return c.Commands[name]
}
