package platform

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"

	"github.com/wesleywu/netfacts/internal/facts"
)

// discoverGatewaySource finds the IPv4 default gateway through the
// platform's route discovery facility. The owning interface is resolved
// by matching the gateway address against interface subnets.
type discoverGatewaySource struct{}

func (s *discoverGatewaySource) Name() string {
	return "gateway"
}

func (s *discoverGatewaySource) Gateways() ([]facts.GatewayEntry, error) {
	gw, err := gateway.DiscoverGateway()
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryGateways,
			fmt.Errorf("failed to discover default gateway: %w", err))
	}

	return []facts.GatewayEntry{{
		Family:    facts.FamilyIPv4,
		Gateway:   gw.String(),
		Interface: interfaceForIP(gw),
	}}, nil
}

// interfaceForIP returns the name of the interface whose subnet contains
// ip, or "" when none matches
func interfaceForIP(ip net.IP) string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			if ipNet, ok := addr.(*net.IPNet); ok && ipNet.Contains(ip) {
				return iface.Name
			}
		}
	}

	return ""
}
