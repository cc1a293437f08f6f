//go:build linux

package platform

import (
	"fmt"
	"net"
	"strconv"

	"github.com/jackpal/gateway"
	"github.com/vishvananda/netlink"

	"github.com/wesleywu/netfacts/internal/facts"
)

// netlinkRouteSource reads the main IPv4 routing table over rtnetlink,
// avoiding a dependency on the net-tools or iproute2 packages
type netlinkRouteSource struct{}

func (s *netlinkRouteSource) Name() string {
	return "netlink"
}

func (s *netlinkRouteSource) Routes() ([]facts.RouteEntry, error) {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, classifyNetlinkError(facts.CategoryRoutes, "route dump", err)
	}

	names := linkNames()
	entries := make([]facts.RouteEntry, 0, len(routes))
	for _, route := range routes {
		dest, mask := routeDestination(route.Dst)
		entry := facts.RouteEntry{
			Destination: dest,
			Gateway:     "0.0.0.0",
			Netmask:     mask,
			Interface:   names[route.LinkIndex],
			Flags:       routeFlags(route),
		}
		if route.Gw != nil {
			entry.Gateway = route.Gw.String()
		}
		if route.Priority > 0 {
			entry.Metric = strconv.Itoa(route.Priority)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// routeDestination renders a netlink destination in the same form the
// netstat table uses: default routes carry no RTA_DST attribute
func routeDestination(dst *net.IPNet) (destination, netmask string) {
	if dst == nil {
		return "default", "0.0.0.0"
	}
	if ones, _ := dst.Mask.Size(); ones == 0 {
		return "default", "0.0.0.0"
	}
	return dst.IP.String(), net.IP(dst.Mask).String()
}

func routeFlags(route netlink.Route) string {
	flags := "U"
	if route.Gw != nil {
		flags += "G"
	}
	if route.Dst != nil {
		if ones, bits := route.Dst.Mask.Size(); ones == bits {
			flags += "H"
		}
	}
	return flags
}

// netlinkNeighSource reads the IPv4 neighbour table over rtnetlink
type netlinkNeighSource struct{}

func (s *netlinkNeighSource) Name() string {
	return "netlink"
}

func (s *netlinkNeighSource) Entries() ([]facts.ArpEntry, error) {
	neighbours, err := netlink.NeighList(0, netlink.FAMILY_V4)
	if err != nil {
		return nil, classifyNetlinkError(facts.CategoryArp, "neighbour dump", err)
	}

	names := linkNames()
	var entries []facts.ArpEntry
	for _, neigh := range neighbours {
		// NOARP entries are pseudo-neighbours on point-to-point links
		if neigh.State&netlink.NUD_NOARP != 0 || neigh.State == netlink.NUD_NONE {
			continue
		}
		if neigh.IP == nil {
			continue
		}

		entry := facts.ArpEntry{
			IPAddress: neigh.IP.String(),
			Interface: names[neigh.LinkIndex],
		}
		if len(neigh.HardwareAddr) > 0 {
			entry.HardwareType = "ether"
			entry.HardwareAddr = neigh.HardwareAddr.String()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// linuxGatewaySource augments the discovered IPv4 default gateway with
// IPv6 defaults from the main routing table
type linuxGatewaySource struct{}

func (s *linuxGatewaySource) Name() string {
	return "gateway"
}

func (s *linuxGatewaySource) Gateways() ([]facts.GatewayEntry, error) {
	gw, err := gateway.DiscoverGateway()
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryGateways,
			fmt.Errorf("failed to discover default gateway: %w", err))
	}

	entries := []facts.GatewayEntry{{
		Family:    facts.FamilyIPv4,
		Gateway:   gw.String(),
		Interface: interfaceForIP(gw),
	}}

	// Hosts without IPv6 connectivity simply contribute no extra rows
	entries = append(entries, defaultV6Gateways()...)

	return entries, nil
}

func defaultV6Gateways() []facts.GatewayEntry {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V6)
	if err != nil {
		return nil
	}

	names := linkNames()
	var entries []facts.GatewayEntry
	for _, route := range routes {
		if route.Dst != nil {
			if ones, _ := route.Dst.Mask.Size(); ones != 0 {
				continue
			}
		}
		if route.Gw == nil {
			continue
		}
		entries = append(entries, facts.GatewayEntry{
			Family:    facts.FamilyIPv6,
			Gateway:   route.Gw.String(),
			Interface: names[route.LinkIndex],
		})
	}

	return entries
}

// linkNames maps interface indexes to names for route and neighbour rows.
// A failed dump leaves rows without interface names rather than failing
// the whole category.
func linkNames() map[int]string {
	names := make(map[int]string)
	links, err := netlink.LinkList()
	if err != nil {
		return names
	}
	for _, link := range links {
		attrs := link.Attrs()
		names[attrs.Index] = attrs.Name
	}
	return names
}

func classifyNetlinkError(category facts.Category, op string, err error) error {
	if isPermissionError(err) {
		return facts.PermissionDenied(category, fmt.Errorf("netlink %s: %w", op, err))
	}
	return facts.CollectionFailed(category, fmt.Errorf("netlink %s: %w", op, err))
}
