package platform

import (
	"fmt"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

// Route type prefixes ip route prints before the destination
var ipRouteTypes = map[string]bool{
	"unicast":     true,
	"local":       true,
	"broadcast":   true,
	"multicast":   true,
	"unreachable": true,
	"prohibit":    true,
	"blackhole":   true,
	"throw":       true,
	"anycast":     true,
}

// ipRouteSource reads routes by running ip route show
type ipRouteSource struct{}

func (s *ipRouteSource) Name() string {
	return "ip route"
}

func (s *ipRouteSource) Routes() ([]facts.RouteEntry, error) {
	output, err := runCommand(facts.CategoryRoutes, "ip", "route", "show")
	if err != nil {
		return nil, err
	}

	routes, err := parseIPRoute(output)
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryRoutes, err)
	}
	return routes, nil
}

// parseIPRoute parses the output of ip route show: one route per line as
// "[type] <destination> [via <gateway>] [dev <iface>] [metric <n>] ...".
// Nexthop continuation lines of multipath routes are indented and
// skipped; the route itself is still reported from its head line.
func parseIPRoute(output string) ([]facts.RouteEntry, error) {
	var routes []facts.RouteEntry

	for _, raw := range strings.Split(output, "\n") {
		if raw == "" {
			continue
		}
		if raw[0] == ' ' || raw[0] == '\t' {
			continue
		}

		fields := strings.Fields(raw)
		if ipRouteTypes[fields[0]] && len(fields) > 1 {
			fields = fields[1:]
		}

		dest := fields[0]
		if dest != "default" {
			if _, err := parseDestination(dest); err != nil {
				return nil, fmt.Errorf("unrecognized route line %q", raw)
			}
		}

		entry := facts.RouteEntry{
			Destination: dest,
			Netmask:     deriveNetmask(dest),
		}

		for i := 1; i < len(fields)-1; i++ {
			switch fields[i] {
			case "via":
				entry.Gateway = fields[i+1]
			case "dev":
				entry.Interface = fields[i+1]
			case "metric":
				entry.Metric = fields[i+1]
			}
		}

		routes = append(routes, entry)
	}

	return routes, nil
}
