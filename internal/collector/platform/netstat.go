package platform

import (
	"fmt"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

// routeColumns maps the column names a routing table header declares to
// their field positions. -1 marks a column the header does not carry.
type routeColumns struct {
	destination int
	gateway     int
	netmask     int
	flags       int
	metric      int
	iface       int
}

// parseNetstat parses the tabular routing output of netstat -rn and
// route -n. The column layout differs per platform (BSD has no Genmask
// and carries Netif, Linux carries Genmask and Iface, route -n adds
// Metric), so positions are taken from the header line rather than
// hard-coded. Only the first table section is read, which on BSD is the
// IPv4 "Internet:" section.
func parseNetstat(output string) ([]facts.RouteEntry, error) {
	lines := strings.Split(output, "\n")

	// Find the table header
	start := -1
	var cols routeColumns
	for i, line := range lines {
		if strings.Contains(line, "Destination") && strings.Contains(line, "Gateway") {
			cols = headerColumns(strings.Fields(line))
			start = i + 1
			break
		}
	}

	if start == -1 {
		return nil, fmt.Errorf("no routing table header found")
	}
	if cols.destination == -1 || cols.gateway == -1 {
		return nil, fmt.Errorf("routing table header lacks destination/gateway columns")
	}

	// A row must reach the last mandatory column; trailing columns such
	// as Expire or Use are frequently blank and stay optional
	required := cols.destination
	for _, idx := range []int{cols.gateway, cols.netmask, cols.flags, cols.iface} {
		if idx > required {
			required = idx
		}
	}

	var routes []facts.RouteEntry
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		// A blank line or the next section marker ("Internet6:") ends
		// the table
		if line == "" || strings.HasSuffix(line, ":") {
			break
		}

		fields := strings.Fields(line)
		if len(fields) <= required {
			return nil, fmt.Errorf("truncated route row %q: expected at least %d columns, got %d",
				line, required+1, len(fields))
		}

		entry := facts.RouteEntry{
			Destination: fields[cols.destination],
			Gateway:     fields[cols.gateway],
		}

		if cols.netmask >= 0 {
			entry.Netmask = fields[cols.netmask]
		} else {
			entry.Netmask = deriveNetmask(entry.Destination)
		}
		if cols.flags >= 0 {
			entry.Flags = fields[cols.flags]
		}
		if cols.iface >= 0 {
			entry.Interface = fields[cols.iface]
		}
		if cols.metric >= 0 && cols.metric < len(fields) {
			entry.Metric = fields[cols.metric]
		}

		routes = append(routes, entry)
	}

	return routes, nil
}

// netstatRouteSource reads routes by running netstat with the arguments
// the platform expects
type netstatRouteSource struct {
	args []string
}

func (s *netstatRouteSource) Name() string {
	return "netstat"
}

func (s *netstatRouteSource) Routes() ([]facts.RouteEntry, error) {
	output, err := runCommand(facts.CategoryRoutes, "netstat", s.args...)
	if err != nil {
		return nil, err
	}

	routes, err := parseNetstat(output)
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryRoutes, err)
	}
	return routes, nil
}

// headerColumns resolves the per-platform column vocabulary
func headerColumns(fields []string) routeColumns {
	cols := routeColumns{
		destination: -1,
		gateway:     -1,
		netmask:     -1,
		flags:       -1,
		metric:      -1,
		iface:       -1,
	}

	for i, name := range fields {
		switch name {
		case "Destination":
			cols.destination = i
		case "Gateway":
			cols.gateway = i
		case "Genmask", "Netmask":
			cols.netmask = i
		case "Flags":
			cols.flags = i
		case "Metric":
			cols.metric = i
		case "Netif", "Iface", "If":
			cols.iface = i
		}
	}

	return cols
}
