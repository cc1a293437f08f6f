package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

// routePrintSource reads routes by running route print
type routePrintSource struct{}

func (s *routePrintSource) Name() string {
	return "route print"
}

func (s *routePrintSource) Routes() ([]facts.RouteEntry, error) {
	output, err := runCommand(facts.CategoryRoutes, "route", "print")
	if err != nil {
		return nil, err
	}

	routes, err := parseRoutePrint(output)
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryRoutes, err)
	}
	return routes, nil
}

// parseRoutePrint parses the "IPv4 Route Table" section of Windows
// route print output. Rows carry five columns (Network Destination,
// Netmask, Gateway, Interface, Metric); Gateway is "On-link" for
// directly connected networks and Interface is the interface's own IPv4
// address, both kept verbatim. The IPv6 section and the persistent
// routes section are not read.
func parseRoutePrint(output string) ([]facts.RouteEntry, error) {
	lines := strings.Split(output, "\n")

	// Find the IPv4 section, then its column header inside it
	section := -1
	for i, line := range lines {
		if strings.Contains(line, "IPv4 Route Table") {
			section = i + 1
			break
		}
	}
	if section == -1 {
		return nil, fmt.Errorf("no IPv4 route table section found")
	}

	start := -1
	for i := section; i < len(lines); i++ {
		// Never read into the IPv6 section, whose header also names a
		// Network Destination column
		if strings.Contains(lines[i], "IPv6 Route Table") {
			break
		}
		if strings.TrimSpace(lines[i]) == "None" {
			return nil, nil
		}
		if strings.Contains(lines[i], "Network Destination") && strings.Contains(lines[i], "Netmask") {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("no route table header found in IPv4 section")
	}

	var routes []facts.RouteEntry
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		// The active-routes block ends at the ===== separator or at the
		// default-gateway summary
		if line == "" || strings.HasPrefix(line, "===") || strings.HasPrefix(line, "Default Gateway") {
			break
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("truncated route row %q: expected 5 columns, got %d", line, len(fields))
		}
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("route row %q has non-numeric metric %q", line, fields[4])
		}

		routes = append(routes, facts.RouteEntry{
			Destination: fields[0],
			Netmask:     fields[1],
			Gateway:     fields[2],
			Interface:   fields[3],
			Metric:      fields[4],
		})
	}

	return routes, nil
}
