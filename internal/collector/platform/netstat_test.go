package platform

import (
	"testing"

	"github.com/wesleywu/netfacts/internal/facts"
)

// Test netstat parsing against the BSD column layout, which has no
// netmask column and abbreviates destinations
func TestParseNetstat_BSD(t *testing.T) {
	netstatOutput := `Routing tables

Internet:
Destination        Gateway            Flags               Netif Expire
default            192.168.32.1       UGScIg                en0
203.57.66          192.168.32.1       UGSc                  en0
10.0               192.168.32.1       UGSc                  en0
192.168.1.100      192.168.32.1       UGHS                  en0
224.0.0/4          link#15            UmCS                  en0

Internet6:
Destination        Gateway            Flags               Netif Expire
default            fe80::%utun0       UGcIg               utun0
`

	routes, err := parseNetstat(netstatOutput)
	if err != nil {
		t.Fatalf("Failed to parse netstat output: %v", err)
	}

	// The Internet6 section must not be read
	if len(routes) != 5 {
		t.Fatalf("Expected 5 routes from the Internet section, got %d", len(routes))
	}

	// The netmask column does not exist on BSD and is derived from the
	// destination notation
	expectedNetmasks := map[string]string{
		"default":       "0.0.0.0",         // default route
		"203.57.66":     "255.255.255.0",   // abbreviated 3-octet
		"10.0":          "255.255.0.0",     // abbreviated 2-octet
		"192.168.1.100": "255.255.255.255", // host route
		"224.0.0/4":     "240.0.0.0",       // CIDR
	}

	foundNetmasks := make(map[string]string)
	for _, route := range routes {
		foundNetmasks[route.Destination] = route.Netmask
	}

	for dest, expected := range expectedNetmasks {
		got, found := foundNetmasks[dest]
		if !found {
			t.Errorf("❌ Expected route not found: %s", dest)
			continue
		}
		if got != expected {
			t.Errorf("❌ Route %s has wrong netmask: expected %s, got %s", dest, expected, got)
			continue
		}
		t.Logf("✅ Found expected route: %s netmask %s", dest, got)
	}

	first := routes[0]
	if first.Destination != "default" || first.Gateway != "192.168.32.1" ||
		first.Flags != "UGScIg" || first.Interface != "en0" {
		t.Errorf("Unexpected first route: %+v", first)
	}
}

// Test netstat parsing against the Linux column layout, which carries a
// Genmask column
func TestParseNetstat_Linux(t *testing.T) {
	netstatOutput := `Kernel IP routing table
Destination     Gateway         Genmask         Flags   MSS Window  irtt Iface
0.0.0.0         192.168.1.1     0.0.0.0         UG        0 0          0 eth0
192.168.1.0     0.0.0.0         255.255.255.0   U         0 0          0 eth0
172.17.0.0      0.0.0.0         255.255.0.0     U         0 0          0 docker0
`

	routes, err := parseNetstat(netstatOutput)
	if err != nil {
		t.Fatalf("Failed to parse netstat output: %v", err)
	}

	expected := []facts.RouteEntry{
		{Destination: "0.0.0.0", Gateway: "192.168.1.1", Netmask: "0.0.0.0", Flags: "UG", Interface: "eth0"},
		{Destination: "192.168.1.0", Gateway: "0.0.0.0", Netmask: "255.255.255.0", Flags: "U", Interface: "eth0"},
		{Destination: "172.17.0.0", Gateway: "0.0.0.0", Netmask: "255.255.0.0", Flags: "U", Interface: "docker0"},
	}

	if len(routes) != len(expected) {
		t.Fatalf("Expected %d routes, got %d", len(expected), len(routes))
	}

	for i := range expected {
		if routes[i] != expected[i] {
			t.Errorf("Route %d: expected %+v, got %+v", i, expected[i], routes[i])
		}
	}
}

// Test that a Metric column is carried through when the header declares
// one (route -n layout)
func TestParseNetstat_MetricColumn(t *testing.T) {
	output := `Kernel IP routing table
Destination     Gateway         Genmask         Flags Metric Ref    Use Iface
0.0.0.0         10.0.2.2        0.0.0.0         UG    100    0        0 enp0s3
10.0.2.0        0.0.0.0         255.255.255.0   U     100    0        0 enp0s3
`

	routes, err := parseNetstat(output)
	if err != nil {
		t.Fatalf("Failed to parse route -n output: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(routes))
	}

	for i, route := range routes {
		if route.Metric != "100" {
			t.Errorf("Route %d: expected metric 100, got %q", i, route.Metric)
		}
	}
}

func TestParseNetstat_EmptyTable(t *testing.T) {
	output := `Routing tables

Internet:
Destination        Gateway            Flags               Netif Expire
`

	routes, err := parseNetstat(output)
	if err != nil {
		t.Fatalf("A header with no data rows is an empty table, got error: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("Expected no routes, got %d", len(routes))
	}
}

func TestParseNetstat_MalformedOutput(t *testing.T) {
	testCases := []struct {
		name   string
		output string
	}{
		{
			name:   "empty output",
			output: "",
		},
		{
			name:   "no table header",
			output: "Routing tables\n\nno columns here\n",
		},
		{
			name:   "truncated data row",
			output: "Destination        Gateway            Flags               Netif\ndefault            192.168.32.1\n",
		},
		{
			name:   "header without gateway column",
			output: "Destination        Flags\ndefault            UG\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseNetstat(tc.output); err == nil {
				t.Error("Expected a parse error, got nil")
			}
		})
	}
}
