package platform

import (
	"testing"
)

func TestParseIpconfigDns(t *testing.T) {
	output := `Windows IP Configuration

   Host Name . . . . . . . . . . . . : desktop
   Primary Dns Suffix  . . . . . . . :

Ethernet adapter Ethernet:

   Connection-specific DNS Suffix  . : home
   DNS Servers . . . . . . . . . . . : 192.168.1.1
                                       8.8.8.8
                                       2001:4860:4860::8888
   NetBIOS over Tcpip. . . . . . . . : Enabled

Wireless LAN adapter Wi-Fi:

   DNS Servers . . . . . . . . . . . : 10.0.0.1
`

	entries := parseIpconfigDns(output)

	expected := []string{
		"192.168.1.1",
		"8.8.8.8",
		"2001:4860:4860::8888",
		"10.0.0.1",
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d servers, got %d", len(expected), len(entries))
	}

	for i := range expected {
		if entries[i].Line != expected[i] {
			t.Errorf("Server %d: expected %q, got %q", i, expected[i], entries[i].Line)
		}
	}
}

func TestParseIpconfigDns_NoServers(t *testing.T) {
	output := `Windows IP Configuration

   Host Name . . . . . . . . . . . . : desktop
   Node Type . . . . . . . . . . . . : Hybrid
`

	if entries := parseIpconfigDns(output); len(entries) != 0 {
		t.Errorf("Expected no servers, got %d", len(entries))
	}
}

// The key may carry an empty value when an adapter has no resolvers
func TestParseIpconfigDns_EmptyValue(t *testing.T) {
	output := "   DNS Servers . . . . . . . . . . . : \n   NetBIOS over Tcpip. . . . . . . . : Enabled\n"

	if entries := parseIpconfigDns(output); len(entries) != 0 {
		t.Errorf("Expected no servers, got %d", len(entries))
	}
}
