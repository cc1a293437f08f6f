package platform

import (
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

// ipconfigDnsSource reads resolver addresses from ipconfig /all when the
// registry source is unavailable
type ipconfigDnsSource struct{}

func (s *ipconfigDnsSource) Name() string {
	return "ipconfig"
}

func (s *ipconfigDnsSource) Servers() ([]facts.DnsEntry, error) {
	output, err := runCommand(facts.CategoryDns, "ipconfig", "/all")
	if err != nil {
		return nil, err
	}

	return parseIpconfigDns(output), nil
}

// parseIpconfigDns extracts DNS server addresses from ipconfig /all
// output. The first server follows the "DNS Servers" key; additional
// servers continue on indented lines without a key of their own:
//
//	DNS Servers . . . . . . . . . . . : 192.168.1.1
//	                                    8.8.8.8
func parseIpconfigDns(output string) []facts.DnsEntry {
	var entries []facts.DnsEntry
	lines := strings.Split(output, "\n")

	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], "DNS Servers") {
			continue
		}

		parts := strings.SplitN(lines[i], ":", 2)
		if len(parts) == 2 {
			if server := strings.TrimSpace(parts[1]); server != "" {
				entries = append(entries, facts.DnsEntry{Line: server})
			}
		}

		for i+1 < len(lines) {
			next := lines[i+1]
			// A new key ends the server list; keys carry a " : "
			// separator that addresses never do
			if !strings.HasPrefix(next, " ") || strings.Contains(next, " : ") {
				break
			}
			server := strings.TrimSpace(next)
			if server == "" {
				break
			}
			entries = append(entries, facts.DnsEntry{Line: server})
			i++
		}
	}

	return entries
}
