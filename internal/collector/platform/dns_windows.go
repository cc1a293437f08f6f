//go:build windows

package platform

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/wesleywu/netfacts/internal/facts"
)

const tcpipInterfacesKey = `SYSTEM\CurrentControlSet\Services\Tcpip\Parameters\Interfaces`

// registryDnsSource reads per-interface resolver addresses from the
// TCP/IP service parameters, the same data ipconfig /all displays
type registryDnsSource struct{}

func (s *registryDnsSource) Name() string {
	return "registry"
}

func (s *registryDnsSource) Servers() ([]facts.DnsEntry, error) {
	root, err := registry.OpenKey(registry.LOCAL_MACHINE, tcpipInterfacesKey, registry.READ)
	if err != nil {
		return nil, classifyRegistryError(err)
	}
	defer root.Close()

	names, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryDns,
			fmt.Errorf("failed to enumerate interface keys: %w", err))
	}

	seen := make(map[string]bool)
	var entries []facts.DnsEntry
	for _, name := range names {
		key, err := registry.OpenKey(root, name, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		servers := interfaceNameServers(key)
		key.Close()

		for _, server := range servers {
			if seen[server] {
				continue
			}
			seen[server] = true
			entries = append(entries, facts.DnsEntry{Line: server})
		}
	}

	return entries, nil
}

// interfaceNameServers prefers statically configured servers and falls
// back to the DHCP-assigned list
func interfaceNameServers(key registry.Key) []string {
	for _, value := range []string{"NameServer", "DhcpNameServer"} {
		raw, _, err := key.GetStringValue(value)
		if err != nil {
			continue
		}
		if servers := splitNameServers(raw); len(servers) > 0 {
			return servers
		}
	}
	return nil
}

// splitNameServers splits a registry server list, which is comma or space
// separated depending on which component wrote it
func splitNameServers(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func classifyRegistryError(err error) error {
	wrapped := fmt.Errorf("registry key %s: %w", tcpipInterfacesKey, err)
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return facts.DependencyMissing(facts.CategoryDns, wrapped)
	case isPermissionError(err):
		return facts.PermissionDenied(facts.CategoryDns, wrapped)
	default:
		return facts.CollectionFailed(facts.CategoryDns, wrapped)
	}
}
