package platform

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

const resolvConfPath = "/etc/resolv.conf"

// resolvConfSource reads nameserver directives from the resolver
// configuration file, verbatim and in file order
type resolvConfSource struct {
	path string
}

func newResolvConfSource() *resolvConfSource {
	return &resolvConfSource{path: resolvConfPath}
}

func (s *resolvConfSource) Name() string {
	return "resolv.conf"
}

func (s *resolvConfSource) Servers() ([]facts.DnsEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, classifyFileError(facts.CategoryDns, s.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, facts.CollectionFailed(facts.CategoryDns, fmt.Errorf("failed to read %s: %w", s.path, err))
	}

	return parseResolvConf(lines), nil
}

// parseResolvConf extracts the nameserver directives from resolver
// configuration lines. Other directives (search, domain, options) and
// comments are not DNS server entries and are skipped.
func parseResolvConf(lines []string) []facts.DnsEntry {
	var entries []facts.DnsEntry

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			entries = append(entries, facts.DnsEntry{Line: line})
		}
	}

	return entries
}
