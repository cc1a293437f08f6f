package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/wesleywu/netfacts/internal/facts"
)

const procArpPath = "/proc/net/arp"

// arpCommandSource reads the ARP cache by running the arp utility with
// platform-specific arguments and parser
type arpCommandSource struct {
	args  []string
	parse func(string) ([]facts.ArpEntry, error)
}

func (s *arpCommandSource) Name() string {
	return "arp"
}

func (s *arpCommandSource) Entries() ([]facts.ArpEntry, error) {
	output, err := runCommand(facts.CategoryArp, "arp", s.args...)
	if err != nil {
		return nil, err
	}

	entries, err := s.parse(output)
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryArp, err)
	}
	return entries, nil
}

// procArpSource reads the ARP cache from the kernel's proc table, which
// needs no external utility
type procArpSource struct {
	path string
}

func newProcArpSource() *procArpSource {
	return &procArpSource{path: procArpPath}
}

func (s *procArpSource) Name() string {
	return "proc"
}

func (s *procArpSource) Entries() ([]facts.ArpEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, classifyFileError(facts.CategoryArp, s.path, err)
	}

	entries, err := parseProcArp(string(data))
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryArp, err)
	}
	return entries, nil
}

// parseArpBSD parses arp -an output on BSD systems, one entry per line:
//
//	? (192.168.32.1) at a4:2b:b0:d2:8c:10 on en0 ifscope [ethernet]
//	? (192.168.32.117) at (incomplete) on en0 ifscope [ethernet]
//
// Incomplete entries keep an empty hardware address.
func parseArpBSD(output string) ([]facts.ArpEntry, error) {
	var entries []facts.ArpEntry

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "at" ||
			!strings.HasPrefix(fields[1], "(") || !strings.HasSuffix(fields[1], ")") {
			return nil, fmt.Errorf("unrecognized arp line %q", line)
		}

		entry := facts.ArpEntry{
			IPAddress: strings.Trim(fields[1], "()"),
		}
		if fields[3] != "(incomplete)" {
			entry.HardwareAddr = fields[3]
		}

		for i := 4; i < len(fields)-1; i++ {
			if fields[i] == "on" {
				entry.Interface = fields[i+1]
				break
			}
		}

		if last := fields[len(fields)-1]; strings.HasPrefix(last, "[") && strings.HasSuffix(last, "]") {
			entry.HardwareType = strings.Trim(last, "[]")
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// parseArpLinux parses net-tools arp -n output:
//
//	Address        HWtype  HWaddress           Flags Mask   Iface
//	192.168.1.1    ether   aa:bb:cc:dd:ee:ff   C            eth0
//	192.168.1.50           (incomplete)                     eth0
//
// An empty cache produces no output at all, which is an empty success.
func parseArpLinux(output string) ([]facts.ArpEntry, error) {
	if strings.TrimSpace(output) == "" {
		return nil, nil
	}

	lines := strings.Split(output, "\n")
	if !strings.Contains(lines[0], "Address") || !strings.Contains(lines[0], "HWtype") {
		return nil, fmt.Errorf("no arp table header found")
	}

	var entries []facts.ArpEntry
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) >= 5:
			entries = append(entries, facts.ArpEntry{
				IPAddress:    fields[0],
				HardwareType: fields[1],
				HardwareAddr: fields[2],
				Interface:    fields[len(fields)-1],
			})
		case len(fields) == 3 && fields[1] == "(incomplete)":
			entries = append(entries, facts.ArpEntry{
				IPAddress: fields[0],
				Interface: fields[2],
			})
		default:
			return nil, fmt.Errorf("unrecognized arp line %q", line)
		}
	}

	return entries, nil
}

// parseProcArp parses the kernel's /proc/net/arp table:
//
//	IP address  HW type  Flags  HW address         Mask  Device
//	192.168.1.1 0x1      0x2    aa:bb:cc:dd:ee:ff  *     eth0
//
// Flags 0x0 marks an incomplete entry. HW type 0x1 is reported with the
// arp utility's vocabulary, "ether".
func parseProcArp(output string) ([]facts.ArpEntry, error) {
	lines := strings.Split(output, "\n")
	if len(lines) == 0 || !strings.Contains(lines[0], "IP address") || !strings.Contains(lines[0], "HW address") {
		return nil, fmt.Errorf("no arp table header found")
	}

	var entries []facts.ArpEntry
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("unrecognized arp line %q", line)
		}

		entry := facts.ArpEntry{
			IPAddress:    fields[0],
			HardwareType: fields[1],
			Interface:    fields[5],
		}
		if entry.HardwareType == "0x1" {
			entry.HardwareType = "ether"
		}
		if fields[2] != "0x0" {
			entry.HardwareAddr = fields[3]
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// parseArpWindows parses arp -a output, which groups entries under
// per-interface sections:
//
//	Interface: 192.168.1.10 --- 0xc
//	  Internet Address      Physical Address      Type
//	  192.168.1.1           aa-bb-cc-dd-ee-ff     dynamic
//
// The section's interface address becomes each entry's interface, kept
// verbatim the way Windows identifies interfaces by address. A fully
// empty cache prints a bare No ARP Entries Found. notice with no
// sections at all, which is an empty success.
func parseArpWindows(output string) ([]facts.ArpEntry, error) {
	var entries []facts.ArpEntry
	var iface string
	sections := 0
	emptyNotice := false

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "Interface:") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("unrecognized interface section %q", line)
			}
			iface = fields[1]
			sections++
			continue
		}

		if strings.Contains(line, "Internet Address") {
			continue
		}
		if strings.HasPrefix(line, "No ARP Entries") {
			emptyNotice = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 || sections == 0 {
			return nil, fmt.Errorf("unrecognized arp line %q", line)
		}

		entries = append(entries, facts.ArpEntry{
			IPAddress:    fields[0],
			HardwareType: fields[2],
			HardwareAddr: fields[1],
			Interface:    iface,
		})
	}

	if sections == 0 && len(entries) == 0 && !emptyNotice {
		return nil, fmt.Errorf("no interface sections found")
	}

	return entries, nil
}
