package platform

import (
	"fmt"
	"net"
	"strings"
)

// parseDestination parses the destination notations route tables use:
// "default", CIDR, bare addresses, and the abbreviated forms netstat
// prints ("10.0" for 10.0.0.0/16, "203.26.55" for 203.26.55.0/24,
// "1.0.1/24" for 1.0.1.0/24).
func parseDestination(dest string) (*net.IPNet, error) {
	if dest == "default" {
		_, network, _ := net.ParseCIDR("0.0.0.0/0")
		return network, nil
	}

	if strings.Contains(dest, "/") {
		parts := strings.Split(dest, "/")
		if len(parts) == 2 {
			dest = completeOctets(parts[0]) + "/" + parts[1]
		}

		_, network, err := net.ParseCIDR(dest)
		return network, err
	}

	// Complete addresses are host routes
	if ip := net.ParseIP(dest); ip != nil {
		if ip.To4() != nil {
			return &net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}, nil
		}
		return &net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil
	}

	// Abbreviated network without a mask: the omitted octets imply it
	switch strings.Count(dest, ".") {
	case 1: // "10.0" -> 10.0.0.0/16
		return &net.IPNet{IP: net.ParseIP(dest + ".0.0"), Mask: net.CIDRMask(16, 32)}, nil
	case 2: // "203.26.55" -> 203.26.55.0/24
		return &net.IPNet{IP: net.ParseIP(dest + ".0"), Mask: net.CIDRMask(24, 32)}, nil
	}

	return nil, fmt.Errorf("unsupported destination format: %s", dest)
}

// completeOctets pads an abbreviated IPv4 network to four octets
func completeOctets(ip string) string {
	switch strings.Count(ip, ".") {
	case 0:
		return ip + ".0.0.0"
	case 1:
		return ip + ".0.0"
	case 2:
		return ip + ".0"
	default:
		return ip
	}
}

// deriveNetmask returns the dotted netmask a destination implies, or ""
// when none can be derived (the display layer shows a placeholder)
func deriveNetmask(dest string) string {
	network, err := parseDestination(dest)
	if err != nil || network == nil {
		return ""
	}

	// IPv6 masks have no dotted form
	if len(network.Mask) != net.IPv4len {
		return ""
	}

	return net.IP(network.Mask).String()
}
