package platform

import (
	"fmt"
	"net"

	"github.com/wesleywu/netfacts/internal/facts"
)

// netInterfaceSource enumerates interfaces through the OS interface
// facility rather than command output
type netInterfaceSource struct{}

func (s *netInterfaceSource) Name() string {
	return "netif"
}

func (s *netInterfaceSource) Interfaces() ([]facts.InterfaceInfo, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, facts.CollectionFailed(facts.CategoryInterfaces,
			fmt.Errorf("failed to get network interfaces: %w", err))
	}

	infos := make([]facts.InterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		infos = append(infos, interfaceInfo(iface, addrs))
	}

	return infos, nil
}

// interfaceInfo builds the record for one interface. The interface's
// first IPv4 address is reported; an interface without one still appears
// with its name and MAC. Broadcast stays empty for interfaces without a
// broadcast address (loopback, point-to-point).
func interfaceInfo(iface net.Interface, addrs []net.Addr) facts.InterfaceInfo {
	info := facts.InterfaceInfo{
		Name: iface.Name,
		MAC:  iface.HardwareAddr.String(),
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip4 := ipNet.IP.To4()
		if ip4 == nil {
			continue
		}

		info.IPAddress = ip4.String()
		info.Netmask = net.IP(ipNet.Mask).String()
		if iface.Flags&net.FlagBroadcast != 0 {
			info.Broadcast = broadcastAddr(ip4, ipNet.Mask).String()
		}
		break
	}

	return info
}

// broadcastAddr computes the directed broadcast address of an IPv4
// network
func broadcastAddr(ip net.IP, mask net.IPMask) net.IP {
	if len(mask) == net.IPv6len {
		mask = mask[net.IPv6len-net.IPv4len:]
	}

	bcast := make(net.IP, net.IPv4len)
	for i := range bcast {
		bcast[i] = ip[i] | ^mask[i]
	}
	return bcast
}
