package facts

// Category identifies one of the collected network-fact categories
type Category string

// Collection categories, in the fixed order they are collected and displayed
const (
	CategoryRoutes     Category = "routes"
	CategoryInterfaces Category = "interfaces"
	CategoryGateways   Category = "gateways"
	CategoryArp        Category = "arp"
	CategoryDns        Category = "dns"
)

// Categories returns all collection categories in run order
func Categories() []Category {
	return []Category{
		CategoryRoutes,
		CategoryInterfaces,
		CategoryGateways,
		CategoryArp,
		CategoryDns,
	}
}

// Address families reported for default gateways
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// RouteEntry represents one row of the host routing table.
// All fields are kept as the platform reported them; Gateway may be a
// non-address token such as "link#4" or "On-link". Flags is populated on
// Unix-style tables, Metric on tables that carry a numeric priority.
type RouteEntry struct {
	Destination string `json:"destination" yaml:"destination"`
	Gateway     string `json:"gateway" yaml:"gateway"`
	Netmask     string `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	Interface   string `json:"interface,omitempty" yaml:"interface,omitempty"`
	Flags       string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Metric      string `json:"metric,omitempty" yaml:"metric,omitempty"`
}

// InterfaceInfo represents one network interface and its primary IPv4
// configuration. Broadcast is empty for interfaces without a broadcast
// address (loopback, point-to-point).
type InterfaceInfo struct {
	Name      string `json:"name" yaml:"name"`
	IPAddress string `json:"ip_address,omitempty" yaml:"ip_address,omitempty"`
	Netmask   string `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	MAC       string `json:"mac,omitempty" yaml:"mac,omitempty"`
	Broadcast string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
}

// GatewayEntry represents one default gateway
type GatewayEntry struct {
	Family    string `json:"family" yaml:"family"`
	Gateway   string `json:"gateway" yaml:"gateway"`
	Interface string `json:"interface,omitempty" yaml:"interface,omitempty"`
}

// ArpEntry represents one ARP cache entry. HardwareAddr is empty for
// incomplete entries; HardwareType keeps the platform's own vocabulary
// (ether, dynamic, static).
type ArpEntry struct {
	IPAddress    string `json:"ip_address" yaml:"ip_address"`
	HardwareType string `json:"hardware_type,omitempty" yaml:"hardware_type,omitempty"`
	HardwareAddr string `json:"hardware_addr,omitempty" yaml:"hardware_addr,omitempty"`
	Interface    string `json:"interface,omitempty" yaml:"interface,omitempty"`
}

// DnsEntry represents one resolver configuration directive, verbatim
type DnsEntry struct {
	Line string `json:"line" yaml:"line"`
}
