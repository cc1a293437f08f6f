// Package render turns collected snapshots into terminal tables, JSON,
// or YAML
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/wesleywu/netfacts/internal/config"
	"github.com/wesleywu/netfacts/internal/facts"
)

// Snapshot renders every category in collection order
func Snapshot(w io.Writer, snap *facts.Snapshot, format string) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, snap)
	case config.FormatYAML:
		return renderYAML(w, snap)
	case config.FormatTable:
		return renderTables(w, snap, facts.Categories())
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// Category renders a single category. Structured formats carry just the
// records so pipelines get a plain list.
func Category(w io.Writer, snap *facts.Snapshot, category facts.Category, format string) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, categoryRecords(snap, category))
	case config.FormatYAML:
		return renderYAML(w, categoryRecords(snap, category))
	case config.FormatTable:
		return renderTables(w, snap, []facts.Category{category})
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func categoryRecords(snap *facts.Snapshot, category facts.Category) interface{} {
	switch category {
	case facts.CategoryRoutes:
		return snap.Routes
	case facts.CategoryInterfaces:
		return snap.Interfaces
	case facts.CategoryGateways:
		return snap.Gateways
	case facts.CategoryArp:
		return snap.Arp
	case facts.CategoryDns:
		return snap.Dns
	default:
		return nil
	}
}

func renderTables(w io.Writer, snap *facts.Snapshot, categories []facts.Category) error {
	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCategoryTable(w, snap, category)
	}
	return nil
}

func renderCategoryTable(w io.Writer, snap *facts.Snapshot, category facts.Category) {
	fmt.Fprintln(w, sectionTitle(category))

	if result := snap.Result(category); result != nil && result.Error != "" {
		fmt.Fprintln(w, result.Error)
		return
	}

	switch category {
	case facts.CategoryRoutes:
		renderRoutes(w, snap.Routes)
	case facts.CategoryInterfaces:
		renderInterfaces(w, snap.Interfaces)
	case facts.CategoryGateways:
		renderGateways(w, snap.Gateways)
	case facts.CategoryArp:
		renderArp(w, snap.Arp)
	case facts.CategoryDns:
		renderDns(w, snap.Dns)
	}
}

func sectionTitle(category facts.Category) string {
	switch category {
	case facts.CategoryRoutes:
		return "ROUTING TABLE"
	case facts.CategoryInterfaces:
		return "NETWORK INTERFACES"
	case facts.CategoryGateways:
		return "DEFAULT GATEWAYS"
	case facts.CategoryArp:
		return "ARP TABLE"
	case facts.CategoryDns:
		return "DNS SERVERS"
	default:
		return strings.ToUpper(string(category))
	}
}

func renderRoutes(w io.Writer, routes []facts.RouteEntry) {
	if len(routes) == 0 {
		fmt.Fprintln(w, "No routes found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DESTINATION\tGATEWAY\tNETMASK\tINTERFACE\tFLAGS\tMETRIC")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(r.Destination), orDash(r.Gateway), orDash(r.Netmask),
			orDash(r.Interface), orDash(r.Flags), orDash(r.Metric))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d routes\n", len(routes))
}

func renderInterfaces(w io.Writer, infos []facts.InterfaceInfo) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No interfaces found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INTERFACE\tIP ADDRESS\tNETMASK\tMAC ADDRESS\tBROADCAST")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			orDash(info.Name), orDash(info.IPAddress), orDash(info.Netmask),
			orDash(info.MAC), orDash(info.Broadcast))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d interfaces\n", len(infos))
}

func renderGateways(w io.Writer, gateways []facts.GatewayEntry) {
	if len(gateways) == 0 {
		fmt.Fprintln(w, "No default gateways found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tGATEWAY IP\tINTERFACE")
	for _, gw := range gateways {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			familyLabel(gw.Family), orDash(gw.Gateway), orDash(gw.Interface))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d gateways\n", len(gateways))
}

func renderArp(w io.Writer, entries []facts.ArpEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No ARP entries found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IP ADDRESS\tMAC ADDRESS\tTYPE\tINTERFACE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			orDash(e.IPAddress), orDash(e.HardwareAddr), orDash(e.HardwareType),
			orDash(e.Interface))
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d entries\n", len(entries))
}

// DNS entries are verbatim resolver lines; a single column needs no
// tab alignment
func renderDns(w io.Writer, entries []facts.DnsEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No nameservers found")
		return
	}

	for _, e := range entries {
		fmt.Fprintln(w, e.Line)
	}
	fmt.Fprintf(w, "\nTotal: %d nameservers\n", len(entries))
}

func familyLabel(family string) string {
	switch family {
	case facts.FamilyIPv4:
		return "IPv4"
	case facts.FamilyIPv6:
		return "IPv6"
	default:
		return strings.ToUpper(family)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
