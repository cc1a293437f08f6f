package collector

import (
	"errors"
	"testing"

	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
)

type fakeRouteSource struct {
	routes []facts.RouteEntry
	err    error
	calls  int
}

func (f *fakeRouteSource) Name() string { return "fake-routes" }
func (f *fakeRouteSource) Routes() ([]facts.RouteEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.routes, nil
}

type fakeInterfaceSource struct {
	ifaces []facts.InterfaceInfo
	err    error
	calls  int
}

func (f *fakeInterfaceSource) Name() string { return "fake-interfaces" }
func (f *fakeInterfaceSource) Interfaces() ([]facts.InterfaceInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ifaces, nil
}

type fakeGatewaySource struct {
	gateways []facts.GatewayEntry
	err      error
	calls    int
}

func (f *fakeGatewaySource) Name() string { return "fake-gateways" }
func (f *fakeGatewaySource) Gateways() ([]facts.GatewayEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.gateways, nil
}

type fakeArpSource struct {
	entries []facts.ArpEntry
	err     error
	calls   int
}

func (f *fakeArpSource) Name() string { return "fake-arp" }
func (f *fakeArpSource) Entries() ([]facts.ArpEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

type fakeDnsSource struct {
	servers []facts.DnsEntry
	err     error
	calls   int
}

func (f *fakeDnsSource) Name() string { return "fake-dns" }
func (f *fakeDnsSource) Servers() ([]facts.DnsEntry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.servers, nil
}

func fakeSources() (Sources, *fakeRouteSource, *fakeArpSource) {
	routes := &fakeRouteSource{routes: []facts.RouteEntry{
		{Destination: "default", Gateway: "192.168.1.1", Interface: "en0", Flags: "UGSc"},
		{Destination: "192.168.1.0/24", Gateway: "link#4", Interface: "en0", Flags: "UCS"},
	}}
	arp := &fakeArpSource{entries: []facts.ArpEntry{
		{IPAddress: "192.168.1.1", HardwareType: "ether", HardwareAddr: "aa:bb:cc:dd:ee:ff", Interface: "en0"},
	}}
	sources := Sources{
		Routes: routes,
		Interfaces: &fakeInterfaceSource{ifaces: []facts.InterfaceInfo{
			{Name: "en0", IPAddress: "192.168.1.10", Netmask: "255.255.255.0", Broadcast: "192.168.1.255"},
		}},
		Gateways: &fakeGatewaySource{gateways: []facts.GatewayEntry{
			{Family: facts.FamilyIPv4, Gateway: "192.168.1.1", Interface: "en0"},
		}},
		Arp: arp,
		Dns: &fakeDnsSource{servers: []facts.DnsEntry{
			{Line: "nameserver 8.8.8.8"},
			{Line: "nameserver 1.1.1.1"},
		}},
	}
	return sources, routes, arp
}

func testLogger() *logger.Logger {
	return logger.New("error")
}

// Test that a full run visits all categories in the fixed order
func TestCollectAll_FixedOrder(t *testing.T) {
	sources, _, _ := fakeSources()
	c := New(sources, testLogger())

	snap := c.CollectAll()

	expected := facts.Categories()
	if len(snap.Results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(snap.Results))
	}
	for i, category := range expected {
		if snap.Results[i].Category != category {
			t.Errorf("Expected category %s at position %d, got %s",
				category, i, snap.Results[i].Category)
		}
	}

	if snap.RunID == "" {
		t.Errorf("Expected a run ID")
	}
	if snap.TotalRecords() != 7 {
		t.Errorf("Expected 7 records, got %d", snap.TotalRecords())
	}
}

// Test that one failing category never blocks the others
func TestCollectAll_FailureIsolation(t *testing.T) {
	sources, _, arp := fakeSources()
	arp.err = facts.DependencyMissing(facts.CategoryArp, errors.New("arp: executable file not found in $PATH"))
	c := New(sources, testLogger())

	snap := c.CollectAll()

	failed := snap.Failed()
	if len(failed) != 1 {
		t.Fatalf("Expected exactly 1 failed category, got %d", len(failed))
	}
	if failed[0].Category != facts.CategoryArp {
		t.Errorf("Expected %s to fail, got %s", facts.CategoryArp, failed[0].Category)
	}
	if !facts.IsDependencyMissing(failed[0].Err) {
		t.Errorf("Expected a dependency-missing error, got %v", failed[0].Err)
	}

	if len(snap.Arp) != 0 {
		t.Errorf("Expected no arp records, got %d", len(snap.Arp))
	}
	if len(snap.Routes) != 2 || len(snap.Interfaces) != 1 || len(snap.Gateways) != 1 || len(snap.Dns) != 2 {
		t.Errorf("Expected other categories unaffected, got routes=%d interfaces=%d gateways=%d dns=%d",
			len(snap.Routes), len(snap.Interfaces), len(snap.Gateways), len(snap.Dns))
	}
	if !snap.HasData() {
		t.Errorf("Expected run to still have data")
	}
}

// Test that a category without a source fails as dependency-missing
func TestCollectAll_MissingSource(t *testing.T) {
	sources, _, _ := fakeSources()
	sources.Arp = nil
	c := New(sources, testLogger())

	snap := c.CollectAll()

	result := snap.Result(facts.CategoryArp)
	if result == nil {
		t.Fatalf("Expected a result for %s", facts.CategoryArp)
	}
	if !facts.IsDependencyMissing(result.Err) {
		t.Errorf("Expected dependency-missing, got %v", result.Err)
	}
	if result.Source != "none" {
		t.Errorf("Expected source 'none', got %q", result.Source)
	}

	_, err := c.CollectArpTable()
	if !facts.IsDependencyMissing(err) {
		t.Errorf("Expected dependency-missing from direct call, got %v", err)
	}
}

// Test that unclassified source errors surface as collection failures
func TestCollectRoutes_UnclassifiedError(t *testing.T) {
	sources, routes, _ := fakeSources()
	routes.err = errors.New("unexpected netstat output")
	c := New(sources, testLogger())

	_, err := c.CollectRoutes()
	if !facts.IsCollectionError(err) {
		t.Errorf("Expected collection error, got %v", err)
	}

	var ce *facts.CollectError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected a CollectError, got %T", err)
	}
	if ce.Category != facts.CategoryRoutes {
		t.Errorf("Expected category %s, got %s", facts.CategoryRoutes, ce.Category)
	}
}

// Test collector idempotence over unchanged sources
func TestCollectAll_Idempotent(t *testing.T) {
	sources, routes, arp := fakeSources()
	c := New(sources, testLogger())

	first := c.CollectAll()
	second := c.CollectAll()

	if routes.calls != 2 || arp.calls != 2 {
		t.Errorf("Expected exactly one source call per run, got routes=%d arp=%d", routes.calls, arp.calls)
	}

	if first.Fingerprint() != second.Fingerprint() {
		t.Errorf("Expected identical fingerprints for unchanged sources")
	}
	if first.RunID == second.RunID {
		t.Errorf("Expected distinct run IDs")
	}

	for i := range first.Routes {
		if first.Routes[i] != second.Routes[i] {
			t.Errorf("Expected identical route records, got %+v vs %+v", first.Routes[i], second.Routes[i])
		}
	}
}

// Test that a single-category run touches only that category's source
func TestCollectCategory(t *testing.T) {
	sources, routeSrc, arpSrc := fakeSources()
	c := New(sources, testLogger())

	snap := c.CollectCategory(facts.CategoryArp)

	if arpSrc.calls != 1 {
		t.Errorf("Expected 1 arp source call, got %d", arpSrc.calls)
	}
	if routeSrc.calls != 0 {
		t.Errorf("Expected no route source calls, got %d", routeSrc.calls)
	}

	if len(snap.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(snap.Results))
	}
	if snap.Results[0].Category != facts.CategoryArp {
		t.Errorf("Expected category %s, got %s", facts.CategoryArp, snap.Results[0].Category)
	}
	if len(snap.Arp) != 1 {
		t.Errorf("Expected 1 arp record, got %d", len(snap.Arp))
	}
	if snap.Routes != nil {
		t.Errorf("Expected no route records, got %d", len(snap.Routes))
	}
	if snap.RunID == "" {
		t.Error("Expected a run ID")
	}
}

// Test missing-source reporting used by the check command
func TestSources_Missing(t *testing.T) {
	sources, _, _ := fakeSources()
	if missing := sources.Missing(); len(missing) != 0 {
		t.Errorf("Expected no missing categories, got %v", missing)
	}

	sources.Arp = nil
	sources.Dns = nil
	missing := sources.Missing()
	if len(missing) != 2 {
		t.Fatalf("Expected 2 missing categories, got %d", len(missing))
	}
	if missing[0] != facts.CategoryArp || missing[1] != facts.CategoryDns {
		t.Errorf("Expected [arp dns], got %v", missing)
	}
}
