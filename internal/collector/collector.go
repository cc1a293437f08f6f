package collector

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wesleywu/netfacts/internal/facts"
	"github.com/wesleywu/netfacts/internal/logger"
)

var errNoSource = errors.New("no usable source on this platform")

// Collector runs the five fact collectors against the sources selected
// at startup. Collection is read-only and single-shot; there are no
// retries and no shared mutable state between categories.
type Collector struct {
	sources Sources
	log     *logger.Logger
}

// New creates a collector over the given sources
func New(sources Sources, log *logger.Logger) *Collector {
	return &Collector{
		sources: sources,
		log:     log.WithComponent("collector"),
	}
}

// CollectRoutes reads the host routing table
func (c *Collector) CollectRoutes() ([]facts.RouteEntry, error) {
	if c.sources.Routes == nil {
		return nil, facts.DependencyMissing(facts.CategoryRoutes, errNoSource)
	}
	routes, err := c.sources.Routes.Routes()
	if err != nil {
		return nil, categorize(facts.CategoryRoutes, err)
	}
	return routes, nil
}

// CollectInterfaces enumerates network interfaces
func (c *Collector) CollectInterfaces() ([]facts.InterfaceInfo, error) {
	if c.sources.Interfaces == nil {
		return nil, facts.DependencyMissing(facts.CategoryInterfaces, errNoSource)
	}
	ifaces, err := c.sources.Interfaces.Interfaces()
	if err != nil {
		return nil, categorize(facts.CategoryInterfaces, err)
	}
	return ifaces, nil
}

// CollectGateways discovers default gateways
func (c *Collector) CollectGateways() ([]facts.GatewayEntry, error) {
	if c.sources.Gateways == nil {
		return nil, facts.DependencyMissing(facts.CategoryGateways, errNoSource)
	}
	gateways, err := c.sources.Gateways.Gateways()
	if err != nil {
		return nil, categorize(facts.CategoryGateways, err)
	}
	return gateways, nil
}

// CollectArpTable reads the ARP cache
func (c *Collector) CollectArpTable() ([]facts.ArpEntry, error) {
	if c.sources.Arp == nil {
		return nil, facts.DependencyMissing(facts.CategoryArp, errNoSource)
	}
	entries, err := c.sources.Arp.Entries()
	if err != nil {
		return nil, categorize(facts.CategoryArp, err)
	}
	return entries, nil
}

// CollectDnsConfig reads resolver configuration directives
func (c *Collector) CollectDnsConfig() ([]facts.DnsEntry, error) {
	if c.sources.Dns == nil {
		return nil, facts.DependencyMissing(facts.CategoryDns, errNoSource)
	}
	servers, err := c.sources.Dns.Servers()
	if err != nil {
		return nil, categorize(facts.CategoryDns, err)
	}
	return servers, nil
}

// CollectAll runs the five collectors sequentially in a fixed order
// (routes, interfaces, gateways, arp, dns). A failed category contributes
// an error result and never prevents the remaining categories from
// running. The returned snapshot aggregates the partial results.
func (c *Collector) CollectAll() *facts.Snapshot {
	started := time.Now()
	snap := &facts.Snapshot{
		RunID:       uuid.NewString(),
		CollectedAt: started,
	}

	for _, category := range facts.Categories() {
		c.collectInto(snap, category)
	}

	c.log.RunCompleted(snap.RunID,
		len(snap.Results),
		snap.TotalRecords(),
		len(snap.Failed()),
		time.Since(started).Milliseconds())

	return snap
}

// CollectCategory runs a single category and returns a snapshot holding
// just its records and outcome
func (c *Collector) CollectCategory(category facts.Category) *facts.Snapshot {
	snap := &facts.Snapshot{
		RunID:       uuid.NewString(),
		CollectedAt: time.Now(),
	}
	c.collectInto(snap, category)
	return snap
}

// collectInto runs one category and stores its records and result on the
// snapshot
func (c *Collector) collectInto(snap *facts.Snapshot, category facts.Category) {
	switch category {
	case facts.CategoryRoutes:
		snap.Results = append(snap.Results, c.run(category, func() (int, error) {
			routes, err := c.CollectRoutes()
			snap.Routes = routes
			return len(routes), err
		}))
	case facts.CategoryInterfaces:
		snap.Results = append(snap.Results, c.run(category, func() (int, error) {
			ifaces, err := c.CollectInterfaces()
			snap.Interfaces = ifaces
			return len(ifaces), err
		}))
	case facts.CategoryGateways:
		snap.Results = append(snap.Results, c.run(category, func() (int, error) {
			gateways, err := c.CollectGateways()
			snap.Gateways = gateways
			return len(gateways), err
		}))
	case facts.CategoryArp:
		snap.Results = append(snap.Results, c.run(category, func() (int, error) {
			entries, err := c.CollectArpTable()
			snap.Arp = entries
			return len(entries), err
		}))
	case facts.CategoryDns:
		snap.Results = append(snap.Results, c.run(category, func() (int, error) {
			servers, err := c.CollectDnsConfig()
			snap.Dns = servers
			return len(servers), err
		}))
	}
}

// run executes one category's collection and records its outcome
func (c *Collector) run(category facts.Category, collect func() (int, error)) facts.CategoryResult {
	source := c.sources.SourceName(category)
	started := time.Now()
	records, err := collect()

	result := facts.CategoryResult{
		Category: category,
		Source:   source,
		Records:  records,
		Duration: time.Since(started),
	}

	if err != nil {
		ce := categorize(category, err)
		result.Records = 0
		result.Err = ce
		result.Error = ce.Error()
		c.log.CategoryFailed(string(category), source, ce)
		return result
	}

	c.log.CategoryCollected(string(category), source, records, result.Duration.Milliseconds())
	return result
}

// categorize ensures every failure surfaced to callers is a typed
// CollectError; errors a source did not classify count as collection
// failures
func categorize(category facts.Category, err error) *facts.CollectError {
	var ce *facts.CollectError
	if errors.As(err, &ce) {
		return ce
	}
	return facts.CollectionFailed(category, err)
}
