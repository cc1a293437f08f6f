package facts

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// CategoryResult records the outcome of collecting one category
type CategoryResult struct {
	Category Category      `json:"category" yaml:"category"`
	Source   string        `json:"source" yaml:"source"`
	Records  int           `json:"records" yaml:"records"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Err      *CollectError `json:"-" yaml:"-"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Snapshot aggregates one collection run. Record slices hold partial
// results; a category that failed contributes an empty slice and a
// CategoryResult carrying the error.
type Snapshot struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	CollectedAt time.Time        `json:"collected_at" yaml:"collected_at"`
	Routes      []RouteEntry     `json:"routes" yaml:"routes"`
	Interfaces  []InterfaceInfo  `json:"interfaces" yaml:"interfaces"`
	Gateways    []GatewayEntry   `json:"gateways" yaml:"gateways"`
	Arp         []ArpEntry       `json:"arp" yaml:"arp"`
	Dns         []DnsEntry       `json:"dns" yaml:"dns"`
	Results     []CategoryResult `json:"results" yaml:"results"`
}

// Result returns the outcome for a category, or nil if it was not collected
func (s *Snapshot) Result(category Category) *CategoryResult {
	for i := range s.Results {
		if s.Results[i].Category == category {
			return &s.Results[i]
		}
	}
	return nil
}

// Failed returns the results of categories that did not complete
func (s *Snapshot) Failed() []CategoryResult {
	var failed []CategoryResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// TotalRecords returns the number of records across all categories
func (s *Snapshot) TotalRecords() int {
	return len(s.Routes) + len(s.Interfaces) + len(s.Gateways) + len(s.Arp) + len(s.Dns)
}

// HasData returns true if at least one category produced records
func (s *Snapshot) HasData() bool {
	return s.TotalRecords() > 0
}

// Fingerprint returns a hash over the normalized records only. Run
// metadata (run ID, timestamps, durations) is excluded so that two runs
// against unchanged host state fingerprint identically.
func (s *Snapshot) Fingerprint() uint64 {
	h := xxhash.New()

	for _, r := range s.Routes {
		hashFields(h, "route", r.Destination, r.Gateway, r.Netmask, r.Interface, r.Flags, r.Metric)
	}
	for _, r := range s.Interfaces {
		hashFields(h, "iface", r.Name, r.IPAddress, r.Netmask, r.MAC, r.Broadcast)
	}
	for _, r := range s.Gateways {
		hashFields(h, "gw", r.Family, r.Gateway, r.Interface)
	}
	for _, r := range s.Arp {
		hashFields(h, "arp", r.IPAddress, r.HardwareType, r.HardwareAddr, r.Interface)
	}
	for _, r := range s.Dns {
		hashFields(h, "dns", r.Line)
	}

	return h.Sum64()
}

// hashFields writes each field followed by a separator byte so that
// adjacent fields cannot collide ("ab","c" vs "a","bc")
func hashFields(h *xxhash.Digest, fields ...string) {
	for _, f := range fields {
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0})
	}
}
