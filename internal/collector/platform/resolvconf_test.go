package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wesleywu/netfacts/internal/facts"
)

func TestParseResolvConf(t *testing.T) {
	lines := []string{
		"# Generated by NetworkManager",
		"search corp.example.com",
		"nameserver 192.168.1.1",
		"nameserver 8.8.8.8",
		"; legacy comment style",
		"options timeout:2 attempts:3",
		"",
		"nameserver 2606:4700:4700::1111",
	}

	entries := parseResolvConf(lines)

	// Directives come back verbatim and in file order
	expected := []string{
		"nameserver 192.168.1.1",
		"nameserver 8.8.8.8",
		"nameserver 2606:4700:4700::1111",
	}

	if len(entries) != len(expected) {
		t.Fatalf("Expected %d nameserver entries, got %d", len(expected), len(entries))
	}

	for i := range expected {
		if entries[i].Line != expected[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, expected[i], entries[i].Line)
		}
	}
}

func TestParseResolvConf_NoNameservers(t *testing.T) {
	lines := []string{
		"# resolv.conf without any nameserver",
		"search lab.local",
		"nameserver", // directive without an address
	}

	if entries := parseResolvConf(lines); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestResolvConfSource_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	content := "# test resolver\nnameserver 10.53.0.1\nsearch lab.local\nnameserver 10.53.0.2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	source := &resolvConfSource{path: path}
	if source.Name() != "resolv.conf" {
		t.Errorf("Expected source name resolv.conf, got %s", source.Name())
	}

	entries, err := source.Servers()
	if err != nil {
		t.Fatalf("Failed to read resolver configuration: %v", err)
	}

	expected := []string{"nameserver 10.53.0.1", "nameserver 10.53.0.2"}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i := range expected {
		if entries[i].Line != expected[i] {
			t.Errorf("Entry %d: expected %q, got %q", i, expected[i], entries[i].Line)
		}
	}
}

func TestResolvConfSource_MissingFile(t *testing.T) {
	source := &resolvConfSource{path: filepath.Join(t.TempDir(), "missing.conf")}

	_, err := source.Servers()
	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
	if !facts.IsDependencyMissing(err) {
		t.Errorf("Expected a dependency-missing error, got %v", err)
	}
}
