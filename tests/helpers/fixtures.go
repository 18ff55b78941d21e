package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theoremus-urban-solutions/trip-planner/network"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// LoadTestNetwork loads a network fixture from testdata/network/
func LoadTestNetwork(t *testing.T, filename string) (*network.StopGraph, network.TaxiTariff) {
	t.Helper()
	path := filepath.Join(GetTestDataPath(), "network", filename)
	g, tariff, err := network.LoadNetworkFile(path)
	if err != nil {
		t.Fatalf("Failed to load network fixture %s: %v", filename, err)
	}
	return g, tariff
}
