/*
Package network provides the in-memory transit network: stops, directed
connections between them, and the taxi tariff used for access legs.

The graph is built once from a loaded network file and is immutable
afterwards, so it can be shared by any number of concurrent readers
without locking.

# Basic Usage

	g, tariff, err := network.LoadNetworkFile("data/network.json")
	if err != nil {
	    log.Fatal(err)
	}

	stop, err := network.NearestStop(geo.Coordinate{Latitude: 40.76, Longitude: 29.92}, g)

# Reloading

Reload is build-new-then-swap: construct a fresh graph from the data file
and install it with Snapshot.Swap. In-flight requests keep the snapshot
they started with and always see a fully consistent network.

	snap := network.NewSnapshot(g, tariff)
	...
	g2, t2, err := network.LoadNetworkFile(path)
	if err == nil {
	    snap.Swap(g2, t2)
	}
*/
package network
