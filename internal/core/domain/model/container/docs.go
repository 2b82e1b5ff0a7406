// Package container models cargo containers.
//
// Every container shares the Container contract: a serial number, fixed
// physical dimensions, a tare weight and a current load that never leaves
// [0, max load]. Three kinds specialise it:
//   - Refrigerated: accepts only its own product at or below its temperature threshold
//   - Liquid: fills to 90% of max load, or 50% when the contents are hazardous
//   - Gas: keeps 5% of its load as residue when emptied
//
// Liquid and Gas implement HazardNotifier. Containers are built by a Factory,
// which owns the serial number sequence shared by all kinds.
//
// While a container is aboard a ship it only accepts Empty; cargo is loaded
// ashore so the ship's weight accounting stays correct.
package container
