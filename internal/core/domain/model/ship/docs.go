// Package ship contains the Ship aggregate root.
//
// A ship carries an ordered list of containers and enforces two capacity limits
// on every change to that list: the number of containers and their total gross
// weight (current load plus tare weight). A container belongs to at most one
// ship; boarding and leaving a ship is recorded on the container itself.
//
// Every operation either succeeds completely or leaves the ship, and the
// containers involved, as they were. ReplaceContainer and TransferContainer
// put the original container back when loading its successor or moving it to
// the destination fails.
package ship
