// Package fabric implements the port fabric of the node grid: directional
// ports, the per-tick rendezvous bus that matches write intents to read
// intents, and the node variants that live on the fabric without running a
// program (stack memory, input/output streams, console adapters).
//
// All node variants follow the same tick contract: Plan declares the node's
// intents for the tick, Take and Gave stage resolved transfers, and Commit
// applies the staged state. No variant ever observes another's mid-tick
// state.
package fabric
