// Package machine drives a grid of nodes in lock step.
//
// Each Step is one tick for every node at once: the bus gathers all port
// intents, resolves them into rendezvous transfers, and every node commits
// its staged state. Both halves of a matched transfer complete in the same
// tick, so a node never observes a neighbor mid-instruction.
package machine
