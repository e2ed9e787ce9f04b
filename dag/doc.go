// Package dag implements the command graph: a directed graph whose nodes
// each carry a command.Command payload and whose edges carry a
// chip.DropletId. Every live droplet id has exactly one edge in the graph,
// recording the node that produces it; until some later AddCommand binds a
// consumer, that edge has no target node, which stands in for "this
// droplet's consumer is not yet known". There are no placeholder nodes.
package dag
