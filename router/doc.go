// Package router computes non-colliding, step-by-step paths for a set of
// agents moving across a chip grid. Each agent starts as its own group;
// cooperative per-group A* searches are biased away from other groups'
// already-committed paths, and groups that still collide after a
// cost-sorted retry are merged and re-routed together.
package router
