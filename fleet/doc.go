// Package fleet matches each bus's schedule to a real vehicle profile by
// required seat capacity: buses are sorted by required seats descending,
// active vehicle profiles by max seats ascending, and each bus in turn
// picks the compatible vehicle minimizing a composite fit score.
//
// Adapted from the teacher's prim_kruskal package's two-pointer
// greedy-selection style (sorted descending/ascending, single pass,
// deterministic tie-break via sort.SliceStable), repurposed from
// spanning-tree edge selection to vehicle-to-bus pairing.
package fleet
