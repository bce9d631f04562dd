// Package engine implements the 2048 rule engine: a rectangular grid of
// power-of-two tiles, the four directional moves, merging, spawning and
// game-over detection.
//
// The engine has no dependency on rendering or input. Every mutating call
// returns an ordered Batch of notifications describing what happened; the
// caller replays them to update its display. A Board is not safe for
// concurrent use and the caller must serialize calls.
package engine
