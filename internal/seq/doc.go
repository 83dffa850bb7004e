// Package seq provides lazy filter and transform adapters over iter.Seq.
//
// Adapters do no work until ranged over and hold no state between ranges,
// so a result is restartable exactly when its source is.
package seq
