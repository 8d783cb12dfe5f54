// Package tier holds the classification scale rendered by tierpyramid.
//
// A [Catalog] is an ordered list of [Level]s (index 0 is the best tier), a
// list of [Group]s that partition the levels into contiguous bands, and the
// example manufacturer [Brand]s listed under each band.
//
// Catalogs are immutable values: every lookup is a pure function of the
// catalog and its arguments. Unknown level ids resolve to [NoLevel] instead
// of failing, so callers treat a stale selection as "nothing selected".
//
// # Default Catalog
//
// [Default] returns the built-in scale (AAA through C in three bands).
// Custom catalogs can be loaded from TOML, YAML or JSON with [Load] and
// written back with [Encode]:
//
//	cat, err := tier.Load("catalog.toml")
//	if err != nil {
//	    return err
//	}
//	d, ok := cat.Detail("BBB")
//	fmt.Printf("%s: %.0f%%\n", d.Group, d.Bankability)
package tier
