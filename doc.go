// Package conf loads layered configuration.
//
// A configuration is a base document followed by override documents, each
// merged onto the previous result with [merge.Merge]. Values are then read
// from the merged tree with package typed:
//
//	cfg, err := conf.LoadFiles("robot.yaml", "site.yaml")
//	if err != nil {
//		return err
//	}
//	var footprint geom.Polygon2D
//	if !typed.Read(cfg, "footprint", &footprint, typed.LogReporter(nil)) {
//		return errNoFootprint
//	}
package conf
