// Package service runs rover missions end to end.
//
// A mission is line oriented. The first line holds the plateau's upper-right
// corner; every following pair of lines is a rover record: a position line
// "X Y D" and a command line of L, R and M.
//
// Usage:
//
//	runner := service.NewRunner(log.Default(), service.WithTrace(debug))
//	result, err := runner.Run(ctx, service.NewScannerSource(os.Stdin))
//	if err != nil {
//		log.Fatal(err)
//	}
//	service.WriteText(os.Stdout, result)
//
// Failures inside a record are logged and recorded on its RecordResult; the
// run goes on with the next record. Rovers that were placed stay on the
// plateau even when their commands fail, so later rovers collide with them.
package service
